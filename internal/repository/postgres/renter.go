package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type renterRepository struct {
	db *sql.DB
}

func NewRenterRepository(db *sql.DB) repository.RenterRepository {
	return &renterRepository{db: db}
}

const renterColumns = `id, category, name, contact_info, username, password_hash, active, created_on`

func (r *renterRepository) Create(ctx context.Context, rt *domain.Renter) error {
	query := `INSERT INTO renters (id, category, name, contact_info, username, password_hash, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.Category, rt.Name, rt.ContactInfo,
		rt.Username, rt.PasswordHash, rt.Active, time.Now())
	return err
}

func (r *renterRepository) GetByID(ctx context.Context, id string) (*domain.Renter, error) {
	query := `SELECT ` + renterColumns + ` FROM renters WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *renterRepository) GetByUsername(ctx context.Context, username string) (*domain.Renter, error) {
	query := `SELECT ` + renterColumns + ` FROM renters WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *renterRepository) Update(ctx context.Context, rt *domain.Renter) error {
	query := `UPDATE renters SET name=$1, contact_info=$2, username=$3, password_hash=$4, active=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rt.Name, rt.ContactInfo, rt.Username, rt.PasswordHash, rt.Active, rt.ID)
	return err
}

func (r *renterRepository) List(ctx context.Context) ([]domain.Renter, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+renterColumns+` FROM renters ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var renters []domain.Renter
	for rows.Next() {
		var rt domain.Renter
		var createdOn time.Time
		if err := rows.Scan(&rt.ID, &rt.Category, &rt.Name, &rt.ContactInfo, &rt.Username,
			&rt.PasswordHash, &rt.Active, &createdOn); err != nil {
			return nil, err
		}
		rt.CreatedOn = createdOn.Format(time.RFC3339)
		renters = append(renters, rt)
	}
	return renters, rows.Err()
}

func (r *renterRepository) scanOne(row *sql.Row) (*domain.Renter, error) {
	rt := &domain.Renter{}
	var createdOn time.Time
	err := row.Scan(&rt.ID, &rt.Category, &rt.Name, &rt.ContactInfo, &rt.Username,
		&rt.PasswordHash, &rt.Active, &createdOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rt.CreatedOn = createdOn.Format(time.RFC3339)
	return rt, nil
}
