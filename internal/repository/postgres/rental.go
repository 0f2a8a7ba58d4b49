package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `rental_id, vehicle_id, renter_id, start_time, end_time, total_cost, returned, created_on`

func (r *rentalRepository) Create(ctx context.Context, rec *domain.RentalRecord) error {
	query := `INSERT INTO rentals (rental_id, vehicle_id, renter_id, start_time, end_time, total_cost, returned, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, rec.RentalID, rec.VehicleID, rec.RenterID,
		rec.Period.Start, rec.Period.End, rec.TotalCost, rec.Returned, rec.CreatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, rentalID string) (*domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE rental_id = $1`
	rec, err := scanRental(r.db.QueryRowContext(ctx, query, rentalID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *rentalRepository) MarkReturned(ctx context.Context, rentalID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE rentals SET returned = TRUE WHERE rental_id = $1`, rentalID)
	return err
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.RentalRecord, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY created_on`)
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE vehicle_id = $1 ORDER BY created_on`, vehicleID)
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalRecord, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE renter_id = $1 ORDER BY created_on`, renterID)
}

func (r *rentalRepository) ListUnreturnedByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE vehicle_id = $1 AND returned = FALSE ORDER BY created_on`, vehicleID)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.RentalRecord, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE returned = FALSE AND end_time < $1 ORDER BY end_time`, now)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.RentalRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RentalRecord
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanRental(row rowScanner) (*domain.RentalRecord, error) {
	rec := &domain.RentalRecord{}
	err := row.Scan(&rec.RentalID, &rec.VehicleID, &rec.RenterID,
		&rec.Period.Start, &rec.Period.End, &rec.TotalCost, &rec.Returned, &rec.CreatedOn)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
