package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, category, make, model, year, daily_rate, num_doors, engine_cc, load_capacity_tons, created_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (id, category, make, model, year, daily_rate, num_doors, engine_cc, load_capacity_tons, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, v.ID, v.Category, v.Make, v.Model, v.Year, v.DailyRate,
		v.NumDoors, v.EngineCC, v.LoadCapacityTons, time.Now())
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET category=$1, make=$2, model=$3, year=$4, daily_rate=$5, num_doors=$6, engine_cc=$7, load_capacity_tons=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, v.Category, v.Make, v.Model, v.Year, v.DailyRate,
		v.NumDoors, v.EngineCC, v.LoadCapacityTons, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *vehicleRepository) Filter(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	if f.Make != "" {
		query += fmt.Sprintf(" AND lower(make) = lower($%d)", argIdx)
		args = append(args, f.Make)
		argIdx++
	}
	if f.MinRate > 0 {
		query += fmt.Sprintf(" AND daily_rate >= $%d", argIdx)
		args = append(args, f.MinRate)
		argIdx++
	}
	if f.MaxRate > 0 {
		query += fmt.Sprintf(" AND daily_rate <= $%d", argIdx)
		args = append(args, f.MaxRate)
		argIdx++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var createdOn time.Time
	err := row.Scan(&v.ID, &v.Category, &v.Make, &v.Model, &v.Year, &v.DailyRate,
		&v.NumDoors, &v.EngineCC, &v.LoadCapacityTons, &createdOn)
	if err != nil {
		return nil, err
	}
	v.CreatedOn = createdOn.Format(time.RFC3339)
	return v, nil
}

func collectVehicles(rows *sql.Rows) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
