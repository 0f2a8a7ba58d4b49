package postgres

import (
	"database/sql"

	"vehiclerental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.RenterRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		VehicleRepository: NewVehicleRepository(db),
		RenterRepository:  NewRenterRepository(db),
		RentalRepository:  NewRentalRepository(db),
	}
}

func (s *Store) DB() *sql.DB {
	return s.db
}
