package repository

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
)

// GetByID / GetByUsername return (nil, nil) when no row matches; a non-nil
// error always means the underlying store failed.

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
	Filter(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error)
}

type RenterRepository interface {
	Create(ctx context.Context, r *domain.Renter) error
	GetByID(ctx context.Context, id string) (*domain.Renter, error)
	GetByUsername(ctx context.Context, username string) (*domain.Renter, error)
	Update(ctx context.Context, r *domain.Renter) error
	List(ctx context.Context) ([]domain.Renter, error)
}

// RentalRepository is the global ledger. It is the single store of rental
// records; per-vehicle and per-renter histories are the ListBy* projections.
type RentalRepository interface {
	Create(ctx context.Context, rec *domain.RentalRecord) error
	GetByID(ctx context.Context, rentalID string) (*domain.RentalRecord, error)
	MarkReturned(ctx context.Context, rentalID string) error
	ListAll(ctx context.Context) ([]domain.RentalRecord, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.RentalRecord, error)
	ListUnreturnedByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.RentalRecord, error)
}
