package service

import (
	"context"
	"fmt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
	rentalRepo  repository.RentalRepository
}

func NewFleetService(vehicleRepo repository.VehicleRepository, rentalRepo repository.RentalRepository) FleetService {
	return &fleetService{vehicleRepo: vehicleRepo, rentalRepo: rentalRepo}
}

func (s *fleetService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	existing, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return persistErr("load vehicle", err)
	}
	if existing != nil {
		return fmt.Errorf("vehicle with ID '%s' already exists", v.ID)
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return persistErr("create vehicle", err)
	}
	logger.Info("vehicle added", "vehicle_id", v.ID, "category", v.Category)
	return nil
}

func (s *fleetService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	existing, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return persistErr("load vehicle", err)
	}
	if existing == nil {
		return &domain.VehicleNotFoundError{VehicleID: v.ID}
	}
	if v.Category != existing.Category {
		return fmt.Errorf("vehicle category cannot be changed")
	}

	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return persistErr("update vehicle", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle from the fleet. A vehicle with outstanding
// bookings cannot be deleted; returned history does not block deletion.
func (s *fleetService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	existing, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return persistErr("load vehicle", err)
	}
	if existing == nil {
		return &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	outstanding, err := s.rentalRepo.ListUnreturnedByVehicle(ctx, vehicleID)
	if err != nil {
		return persistErr("load vehicle bookings", err)
	}
	if len(outstanding) > 0 {
		return fmt.Errorf("vehicle '%s' has %d outstanding rentals and cannot be deleted", vehicleID, len(outstanding))
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return persistErr("delete vehicle", err)
	}
	logger.Info("vehicle deleted", "vehicle_id", vehicleID)
	return nil
}

func (s *fleetService) GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, persistErr("load vehicle", err)
	}
	if v == nil {
		return nil, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}
	return v, nil
}

func (s *fleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list vehicles", err)
	}
	return vehicles, nil
}
