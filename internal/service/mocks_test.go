package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vehiclerental-backend/internal/domain"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Filter(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockRenterRepo
type MockRenterRepo struct {
	mock.Mock
}

func (m *MockRenterRepo) Create(ctx context.Context, r *domain.Renter) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRenterRepo) GetByID(ctx context.Context, id string) (*domain.Renter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renter), args.Error(1)
}
func (m *MockRenterRepo) GetByUsername(ctx context.Context, username string) (*domain.Renter, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renter), args.Error(1)
}
func (m *MockRenterRepo) Update(ctx context.Context, r *domain.Renter) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRenterRepo) List(ctx context.Context) ([]domain.Renter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Renter), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rec *domain.RentalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, rentalID string) (*domain.RentalRecord, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) MarkReturned(ctx context.Context, rentalID string) error {
	args := m.Called(ctx, rentalID)
	return args.Error(0)
}
func (m *MockRentalRepo) ListAll(ctx context.Context) ([]domain.RentalRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListUnreturnedByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	args := m.Called(ctx, email, name, rec)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	args := m.Called(ctx, email, name, rec)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	args := m.Called(ctx, email, name, rec)
	return args.Error(0)
}
