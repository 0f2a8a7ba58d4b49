package service

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/pricing"
)

// RentalService is the booking engine: it owns the rent/return state machine
// and the availability checks over the rental ledger.
type RentalService interface {
	Rent(ctx context.Context, vehicleID, renterID string, period domain.RentalPeriod) (*domain.RentalRecord, error)
	Quote(ctx context.Context, vehicleID, renterID string, period domain.RentalPeriod) (pricing.QuoteBreakdown, error)
	ReturnByID(ctx context.Context, rentalID string) (bool, error)
	ReturnByRenter(ctx context.Context, vehicleID, renterID string, period *domain.RentalPeriod) (bool, error)
	IsAvailable(ctx context.Context, vehicleID string, period domain.RentalPeriod) (bool, error)
	AvailableVehicles(ctx context.Context, period domain.RentalPeriod) ([]domain.Vehicle, error)
	RentedVehicles(ctx context.Context, period *domain.RentalPeriod) ([]domain.Vehicle, error)
	FilterVehicles(ctx context.Context, f domain.VehicleFilter, period *domain.RentalPeriod) ([]domain.Vehicle, error)
	VehicleHistory(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error)
	RenterHistory(ctx context.Context, renterID string) ([]domain.RentalRecord, error)
	AllRecords(ctx context.Context) ([]domain.RentalRecord, error)
	ActiveRentals(ctx context.Context) ([]domain.RentalRecord, error)
	OverdueRentals(ctx context.Context, now time.Time) ([]domain.RentalRecord, error)
}

// FleetService manages the vehicle inventory (staff operations).
type FleetService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
	GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// UserService manages renter accounts (staff operations).
type UserService interface {
	CreateRenter(ctx context.Context, r *domain.Renter, password string) error
	UpdateRenter(ctx context.Context, renterID, name, contactInfo string) (*domain.Renter, error)
	ChangePassword(ctx context.Context, renterID, newPassword string) error
	DeactivateRenter(ctx context.Context, renterID string) error
	GetRenter(ctx context.Context, renterID string) (*domain.Renter, error)
	ListRenters(ctx context.Context) ([]domain.Renter, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Renter, error)
}

// AnalyticsService derives aggregate statistics from the ledger. Read-only.
type AnalyticsService interface {
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
	MostRentedVehicles(ctx context.Context, limit int) ([]domain.VehicleUsage, error)
	LeastRentedVehicles(ctx context.Context, limit int) ([]domain.VehicleUsage, error)
	VehicleAnalytics(ctx context.Context, vehicleID string) (*domain.VehicleAnalytics, error)
	RenterAnalytics(ctx context.Context, renterID string) (*domain.RenterAnalytics, error)
	ActivityLog(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// EmailService sends rental lifecycle notifications. Sends are best-effort:
// a failed notification never fails the booking.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error
	SendReturnConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error
	SendOverdueReminder(ctx context.Context, email, name string, rec *domain.RentalRecord) error
}
