package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

func TestAnalyticsService_DashboardSummary(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := new(MockVehicleRepo)
	renterRepo := new(MockRenterRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewAnalyticsService(vehicleRepo, renterRepo, rentalRepo)

	car := domain.Vehicle{ID: "car-1", Category: domain.VehicleCategoryCar, DailyRate: 50, NumDoors: 4}
	truck := domain.Vehicle{ID: "truck-1", Category: domain.VehicleCategoryTruck, DailyRate: 100, LoadCapacityTons: 4}
	alice := domain.Renter{ID: "alice", Category: domain.RenterCategoryIndividual, Active: true}
	acme := domain.Renter{ID: "acme", Category: domain.RenterCategoryCorporate, Active: true}

	past := mustPeriod(t, "01-01-2020 09:00", "04-01-2020 09:00")
	future := mustPeriod(t, "01-01-2999 09:00", "04-01-2999 09:00")

	vehicleRepo.On("List", ctx).Return([]domain.Vehicle{car, truck}, nil)
	renterRepo.On("List", ctx).Return([]domain.Renter{alice, acme}, nil)
	rentalRepo.On("ListAll", ctx).Return([]domain.RentalRecord{
		{RentalID: "r1", VehicleID: "car-1", RenterID: "alice", Period: past, TotalCost: 150, Returned: true},
		{RentalID: "r2", VehicleID: "car-1", RenterID: "acme", Period: past, TotalCost: 127.5, Returned: false},
		{RentalID: "r3", VehicleID: "truck-1", RenterID: "acme", Period: future, TotalCost: 297.5, Returned: false},
	}, nil)

	summary, err := svc.DashboardSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalVehicles)
	assert.Equal(t, 2, summary.TotalRenters)
	assert.Equal(t, 3, summary.TotalRentals)
	assert.Equal(t, 2, summary.ActiveRentals)
	assert.Equal(t, 1, summary.OverdueRentals) // r2 ended in 2020 and is unreturned
	assert.InDelta(t, 575.0, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 277.5, summary.RevenueByVehicleCategory[domain.VehicleCategoryCar], 1e-9)
	assert.InDelta(t, 297.5, summary.RevenueByVehicleCategory[domain.VehicleCategoryTruck], 1e-9)
	assert.InDelta(t, 150.0, summary.RevenueByRenterCategory[domain.RenterCategoryIndividual], 1e-9)
	assert.InDelta(t, 425.0, summary.RevenueByRenterCategory[domain.RenterCategoryCorporate], 1e-9)
}

func TestAnalyticsService_VehicleUsageRankings(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := new(MockVehicleRepo)
	renterRepo := new(MockRenterRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewAnalyticsService(vehicleRepo, renterRepo, rentalRepo)

	period := mustPeriod(t, "01-01-2025 09:00", "04-01-2025 09:00")
	vehicleRepo.On("List", ctx).Return([]domain.Vehicle{
		{ID: "busy"}, {ID: "quiet"}, {ID: "idle"},
	}, nil)
	rentalRepo.On("ListAll", ctx).Return([]domain.RentalRecord{
		{RentalID: "r1", VehicleID: "busy", Period: period},
		{RentalID: "r2", VehicleID: "busy", Period: period},
		{RentalID: "r3", VehicleID: "quiet", Period: period},
	}, nil)

	t.Run("Most Rented", func(t *testing.T) {
		usage, err := svc.MostRentedVehicles(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, usage, 2)
		assert.Equal(t, "busy", usage[0].Vehicle.ID)
		assert.Equal(t, 2, usage[0].RentalCount)
	})

	t.Run("Least Rented Includes Idle Stock", func(t *testing.T) {
		usage, err := svc.LeastRentedVehicles(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, usage, 1)
		assert.Equal(t, "idle", usage[0].Vehicle.ID)
		assert.Equal(t, 0, usage[0].RentalCount)
	})
}

func TestAnalyticsService_VehicleAnalytics(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := new(MockVehicleRepo)
	renterRepo := new(MockRenterRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewAnalyticsService(vehicleRepo, renterRepo, rentalRepo)

	car := &domain.Vehicle{ID: "car-1", Category: domain.VehicleCategoryCar, DailyRate: 50, NumDoors: 4}
	threeDays := mustPeriod(t, "01-01-2025 09:00", "04-01-2025 09:00")

	vehicleRepo.On("GetByID", ctx, "car-1").Return(car, nil)
	rentalRepo.On("ListByVehicle", ctx, "car-1").Return([]domain.RentalRecord{
		{RentalID: "r1", VehicleID: "car-1", Period: threeDays, TotalCost: 150, Returned: true},
		{RentalID: "r2", VehicleID: "car-1", Period: threeDays, TotalCost: 150, Returned: false},
	}, nil)

	stats, err := svc.VehicleAnalytics(ctx, "car-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRentals)
	assert.Equal(t, 1, stats.ActiveRentals)
	assert.Equal(t, 1, stats.ReturnedRentals)
	assert.InDelta(t, 300.0, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 6, stats.TotalRentalDays)
	assert.InDelta(t, 3.0, stats.AvgRentalDays, 1e-9)
}

func TestAnalyticsService_ActivityLog(t *testing.T) {
	ctx := context.Background()
	vehicleRepo := new(MockVehicleRepo)
	renterRepo := new(MockRenterRepo)
	rentalRepo := new(MockRentalRepo)
	svc := service.NewAnalyticsService(vehicleRepo, renterRepo, rentalRepo)

	early := mustPeriod(t, "01-01-2025 09:00", "04-01-2025 09:00")
	late := mustPeriod(t, "10-01-2025 09:00", "14-01-2025 09:00")

	rentalRepo.On("ListAll", ctx).Return([]domain.RentalRecord{
		{RentalID: "r1", VehicleID: "car-1", RenterID: "alice", Period: early, Returned: true},
		{RentalID: "r2", VehicleID: "car-1", RenterID: "acme", Period: late, Returned: false},
	}, nil)

	entries, err := svc.ActivityLog(ctx, 10)
	assert.NoError(t, err)
	// r1 contributes a rental and a return event, r2 only a rental.
	assert.Len(t, entries, 3)
	assert.Equal(t, "rental", entries[0].Type)
	assert.Equal(t, "r2", entries[0].RentalID)
	assert.Equal(t, "return", entries[1].Type)
	assert.Equal(t, "r1", entries[1].RentalID)

	limited, err := svc.ActivityLog(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
}
