package service

import (
	"context"
	"sort"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type analyticsService struct {
	vehicleRepo repository.VehicleRepository
	renterRepo  repository.RenterRepository
	rentalRepo  repository.RentalRepository
	now         func() time.Time
}

func NewAnalyticsService(
	vehicleRepo repository.VehicleRepository,
	renterRepo repository.RenterRepository,
	rentalRepo repository.RentalRepository,
) AnalyticsService {
	return &analyticsService{
		vehicleRepo: vehicleRepo,
		renterRepo:  renterRepo,
		rentalRepo:  rentalRepo,
		now:         time.Now,
	}
}

func (s *analyticsService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list vehicles", err)
	}
	renters, err := s.renterRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list renters", err)
	}
	records, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, persistErr("load ledger", err)
	}

	vehicleCategory := make(map[string]domain.VehicleCategory, len(vehicles))
	for i := range vehicles {
		vehicleCategory[vehicles[i].ID] = vehicles[i].Category
	}
	renterCategory := make(map[string]domain.RenterCategory, len(renters))
	for i := range renters {
		renterCategory[renters[i].ID] = renters[i].Category
	}

	summary := &domain.DashboardSummary{
		TotalVehicles:            len(vehicles),
		TotalRenters:             len(renters),
		TotalRentals:             len(records),
		ActiveRentals:            len(domain.ActiveRecords(records)),
		OverdueRentals:           len(domain.OverdueRecords(records, s.now())),
		TotalRevenue:             domain.TotalRevenue(records),
		RevenueByVehicleCategory: make(map[domain.VehicleCategory]float64),
		RevenueByRenterCategory:  make(map[domain.RenterCategory]float64),
	}
	for i := range records {
		if cat, ok := vehicleCategory[records[i].VehicleID]; ok {
			summary.RevenueByVehicleCategory[cat] += records[i].TotalCost
		}
		if cat, ok := renterCategory[records[i].RenterID]; ok {
			summary.RevenueByRenterCategory[cat] += records[i].TotalCost
		}
	}
	return summary, nil
}

func (s *analyticsService) MostRentedVehicles(ctx context.Context, limit int) ([]domain.VehicleUsage, error) {
	usage, err := s.vehicleUsage(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].RentalCount > usage[j].RentalCount
	})
	return clampUsage(usage, limit), nil
}

func (s *analyticsService) LeastRentedVehicles(ctx context.Context, limit int) ([]domain.VehicleUsage, error) {
	usage, err := s.vehicleUsage(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(usage, func(i, j int) bool {
		return usage[i].RentalCount < usage[j].RentalCount
	})
	return clampUsage(usage, limit), nil
}

// vehicleUsage counts ledger entries per vehicle. Vehicles with no rentals are
// included with a zero count so "least rented" surfaces idle stock.
func (s *analyticsService) vehicleUsage(ctx context.Context) ([]domain.VehicleUsage, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list vehicles", err)
	}
	records, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, persistErr("load ledger", err)
	}

	counts := make(map[string]int)
	for i := range records {
		counts[records[i].VehicleID]++
	}

	usage := make([]domain.VehicleUsage, 0, len(vehicles))
	for i := range vehicles {
		usage = append(usage, domain.VehicleUsage{
			Vehicle:     vehicles[i],
			RentalCount: counts[vehicles[i].ID],
		})
	}
	return usage, nil
}

func clampUsage(usage []domain.VehicleUsage, limit int) []domain.VehicleUsage {
	if limit > 0 && len(usage) > limit {
		return usage[:limit]
	}
	return usage
}

func (s *analyticsService) VehicleAnalytics(ctx context.Context, vehicleID string) (*domain.VehicleAnalytics, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, persistErr("load vehicle", err)
	}
	if vehicle == nil {
		return nil, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	records, err := s.rentalRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, persistErr("load vehicle history", err)
	}

	stats := &domain.VehicleAnalytics{
		VehicleID:       vehicleID,
		TotalRentals:    len(records),
		ActiveRentals:   len(domain.ActiveRecords(records)),
		ReturnedRentals: len(domain.ReturnedRecords(records)),
		TotalRevenue:    domain.TotalRevenue(records),
		TotalRentalDays: domain.TotalRentalDays(records),
	}
	if stats.TotalRentals > 0 {
		stats.AvgRentalDays = float64(stats.TotalRentalDays) / float64(stats.TotalRentals)
		stats.UtilizationRate = float64(stats.ReturnedRentals) / float64(stats.TotalRentals)
	}
	return stats, nil
}

func (s *analyticsService) RenterAnalytics(ctx context.Context, renterID string) (*domain.RenterAnalytics, error) {
	renter, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, persistErr("load renter", err)
	}
	if renter == nil {
		return nil, &domain.UserNotFoundError{RenterID: renterID}
	}

	records, err := s.rentalRepo.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, persistErr("load renter history", err)
	}

	stats := &domain.RenterAnalytics{
		RenterID:        renterID,
		RenterName:      renter.Name,
		Category:        renter.Category,
		TotalRentals:    len(records),
		ActiveRentals:   len(domain.ActiveRecords(records)),
		ReturnedRentals: len(domain.ReturnedRecords(records)),
		TotalSpent:      domain.TotalRevenue(records),
		TotalRentalDays: domain.TotalRentalDays(records),
	}
	if stats.TotalRentals > 0 {
		stats.AvgRentalCost = stats.TotalSpent / float64(stats.TotalRentals)
		stats.AvgRentalDays = float64(stats.TotalRentalDays) / float64(stats.TotalRentals)
	}
	return stats, nil
}

// ActivityLog flattens the ledger into rent and return events, most recent
// first. A returned record contributes two entries: the pickup at period
// start and the drop-off at period end.
func (s *analyticsService) ActivityLog(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	records, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, persistErr("load ledger", err)
	}

	var entries []domain.ActivityEntry
	for i := range records {
		rec := &records[i]
		entries = append(entries, domain.ActivityEntry{
			Type:      "rental",
			At:        rec.Period.Start,
			RentalID:  rec.RentalID,
			VehicleID: rec.VehicleID,
			RenterID:  rec.RenterID,
			Cost:      rec.TotalCost,
			Period:    rec.Period.String(),
		})
		if rec.Returned {
			entries = append(entries, domain.ActivityEntry{
				Type:      "return",
				At:        rec.Period.End,
				RentalID:  rec.RentalID,
				VehicleID: rec.VehicleID,
				RenterID:  rec.RenterID,
				Cost:      rec.TotalCost,
				Period:    rec.Period.String(),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.After(entries[j].At)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
