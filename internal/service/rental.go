package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/pricing"
	"vehiclerental-backend/internal/repository"
)

type rentalService struct {
	vehicleRepo repository.VehicleRepository
	renterRepo  repository.RenterRepository
	rentalRepo  repository.RentalRepository
	emailSvc    EmailService

	// Per-vehicle locks close the race between the availability check and the
	// ledger insert when two bookings for the same vehicle arrive together.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRentalService(
	vehicleRepo repository.VehicleRepository,
	renterRepo repository.RenterRepository,
	rentalRepo repository.RentalRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		vehicleRepo: vehicleRepo,
		renterRepo:  renterRepo,
		rentalRepo:  rentalRepo,
		emailSvc:    emailSvc,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (s *rentalService) vehicleLock(vehicleID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[vehicleID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[vehicleID] = l
	}
	return l
}

func persistErr(op string, err error) error {
	return &domain.PersistenceError{Op: op, Err: err}
}

// Rent books a vehicle for a renter over a period. It is the single creation
// point for rental records: resolve both parties, check availability under the
// vehicle's lock, price the booking, and append it to the ledger.
func (s *rentalService) Rent(ctx context.Context, vehicleID, renterID string, period domain.RentalPeriod) (*domain.RentalRecord, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, persistErr("load vehicle", err)
	}
	if vehicle == nil {
		return nil, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	renter, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, persistErr("load renter", err)
	}
	if renter == nil || !renter.Active {
		return nil, &domain.UserNotFoundError{RenterID: renterID}
	}

	lock := s.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	outstanding, err := s.rentalRepo.ListUnreturnedByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, persistErr("load vehicle bookings", err)
	}
	if domain.AnyOverlap(outstanding, period) {
		return nil, &domain.VehicleNotAvailableError{VehicleID: vehicleID, Period: period}
	}

	days := period.Duration()
	factor := renter.DiscountFactor(days)
	cost, err := pricing.Quote(vehicle, period, factor)
	if err != nil {
		return nil, err
	}

	rec := &domain.RentalRecord{
		RentalID:  uuid.NewString(),
		VehicleID: vehicleID,
		RenterID:  renterID,
		Period:    period,
		TotalCost: cost,
		Returned:  false,
		CreatedOn: time.Now(),
	}
	if err := s.rentalRepo.Create(ctx, rec); err != nil {
		return nil, persistErr("create rental record", err)
	}

	logger.Info("vehicle rented", "rental_id", rec.RentalID, "vehicle_id", vehicleID,
		"renter_id", renterID, "period", period.String(), "total_cost", cost)
	s.notify(ctx, renter, rec, "booking")

	return rec, nil
}

// Quote prices a prospective booking without creating anything.
func (s *rentalService) Quote(ctx context.Context, vehicleID, renterID string, period domain.RentalPeriod) (pricing.QuoteBreakdown, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return pricing.QuoteBreakdown{}, persistErr("load vehicle", err)
	}
	if vehicle == nil {
		return pricing.QuoteBreakdown{}, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	renter, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return pricing.QuoteBreakdown{}, persistErr("load renter", err)
	}
	if renter == nil || !renter.Active {
		return pricing.QuoteBreakdown{}, &domain.UserNotFoundError{RenterID: renterID}
	}

	factor := renter.DiscountFactor(period.Duration())
	return pricing.QuoteWithBreakdown(vehicle, period, factor)
}

// ReturnByID marks a rental returned. Returning an already-returned rental is
// a silent success so client retries stay harmless. An unknown id yields
// (false, nil) rather than an error, matching the caller contract.
func (s *rentalService) ReturnByID(ctx context.Context, rentalID string) (bool, error) {
	rec, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return false, persistErr("load rental record", err)
	}
	if rec == nil {
		return false, nil
	}
	if rec.Returned {
		return true, nil
	}

	if err := s.rentalRepo.MarkReturned(ctx, rentalID); err != nil {
		return false, persistErr("mark rental returned", err)
	}

	logger.Info("vehicle returned", "rental_id", rentalID, "vehicle_id", rec.VehicleID)
	if renter, rerr := s.renterRepo.GetByID(ctx, rec.RenterID); rerr == nil && renter != nil {
		rec.Returned = true
		s.notify(ctx, renter, rec, "return")
	}
	return true, nil
}

// ReturnByRenter is the compatibility path for callers that only know vehicle
// and renter. An exact period match wins; without a period the most recent
// unreturned booking (by start time) is selected.
func (s *rentalService) ReturnByRenter(ctx context.Context, vehicleID, renterID string, period *domain.RentalPeriod) (bool, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return false, persistErr("load vehicle", err)
	}
	if vehicle == nil {
		return false, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	renter, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return false, persistErr("load renter", err)
	}
	if renter == nil {
		return false, &domain.UserNotFoundError{RenterID: renterID}
	}

	history, err := s.rentalRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return false, persistErr("load vehicle bookings", err)
	}

	var candidates []domain.RentalRecord
	for i := range history {
		if history[i].RenterID == renterID {
			candidates = append(candidates, history[i])
		}
	}

	target := selectReturnTarget(candidates, period)
	if target == nil {
		// Idempotency: if the requested booking was already returned, a retry
		// is a success, not a failure.
		if alreadyReturned(candidates, period) {
			return true, nil
		}
		return false, &domain.ReturnNotFoundError{VehicleID: vehicleID, RenterID: renterID}
	}

	return s.ReturnByID(ctx, target.RentalID)
}

func selectReturnTarget(candidates []domain.RentalRecord, period *domain.RentalPeriod) *domain.RentalRecord {
	var best *domain.RentalRecord
	for i := range candidates {
		rec := &candidates[i]
		if rec.Returned {
			continue
		}
		if period != nil {
			if rec.Period.Start.Equal(period.Start) && rec.Period.End.Equal(period.End) {
				return rec
			}
			continue
		}
		if best == nil || rec.Period.Start.After(best.Period.Start) {
			best = rec
		}
	}
	return best
}

func alreadyReturned(candidates []domain.RentalRecord, period *domain.RentalPeriod) bool {
	for i := range candidates {
		rec := &candidates[i]
		if !rec.Returned {
			continue
		}
		if period == nil || (rec.Period.Start.Equal(period.Start) && rec.Period.End.Equal(period.End)) {
			return true
		}
	}
	return false
}

func (s *rentalService) IsAvailable(ctx context.Context, vehicleID string, period domain.RentalPeriod) (bool, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return false, persistErr("load vehicle", err)
	}
	if vehicle == nil {
		return false, &domain.VehicleNotFoundError{VehicleID: vehicleID}
	}

	outstanding, err := s.rentalRepo.ListUnreturnedByVehicle(ctx, vehicleID)
	if err != nil {
		return false, persistErr("load vehicle bookings", err)
	}
	return !domain.AnyOverlap(outstanding, period), nil
}

func (s *rentalService) AvailableVehicles(ctx context.Context, period domain.RentalPeriod) ([]domain.Vehicle, error) {
	return s.FilterVehicles(ctx, domain.VehicleFilter{}, &period)
}

// RentedVehicles lists vehicles with outstanding bookings. With a period it is
// the complement of the availability filter over that period; without one it
// lists every vehicle that is currently out on any unreturned booking.
func (s *rentalService) RentedVehicles(ctx context.Context, period *domain.RentalPeriod) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list vehicles", err)
	}

	var rented []domain.Vehicle
	for i := range vehicles {
		outstanding, err := s.rentalRepo.ListUnreturnedByVehicle(ctx, vehicles[i].ID)
		if err != nil {
			return nil, persistErr("load vehicle bookings", err)
		}
		if period != nil {
			if domain.AnyOverlap(outstanding, *period) {
				rented = append(rented, vehicles[i])
			}
			continue
		}
		if len(outstanding) > 0 {
			rented = append(rented, vehicles[i])
		}
	}
	return rented, nil
}

// FilterVehicles narrows the fleet by category/make/rate and, when a period is
// given, by availability over that period.
func (s *rentalService) FilterVehicles(ctx context.Context, f domain.VehicleFilter, period *domain.RentalPeriod) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.Filter(ctx, f)
	if err != nil {
		return nil, persistErr("filter vehicles", err)
	}
	if period == nil {
		return vehicles, nil
	}

	var available []domain.Vehicle
	for i := range vehicles {
		outstanding, err := s.rentalRepo.ListUnreturnedByVehicle(ctx, vehicles[i].ID)
		if err != nil {
			return nil, persistErr("load vehicle bookings", err)
		}
		if !domain.AnyOverlap(outstanding, *period) {
			available = append(available, vehicles[i])
		}
	}
	return available, nil
}

func (s *rentalService) VehicleHistory(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
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
	return records, nil
}

func (s *rentalService) RenterHistory(ctx context.Context, renterID string) ([]domain.RentalRecord, error) {
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
	return records, nil
}

func (s *rentalService) AllRecords(ctx context.Context) ([]domain.RentalRecord, error) {
	records, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, persistErr("load ledger", err)
	}
	return records, nil
}

func (s *rentalService) ActiveRentals(ctx context.Context) ([]domain.RentalRecord, error) {
	records, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, persistErr("load ledger", err)
	}
	active := domain.ActiveRecords(records)
	sort.Slice(active, func(i, j int) bool {
		return active[i].Period.Start.Before(active[j].Period.Start)
	})
	return active, nil
}

func (s *rentalService) OverdueRentals(ctx context.Context, now time.Time) ([]domain.RentalRecord, error) {
	records, err := s.rentalRepo.ListOverdue(ctx, now)
	if err != nil {
		return nil, persistErr("load overdue rentals", err)
	}
	return records, nil
}

// notify sends a lifecycle email when the renter has a contact address.
func (s *rentalService) notify(ctx context.Context, renter *domain.Renter, rec *domain.RentalRecord, kind string) {
	if s.emailSvc == nil || renter.ContactInfo == "" {
		return
	}
	var err error
	switch kind {
	case "booking":
		err = s.emailSvc.SendBookingConfirmation(ctx, renter.ContactInfo, renter.Name, rec)
	case "return":
		err = s.emailSvc.SendReturnConfirmation(ctx, renter.ContactInfo, renter.Name, rec)
	}
	if err != nil {
		logger.Warn("failed to send rental notification", "kind", kind, "rental_id", rec.RentalID, "error", err)
	}
}
