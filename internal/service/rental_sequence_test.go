package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
	"vehiclerental-backend/internal/service"
)

// fakeRentalLedger is an in-memory RentalRepository so sequence tests observe
// real read-after-write behavior instead of canned mock responses.
type fakeRentalLedger struct {
	mu      sync.Mutex
	records map[string]*domain.RentalRecord
	order   []string
}

var _ repository.RentalRepository = (*fakeRentalLedger)(nil)

func newFakeRentalLedger() *fakeRentalLedger {
	return &fakeRentalLedger{records: make(map[string]*domain.RentalRecord)}
}

func (f *fakeRentalLedger) Create(ctx context.Context, rec *domain.RentalRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records[rec.RentalID] = &cp
	f.order = append(f.order, rec.RentalID)
	return nil
}

func (f *fakeRentalLedger) GetByID(ctx context.Context, rentalID string) (*domain.RentalRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[rentalID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRentalLedger) MarkReturned(ctx context.Context, rentalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[rentalID]; ok {
		rec.Returned = true
	}
	return nil
}

func (f *fakeRentalLedger) ListAll(ctx context.Context) ([]domain.RentalRecord, error) {
	return f.listWhere(func(*domain.RentalRecord) bool { return true }), nil
}

func (f *fakeRentalLedger) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	return f.listWhere(func(r *domain.RentalRecord) bool { return r.VehicleID == vehicleID }), nil
}

func (f *fakeRentalLedger) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalRecord, error) {
	return f.listWhere(func(r *domain.RentalRecord) bool { return r.RenterID == renterID }), nil
}

func (f *fakeRentalLedger) ListUnreturnedByVehicle(ctx context.Context, vehicleID string) ([]domain.RentalRecord, error) {
	return f.listWhere(func(r *domain.RentalRecord) bool {
		return r.VehicleID == vehicleID && !r.Returned
	}), nil
}

func (f *fakeRentalLedger) ListOverdue(ctx context.Context, now time.Time) ([]domain.RentalRecord, error) {
	return f.listWhere(func(r *domain.RentalRecord) bool {
		return !r.Returned && r.Period.IsOverdue(now)
	}), nil
}

func (f *fakeRentalLedger) listWhere(keep func(*domain.RentalRecord) bool) []domain.RentalRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.RentalRecord
	for _, id := range f.order {
		if rec := f.records[id]; keep(rec) {
			out = append(out, *rec)
		}
	}
	return out
}

// TestRentalService_RandomizedRentReturnSequence drives a long random mix of
// rent and return calls against the in-memory ledger and checks after every
// step that no vehicle ever holds two overlapping unreturned bookings.
func TestRentalService_RandomizedRentReturnSequence(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	vehicles := []domain.Vehicle{
		{ID: "car-1", Category: domain.VehicleCategoryCar, DailyRate: 50, NumDoors: 4},
		{ID: "car-2", Category: domain.VehicleCategoryCar, DailyRate: 60, NumDoors: 2},
		{ID: "bike-1", Category: domain.VehicleCategoryMotorbike, DailyRate: 30, EngineCC: 650},
	}
	renters := []domain.Renter{
		{ID: "alice", Category: domain.RenterCategoryIndividual, Name: "Alice", Active: true},
		{ID: "acme", Category: domain.RenterCategoryCorporate, Name: "Acme", Active: true},
	}

	vehicleRepo := new(MockVehicleRepo)
	renterRepo := new(MockRenterRepo)
	for i := range vehicles {
		v := vehicles[i]
		vehicleRepo.On("GetByID", mock.Anything, v.ID).Return(&v, nil)
	}
	for i := range renters {
		r := renters[i]
		renterRepo.On("GetByID", mock.Anything, r.ID).Return(&r, nil)
	}

	ledger := newFakeRentalLedger()
	svc := service.NewRentalService(vehicleRepo, renterRepo, ledger, nil)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	randomPeriod := func() domain.RentalPeriod {
		start := base.Add(time.Duration(rng.Intn(24*20)) * time.Hour)
		end := start.Add(time.Duration(6+rng.Intn(90)) * time.Hour)
		p, err := domain.NewRentalPeriodFromTimes(start, end)
		if err != nil {
			t.Fatalf("generated invalid period: %v", err)
		}
		return p
	}

	checkInvariant := func(step int) {
		records, err := ledger.ListAll(ctx)
		if err != nil {
			t.Fatalf("step %d: listing ledger: %v", step, err)
		}
		byVehicle := make(map[string][]domain.RentalRecord)
		for _, rec := range records {
			if !rec.Returned {
				byVehicle[rec.VehicleID] = append(byVehicle[rec.VehicleID], rec)
			}
		}
		for vehicleID, open := range byVehicle {
			for i := 0; i < len(open); i++ {
				for j := i + 1; j < len(open); j++ {
					if open[i].Period.Overlaps(open[j].Period) {
						t.Fatalf("step %d: vehicle %s holds overlapping unreturned bookings %s (%s) and %s (%s)",
							step, vehicleID,
							open[i].RentalID, open[i].Period,
							open[j].RentalID, open[j].Period)
					}
				}
			}
		}
	}

	var rentalIDs []string
	for step := 0; step < 400; step++ {
		switch action := rng.Intn(10); {
		case action < 6: // rent
			vehicleID := vehicles[rng.Intn(len(vehicles))].ID
			renterID := renters[rng.Intn(len(renters))].ID
			rec, err := svc.Rent(ctx, vehicleID, renterID, randomPeriod())
			if err != nil {
				// The only acceptable failure in this setup is a booking conflict.
				var conflict *domain.VehicleNotAvailableError
				if !errors.As(err, &conflict) {
					t.Fatalf("step %d: unexpected rent error: %v", step, err)
				}
			} else {
				rentalIDs = append(rentalIDs, rec.RentalID)
			}

		case action < 9: // return by id, sometimes retried ids or garbage
			if len(rentalIDs) == 0 {
				continue
			}
			id := rentalIDs[rng.Intn(len(rentalIDs))]
			if rng.Intn(20) == 0 {
				id = fmt.Sprintf("ghost-%d", step)
			}
			if _, err := svc.ReturnByID(ctx, id); err != nil {
				t.Fatalf("step %d: unexpected return error: %v", step, err)
			}

		default: // return by renter without a period
			vehicleID := vehicles[rng.Intn(len(vehicles))].ID
			renterID := renters[rng.Intn(len(renters))].ID
			if _, err := svc.ReturnByRenter(ctx, vehicleID, renterID, nil); err != nil {
				var notFound *domain.ReturnNotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("step %d: unexpected return-by-renter error: %v", step, err)
				}
			}
		}

		checkInvariant(step)
	}

	if len(rentalIDs) == 0 {
		t.Fatal("sequence never produced a successful booking")
	}
}
