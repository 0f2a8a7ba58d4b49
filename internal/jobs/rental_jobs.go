package jobs

import (
	"context"
	"time"

	"vehiclerental-backend/internal/logger"
)

// SendOverdueReminders emails every renter who still holds a vehicle past the
// end of its rental period. The ledger is not mutated; a record stays active
// until the vehicle is actually returned.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.RentalRepository.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to load overdue rentals", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue rentals found")
			return
		}

		sent := 0
		for i := range overdue {
			rec := &overdue[i]

			renter, err := jr.store.RenterRepository.GetByID(ctx, rec.RenterID)
			if err != nil {
				logger.Error("Failed to load renter for overdue reminder",
					"rental_id", rec.RentalID, "renter_id", rec.RenterID, "error", err)
				continue
			}
			if renter == nil || renter.ContactInfo == "" {
				logger.Warn("Skipping overdue reminder, no contact info",
					"rental_id", rec.RentalID, "renter_id", rec.RenterID)
				continue
			}

			if err := jr.services.Email.SendOverdueReminder(ctx, renter.ContactInfo, renter.Name, rec); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rec.RentalID, "renter_id", rec.RenterID, "error", err)
				continue
			}

			logger.Debug("Sent overdue reminder",
				"rental_id", rec.RentalID,
				"renter_id", rec.RenterID,
				"vehicle_id", rec.VehicleID,
				"due", rec.Period.End)
			sent++
		}

		logger.Info("Overdue reminders sent", "overdue", len(overdue), "sent", sent)
	})
}
