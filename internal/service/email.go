package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"vehiclerental-backend/internal/domain"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendBookingConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking is confirmed.\n\nRental ID: %s\nVehicle: %s\nPeriod: %s\nTotal cost: %.2f\n\nBest regards,\nThe Rentals Team",
		name, rec.RentalID, rec.VehicleID, rec.Period, rec.TotalCost)
	return s.send(email, name, "Booking confirmed", body)
}

func (s *sendGridEmailService) SendReturnConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental %s of vehicle %s has been returned. Thank you!\n\nBest regards,\nThe Rentals Team",
		name, rec.RentalID, rec.VehicleID)
	return s.send(email, name, "Return confirmed", body)
}

func (s *sendGridEmailService) SendOverdueReminder(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental %s of vehicle %s was due back on %s and has not been returned yet. Please return it as soon as possible.\n\nBest regards,\nThe Rentals Team",
		name, rec.RentalID, rec.VehicleID, rec.Period.End.Format(domain.PeriodLayout))
	return s.send(email, name, "Rental overdue", body)
}

// noopEmailService is used when email is disabled in config.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendBookingConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	return nil
}

func (noopEmailService) SendReturnConfirmation(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	return nil
}

func (noopEmailService) SendOverdueReminder(ctx context.Context, email, name string, rec *domain.RentalRecord) error {
	return nil
}
