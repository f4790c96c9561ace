package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/invicta-fest/festival-backend/config"
	"github.com/invicta-fest/festival-backend/internal/registration"
)

type Service struct {
	Repo  *Repository
	Email *EmailSender
}

func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{
		Repo:  repo,
		Email: NewEmailSender(cfg),
	}
}

// HandleRegistrationSubmitted runs for every registration message, whether it
// arrived through Kafka or was dispatched directly. It records a dashboard
// notification and emails the participant their receipt number.
func (s *Service) HandleRegistrationSubmitted(ctx context.Context, msg registration.SubmittedMessage) error {
	n := &Notification{
		Category: "registration",
		Title:    fmt.Sprintf("New registration for %s", msg.EventName),
		Message:  fmt.Sprintf("%s registered for %s (receipt %s)", msg.Name, msg.EventName, msg.ReceiptNo),
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("failed to store registration notification: %v", err)
	}

	subject := fmt.Sprintf("Registration confirmed: %s", msg.EventName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour registration for %s has been received.\n\nReceipt number: %s\nFee due: %d\n\nPlease complete the payment at the registration desk and keep the receipt number handy.\n",
		msg.Name, msg.EventName, msg.ReceiptNo, msg.FeeDue,
	)
	if msg.TeamName != "" {
		body = fmt.Sprintf(
			"Hello %s,\n\nYour team %q has been registered for %s.\n\nReceipt number: %s\nFee due: %d\n\nPlease complete the payment at the registration desk and keep the receipt number handy.\n",
			msg.Name, msg.TeamName, msg.EventName, msg.ReceiptNo, msg.FeeDue,
		)
	}

	if err := s.Email.Send([]string{msg.Email}, subject, body); err != nil {
		log.Printf("failed to send confirmation email to %s: %v", msg.Email, err)
		return err
	}
	return nil
}

// Notify records a dashboard-only notification for non-registration activity
// such as stall applications and merch orders.
func (s *Service) Notify(category, title, message string) {
	n := &Notification{Category: category, Title: title, Message: message}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("failed to store %s notification: %v", category, err)
	}
}

func (s *Service) List(limit int) ([]Notification, error) {
	return s.Repo.List(limit)
}

func (s *Service) MarkRead(id uint) error {
	return s.Repo.MarkRead(id)
}
