package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
	"github.com/invicta-fest/festival-backend/internal/event"
	"github.com/invicta-fest/festival-backend/internal/teamsize"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration is closed for this event")
	ErrDeadlinePassed     = errors.New("registration deadline has passed")
	ErrTeamNameRequired   = errors.New("team name is required for team registrations")
	ErrTeamSizeOutOfRange = errors.New("team size is outside the allowed range for this event")
	ErrInvalidStatus      = errors.New("paymentStatus must be paid or failed")
)

// EventSource is the read-side of the event catalog the registration
// service depends on (fee snapshot, open flag, team-size policy).
type EventSource interface {
	GetByID(id uint) (*event.Event, error)
}

// Publisher pushes a submitted-registration message onto the async
// pipeline (Kafka in production). A nil Publisher disables publishing.
type Publisher interface {
	PublishRegistration(ctx context.Context, msg SubmittedMessage) error
}

// SubmittedMessage is the payload published after a successful submission.
type SubmittedMessage struct {
	RegistrationID uint   `json:"registration_id"`
	ReceiptNo      string `json:"receipt_no"`
	EventID        uint   `json:"event_id"`
	EventName      string `json:"event_name"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TeamName       string `json:"team_name,omitempty"`
	FeeDue         int    `json:"fee_due"`
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest, ip string) (*Registration, error)
	List(ctx context.Context, filter ListFilter) ([]WithEvent, error)
	SetPaymentStatus(ctx context.Context, id uint, req PaymentStatusRequest, adminID uint, ip string) (*Registration, error)
	Delete(ctx context.Context, id uint, adminID uint, ip string) error
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
}

type service struct {
	repo      Repository
	events    EventSource
	auditSvc  auditlog.Service
	publisher Publisher
}

func NewService(repo Repository, events EventSource, auditSvc auditlog.Service, publisher Publisher) Service {
	return &service{
		repo:      repo,
		events:    events,
		auditSvc:  auditSvc,
		publisher: publisher,
	}
}

// ==============================
// Public submission
// ==============================

// Submit validates and stores one registration. Eligibility (open flag,
// deadline, team-size bounds) is checked here against the event record,
// not left to the form.
func (s *service) Submit(ctx context.Context, req SubmitRequest, ip string) (*Registration, error) {
	ev, err := s.events.GetByID(req.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if !ev.RegistrationOpen {
		return nil, ErrRegistrationClosed
	}
	if ev.RegistrationDeadline != nil {
		// deadline is a date, inclusive through end of that day
		cutoff := ev.RegistrationDeadline.Add(24 * time.Hour)
		if time.Now().After(cutoff) {
			return nil, ErrDeadlinePassed
		}
	}

	if len(req.TeamMembers) > 0 && strings.TrimSpace(req.TeamName) == "" {
		return nil, ErrTeamNameRequired
	}

	bounds := teamsize.Parse(ev.TeamSize)
	total := 1 + len(req.TeamMembers) // lead participant fills one slot
	if !bounds.Allows(total) {
		return nil, fmt.Errorf("%w: got %d, allowed %d-%d", ErrTeamSizeOutOfRange, total, bounds.Min, bounds.Max)
	}

	var membersJSON []byte
	if len(req.TeamMembers) > 0 {
		membersJSON, err = json.Marshal(req.TeamMembers)
		if err != nil {
			return nil, err
		}
	}

	reg := &Registration{
		EventID:       ev.ID,
		ReceiptNo:     "REG-" + uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		College:       strings.TrimSpace(req.College),
		Department:    strings.TrimSpace(req.Department),
		Year:          strings.TrimSpace(req.Year),
		TeamName:      strings.TrimSpace(req.TeamName),
		TeamMembers:   membersJSON,
		FeeDue:        ev.Fee,
		FeePaid:       0,
		PaymentStatus: StatusPending,
		PaymentRef:    strings.TrimSpace(req.PaymentRef),
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, nil, "REGISTRATION_SUBMITTED", map[string]interface{}{
		"registration_id": reg.ID,
		"event_id":        ev.ID,
		"event_name":      ev.Name,
		"email":           reg.Email,
		"team_size":       total,
	}, ip, "success")

	if s.publisher != nil {
		// best effort; the registration is already stored
		_ = s.publisher.PublishRegistration(ctx, SubmittedMessage{
			RegistrationID: reg.ID,
			ReceiptNo:      reg.ReceiptNo,
			EventID:        ev.ID,
			EventName:      ev.Name,
			Name:           reg.Name,
			Email:          reg.Email,
			TeamName:       reg.TeamName,
			FeeDue:         reg.FeeDue,
		})
	}

	return reg, nil
}

// ==============================
// Admin operations
// ==============================

func (s *service) List(ctx context.Context, filter ListFilter) ([]WithEvent, error) {
	return s.repo.ListWithEvent(ctx, filter)
}

// SetPaymentStatus moves a registration to paid or failed. Confirming as
// paid records the fee_due snapshot taken at submission unless the admin
// supplies an explicit amount; a later event fee edit does not change
// what gets recorded.
func (s *service) SetPaymentStatus(ctx context.Context, id uint, req PaymentStatusRequest, adminID uint, ip string) (*Registration, error) {
	status := strings.ToLower(req.PaymentStatus)
	if status != StatusPaid && status != StatusFailed {
		return nil, ErrInvalidStatus
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	feePaid := 0
	if status == StatusPaid {
		feePaid = reg.FeeDue
		if req.Amount != nil {
			if *req.Amount < 0 {
				return nil, errors.New("amount cannot be negative")
			}
			feePaid = *req.Amount
		}
	}

	if err := s.repo.UpdatePayment(ctx, id, status, feePaid); err != nil {
		s.auditSvc.LogAction(ctx, &adminID, "PAYMENT_STATUS_CHANGED", map[string]interface{}{
			"registration_id": id,
			"to":              status,
			"error":           err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.auditSvc.LogAction(ctx, &adminID, "PAYMENT_STATUS_CHANGED", map[string]interface{}{
		"registration_id": id,
		"from":            reg.PaymentStatus,
		"to":              status,
		"fee_paid":        feePaid,
	}, ip, "success")

	reg.PaymentStatus = status
	reg.FeePaid = feePaid
	return reg, nil
}

func (s *service) Delete(ctx context.Context, id uint, adminID uint, ip string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.auditSvc.LogAction(ctx, &adminID, "REGISTRATION_DELETED", map[string]interface{}{
			"registration_id": id,
			"error":           err.Error(),
		}, ip, "failure")
		return err
	}

	s.auditSvc.LogAction(ctx, &adminID, "REGISTRATION_DELETED", map[string]interface{}{
		"registration_id": id,
	}, ip, "success")

	return nil
}

func (s *service) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	return s.repo.CountByEvent(ctx, eventID)
}
