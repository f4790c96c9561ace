package event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

var (
	ErrInvalidDepartment = errors.New("department must be one of general, cse, mech, ece, eee, civil")
	ErrInvalidDate       = errors.New("invalid date format. Use YYYY-MM-DD")
)

// Service wraps business logic for festival events
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func buildEvent(req *CreateEventRequest) (*Event, error) {
	if !IsValidDepartment(req.Department) {
		return nil, ErrInvalidDepartment
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	fee := 0
	if req.Fee != nil {
		fee = *req.Fee
	}
	if fee < 0 {
		return nil, errors.New("fee cannot be negative")
	}

	teamSize := req.TeamSize
	if teamSize == "" {
		teamSize = "Individual"
	}

	open := true
	if req.RegistrationOpen != nil {
		open = *req.RegistrationOpen
	}

	var deadline *time.Time
	if req.RegistrationDeadline != "" {
		parsed, err := time.Parse("2006-01-02", req.RegistrationDeadline)
		if err != nil {
			return nil, errors.New("invalid registration_deadline format. Use YYYY-MM-DD")
		}
		deadline = &parsed
	}

	rules := req.Rules
	if rules == nil {
		rules = []string{}
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return nil, err
	}

	return &Event{
		Name:            req.Name,
		Department:      req.Department,
		Date:            req.Date,
		Time:            req.Time,
		Venue:           req.Venue,
		Tagline:         req.Tagline,
		ImageURL:        req.ImageURL,
		Rules:           rulesJSON,
		JudgingCriteria: req.JudgingCriteria,
		Fee:             fee,
		TeamSize:        teamSize,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		RegistrationOpen: open,
		RegistrationDeadline: deadline,
	}, nil
}

// ===========================
// Create Event
func (s *Service) CreateEvent(req *CreateEventRequest, adminID uint, ip string) (*Event, error) {
	e, err := buildEvent(req)
	if err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	if err := s.Repo.Create(e); err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_CREATED", map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_CREATED", map[string]interface{}{
		"event_id":   e.ID,
		"name":       e.Name,
		"department": e.Department,
		"fee":        e.Fee,
	}, ip, "success")

	return e, nil
}

// ===========================
// Get / List
func (s *Service) GetEventByID(id uint) (*Event, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) ListEvents(department string) ([]Event, error) {
	if department != "" && !IsValidDepartment(department) {
		return nil, ErrInvalidDepartment
	}
	return s.Repo.List(department)
}

// ===========================
// Update Event (full edit)
func (s *Service) UpdateEvent(id uint, req *UpdateEventRequest, adminID uint, ip string) (*Event, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_UPDATED", map[string]interface{}{
			"event_id": id,
			"error":    "event not found",
		}, ip, "failure")
		return nil, err
	}

	updated, err := buildEvent(req)
	if err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_UPDATED", map[string]interface{}{
			"event_id": id,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	updated.ID = existing.ID
	updated.Likes = existing.Likes
	updated.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(updated); err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_UPDATED", map[string]interface{}{
			"event_id": id,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_UPDATED", map[string]interface{}{
		"event_id": updated.ID,
		"name":     updated.Name,
	}, ip, "success")

	return updated, nil
}

// ===========================
// Registration flag
func (s *Service) SetRegistrationOpen(id uint, open bool, adminID uint, ip string) error {
	err := s.Repo.SetRegistrationOpen(id, open)

	status := "success"
	details := map[string]interface{}{"event_id": id, "open": open}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_REGISTRATION_TOGGLED", details, ip, status)

	return err
}

// ===========================
// Likes. Public, not audited.
func (s *Service) ToggleLike(id uint, isUnlike bool) error {
	if isUnlike {
		return s.Repo.DecrementLikes(id)
	}
	return s.Repo.IncrementLikes(id)
}

// ===========================
// Delete Event
func (s *Service) DeleteEvent(id uint, adminID uint, ip string) error {
	e, err := s.Repo.GetByID(id)
	if err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_DELETED", map[string]interface{}{
			"event_id": id,
			"error":    "event not found",
		}, ip, "failure")
		return err
	}

	if err := s.Repo.Delete(id); err != nil {
		s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_DELETED", map[string]interface{}{
			"event_id": id,
			"error":    err.Error(),
		}, ip, "failure")
		return err
	}

	s.AuditSvc.LogAction(context.Background(), &adminID, "EVENT_DELETED", map[string]interface{}{
		"event_id": id,
		"name":     e.Name,
	}, ip, "success")

	return nil
}
