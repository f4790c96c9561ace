package stall

import (
	"context"
	"errors"
	"strings"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

var ErrInvalidStatus = errors.New("status must be approved or rejected")

// Notifier pushes a dashboard notification for new applications.
type Notifier interface {
	Notify(category, title, message string)
}

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
	Notifier Notifier
}

func NewService(r *Repository, auditSvc auditlog.Service, notifier Notifier) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc, Notifier: notifier}
}

// Apply stores a public stall-auction application in pending state.
func (s *Service) Apply(req *ApplyRequest, ip string) (*Application, error) {
	app := &Application{
		BusinessName: strings.TrimSpace(req.BusinessName),
		OwnerName:    strings.TrimSpace(req.OwnerName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		StallType:    strings.ToLower(strings.TrimSpace(req.StallType)),
		BidAmount:    req.BidAmount,
		Notes:        req.Notes,
		Status:       StatusPending,
	}

	if err := s.Repo.Create(app); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), nil, "STALL_APPLICATION_SUBMITTED", map[string]interface{}{
		"application_id": app.ID,
		"business_name":  app.BusinessName,
		"bid_amount":     app.BidAmount,
	}, ip, "success")

	if s.Notifier != nil {
		s.Notifier.Notify("stall", "New stall application",
			app.BusinessName+" applied for a "+app.StallType+" stall")
	}

	return app, nil
}

func (s *Service) List(status string) ([]Application, error) {
	return s.Repo.List(status)
}

func (s *Service) SetStatus(id uint, status string, adminID uint, ip string) error {
	status = strings.ToLower(status)
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}

	err := s.Repo.SetStatus(id, status)

	auditStatus := "success"
	details := map[string]interface{}{"application_id": id, "to": status}
	if err != nil {
		auditStatus = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "STALL_STATUS_CHANGED", details, ip, auditStatus)

	return err
}

func (s *Service) Delete(id uint, adminID uint, ip string) error {
	err := s.Repo.Delete(id)

	auditStatus := "success"
	details := map[string]interface{}{"application_id": id}
	if err != nil {
		auditStatus = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "STALL_APPLICATION_DELETED", details, ip, auditStatus)

	return err
}
