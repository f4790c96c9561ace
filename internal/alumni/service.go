package alumni

import (
	"context"
	"strings"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) Register(req *RegisterRequest, ip string) (*Registration, error) {
	reg := &Registration{
		Name:       strings.TrimSpace(req.Name),
		Batch:      strings.TrimSpace(req.Batch),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Occupation: strings.TrimSpace(req.Occupation),
	}

	if err := s.Repo.Create(reg); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), nil, "ALUMNI_REGISTERED", map[string]interface{}{
		"registration_id": reg.ID,
		"batch":           reg.Batch,
	}, ip, "success")

	return reg, nil
}

func (s *Service) List() ([]Registration, error) {
	return s.Repo.List()
}

func (s *Service) Delete(id uint, adminID uint, ip string) error {
	err := s.Repo.Delete(id)

	status := "success"
	details := map[string]interface{}{"registration_id": id}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "ALUMNI_DELETED", details, ip, status)

	return err
}
