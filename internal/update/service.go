package update

import (
	"context"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) Create(req *CreateUpdateRequest, adminID uint, ip string) (*Update, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	u := &Update{Text: req.Text, Link: req.Link, Active: active}
	err := s.Repo.Create(u)
	s.audit("UPDATE_CREATED", adminID, ip, u.ID, err)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Edit(id uint, req *CreateUpdateRequest, adminID uint, ip string) (*Update, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		s.audit("UPDATE_EDITED", adminID, ip, id, err)
		return nil, err
	}

	u.Text = req.Text
	u.Link = req.Link
	if req.Active != nil {
		u.Active = *req.Active
	}

	err = s.Repo.Save(u)
	s.audit("UPDATE_EDITED", adminID, ip, id, err)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListActive() ([]Update, error) {
	return s.Repo.ListActive()
}

func (s *Service) ListAll() ([]Update, error) {
	return s.Repo.ListAll()
}

func (s *Service) Delete(id uint, adminID uint, ip string) error {
	err := s.Repo.Delete(id)
	s.audit("UPDATE_DELETED", adminID, ip, id, err)
	return err
}

func (s *Service) audit(action string, adminID uint, ip string, id uint, err error) {
	status := "success"
	details := map[string]interface{}{"update_id": id}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, action, details, ip, status)
}
