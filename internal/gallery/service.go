package gallery

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

func (s *Service) AddItem(req *CreateMediaRequest, adminID uint, ip string) (*MediaItem, error) {
	item := &MediaItem{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}

	err := s.Repo.Create(item)

	status := "success"
	details := map[string]interface{}{"title": req.Title}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	} else {
		details["item_id"] = item.ID
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "GALLERY_ITEM_ADDED", details, ip, status)

	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(category string) ([]MediaItem, error) {
	return s.Repo.List(category)
}

func (s *Service) DeleteItem(id uint, adminID uint, ip string) error {
	err := s.Repo.Delete(id)

	status := "success"
	details := map[string]interface{}{"item_id": id}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "GALLERY_ITEM_DELETED", details, ip, status)

	return err
}
