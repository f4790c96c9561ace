package merch

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/invicta-fest/festival-backend/internal/auditlog"
)

var (
	ErrInvalidSize   = errors.New("size must be one of S, M, L, XL, XXL")
	ErrInvalidStatus = errors.New("paymentStatus must be paid or failed")
)

// Notifier pushes a dashboard notification for new orders.
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

func (s *Service) PlaceOrder(req *CreateOrderRequest, ip string) (*Order, error) {
	size := strings.ToUpper(strings.TrimSpace(req.Size))
	if !IsValidSize(size) {
		return nil, ErrInvalidSize
	}

	o := &Order{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Size:          size,
		Quantity:      req.Quantity,
		PaymentStatus: "pending",
	}

	if err := s.Repo.Create(o); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), nil, "MERCH_ORDER_PLACED", map[string]interface{}{
		"order_id": o.ID,
		"size":     o.Size,
		"quantity": o.Quantity,
	}, ip, "success")

	if s.Notifier != nil {
		s.Notifier.Notify("merch", "New merch order",
			o.Name+" ordered "+strconv.Itoa(o.Quantity)+" x "+o.Size)
	}

	return o, nil
}

func (s *Service) List(paymentStatus string) ([]Order, error) {
	return s.Repo.List(paymentStatus)
}

func (s *Service) SetPaymentStatus(id uint, status string, adminID uint, ip string) error {
	status = strings.ToLower(status)
	if status != "paid" && status != "failed" {
		return ErrInvalidStatus
	}

	err := s.Repo.SetPaymentStatus(id, status)

	auditStatus := "success"
	details := map[string]interface{}{"order_id": id, "to": status}
	if err != nil {
		auditStatus = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "MERCH_PAYMENT_CHANGED", details, ip, auditStatus)

	return err
}

func (s *Service) Delete(id uint, adminID uint, ip string) error {
	err := s.Repo.Delete(id)

	auditStatus := "success"
	details := map[string]interface{}{"order_id": id}
	if err != nil {
		auditStatus = "failure"
		details["error"] = err.Error()
	}
	s.AuditSvc.LogAction(context.Background(), &adminID, "MERCH_ORDER_DELETED", details, ip, auditStatus)

	return err
}
