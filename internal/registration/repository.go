package registration

import (
	"context"

	"gorm.io/gorm"
)

// Repository abstracts registration storage so the service can be tested
// against a fake.
type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uint) (*Registration, error)
	ListWithEvent(ctx context.Context, filter ListFilter) ([]WithEvent, error)
	UpdatePayment(ctx context.Context, id uint, status string, feePaid int) error
	Delete(ctx context.Context, id uint) error
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListWithEvent joins each registration with its event's name and fee,
// newest first. A LEFT JOIN keeps registrations whose event was deleted.
func (r *gormRepository) ListWithEvent(ctx context.Context, filter ListFilter) ([]WithEvent, error) {
	query := r.db.WithContext(ctx).
		Table("registrations").
		Select("registrations.*, COALESCE(events.name, '') AS event_name, COALESCE(events.fee, 0) AS event_fee").
		Joins("LEFT JOIN events ON events.id = registrations.event_id")

	if filter.EventID != 0 {
		query = query.Where("registrations.event_id = ?", filter.EventID)
	}
	if filter.Search != "" {
		ilike := "%" + filter.Search + "%"
		query = query.Where(
			"registrations.name ILIKE ? OR registrations.email ILIKE ? OR registrations.phone ILIKE ?",
			ilike, ilike, ilike,
		)
	}

	var rows []WithEvent
	err := query.Order("registrations.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *gormRepository) UpdatePayment(ctx context.Context, id uint, status string, feePaid int) error {
	result := r.db.WithContext(ctx).Model(&Registration{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"fee_paid":       feePaid,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Registration{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
