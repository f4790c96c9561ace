package notification

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(n *Notification) error {
	return r.DB.Create(n).Error
}

func (r *Repository) List(limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var items []Notification
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *Repository) MarkRead(id uint) error {
	res := r.DB.Model(&Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
