package gallery

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(item *MediaItem) error {
	return r.DB.Create(item).Error
}

func (r *Repository) List(category string) ([]MediaItem, error) {
	query := r.DB.Model(&MediaItem{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []MediaItem
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&MediaItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
