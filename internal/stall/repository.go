package stall

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(app *Application) error {
	return r.DB.Create(app).Error
}

// List returns applications newest first, optionally filtered by status,
// highest bid first within the same day so the auction view reads naturally.
func (r *Repository) List(status string) ([]Application, error) {
	query := r.DB.Model(&Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []Application
	err := query.Order("created_at DESC, bid_amount DESC").Find(&apps).Error
	return apps, err
}

func (r *Repository) SetStatus(id uint, status string) error {
	result := r.DB.Model(&Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&Application{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
