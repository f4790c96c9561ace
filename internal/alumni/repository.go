package alumni

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(reg *Registration) error {
	return r.DB.Create(reg).Error
}

func (r *Repository) List() ([]Registration, error) {
	var regs []Registration
	err := r.DB.Order("created_at DESC").Find(&regs).Error
	return regs, err
}

func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&Registration{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
