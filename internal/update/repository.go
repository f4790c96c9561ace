package update

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(u *Update) error {
	return r.DB.Create(u).Error
}

func (r *Repository) GetByID(id uint) (*Update, error) {
	var u Update
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActive returns only the ticker items the public site should show.
func (r *Repository) ListActive() ([]Update, error) {
	var updates []Update
	err := r.DB.Where("active = TRUE").Order("created_at DESC").Find(&updates).Error
	return updates, err
}

func (r *Repository) ListAll() ([]Update, error) {
	var updates []Update
	err := r.DB.Order("created_at DESC").Find(&updates).Error
	return updates, err
}

func (r *Repository) Save(u *Update) error {
	return r.DB.Save(u).Error
}

func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&Update{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
