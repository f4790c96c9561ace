package auth

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) FindByEmail(email string) (*Admin, error) {
	var admin Admin
	if err := r.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) FindByID(id uint) (*Admin, error) {
	var admin Admin
	if err := r.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) Create(admin *Admin) error {
	return r.DB.Create(admin).Error
}

func (r *Repository) List() ([]Admin, error) {
	var admins []Admin
	err := r.DB.Order("created_at ASC").Find(&admins).Error
	return admins, err
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Admin{}, id).Error
}

func (r *Repository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.DB.Model(&Admin{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
