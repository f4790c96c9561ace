package merch

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(o *Order) error {
	return r.DB.Create(o).Error
}

func (r *Repository) List(paymentStatus string) ([]Order, error) {
	query := r.DB.Model(&Order{})
	if paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	var orders []Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *Repository) SetPaymentStatus(id uint, status string) error {
	result := r.DB.Model(&Order{}).Where("id = ?", id).Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
