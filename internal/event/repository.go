package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// Create Event
func (r *Repository) Create(e *Event) error {
	return r.DB.Create(e).Error
}

// ===========================
// Get Event By ID
func (r *Repository) GetByID(id uint) (*Event, error) {
	var e Event
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// List Events, optional department filter, ordered by the stored time
// string ascending. The ordering is lexicographic on purpose: the site
// has always sorted on the raw "3:00 PM" style strings.
func (r *Repository) List(department string) ([]Event, error) {
	query := r.DB.Model(&Event{})
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var events []Event
	err := query.Order("time ASC").Find(&events).Error
	return events, err
}

// ===========================
// Update Event
func (r *Repository) Update(e *Event) error {
	return r.DB.Save(e).Error
}

// ===========================
// Flip the registration-open flag only
func (r *Repository) SetRegistrationOpen(id uint, open bool) error {
	result := r.DB.Model(&Event{}).Where("id = ?", id).Update("registration_open", open)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===========================
// Like counter, single atomic UPDATE. The decrement is conditional on
// likes > 0 so the counter can never go negative.
func (r *Repository) IncrementLikes(id uint) error {
	result := r.DB.Model(&Event{}).Where("id = ?", id).
		Update("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DecrementLikes(id uint) error {
	result := r.DB.Model(&Event{}).Where("id = ? AND likes > 0", id).
		Update("likes", gorm.Expr("likes - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the event is missing or the counter is already at zero;
		// distinguish so zero-floor unlikes stay a no-op.
		var count int64
		if err := r.DB.Model(&Event{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// ===========================
// Delete Event. Registrations referencing it are left untouched.
func (r *Repository) Delete(id uint) error {
	result := r.DB.Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
