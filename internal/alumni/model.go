package alumni

import "time"

// Registration is one alumni sign-up from the public site.
type Registration struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Batch      string    `gorm:"type:varchar(20);not null" json:"batch"` // graduation year
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Occupation string    `gorm:"type:varchar(255)" json:"occupation,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Registration) TableName() string {
	return "alumni_registrations"
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Batch      string `json:"batch" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Occupation string `json:"occupation"`
}
