package notification

import "time"

// Notification is one in-app bell entry shown on the admin dashboard.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"size:30;not null;index" json:"category"` // registration, stall, merch, system
	Title     string    `gorm:"size:150;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
