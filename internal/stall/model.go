package stall

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is one stall-auction bid submitted from the public site.
type Application struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessName string    `gorm:"type:varchar(255);not null" json:"business_name"`
	OwnerName    string    `gorm:"type:varchar(100);not null" json:"owner_name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	StallType    string    `gorm:"type:varchar(50);not null" json:"stall_type"` // food, merchandise, games, other
	BidAmount    int       `gorm:"not null" json:"bid_amount"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	Status       string    `gorm:"type:varchar(10);not null;default:pending;index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Application) TableName() string {
	return "stall_applications"
}

type ApplyRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	OwnerName    string `json:"ownerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	StallType    string `json:"stallType" binding:"required"`
	BidAmount    int    `json:"bidAmount" binding:"required,min=0"`
	Notes        string `json:"notes"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"` // approved | rejected
}
