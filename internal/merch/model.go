package merch

import "time"

// Valid t-shirt sizes offered by the merch stand.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

func IsValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Order is one merchandise (t-shirt) order. Payment is recorded as a
// status string only, just like registrations.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`
	Size          string    `gorm:"type:varchar(5);not null" json:"size"`
	Quantity      int       `gorm:"not null;default:1" json:"quantity"`
	PaymentStatus string    `gorm:"type:varchar(10);not null;default:pending;index" json:"payment_status"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Order) TableName() string {
	return "merch_orders"
}

type CreateOrderRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"` // paid | failed
}
