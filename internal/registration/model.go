package registration

import (
	"time"

	"gorm.io/datatypes"
)

// Payment lifecycle states. pending is the only initial state.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// Registration is one submission against an event. The event reference is
// weak: the event may be deleted later and the registration survives with
// a dangling event_id.
type Registration struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EventID    uint   `gorm:"not null;index" json:"event_id"`
	ReceiptNo  string `gorm:"type:varchar(40);uniqueIndex" json:"receipt_no"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Email      string `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string `gorm:"type:varchar(20);not null" json:"phone"`
	College    string `gorm:"type:varchar(255);not null" json:"college"`
	Department string `gorm:"type:varchar(100);not null" json:"department"`
	Year       string `gorm:"type:varchar(20)" json:"year"`

	TeamName    string         `gorm:"type:varchar(100)" json:"team_name,omitempty"`
	TeamMembers datatypes.JSON `gorm:"type:jsonb" json:"team_members,omitempty"`

	// FeeDue is the event fee snapshotted at submission time; FeePaid is
	// what the admin actually recorded as collected.
	FeeDue        int    `gorm:"not null;default:0" json:"fee_due"`
	FeePaid       int    `gorm:"not null;default:0" json:"fee_paid"`
	PaymentStatus string `gorm:"type:varchar(10);not null;default:pending;index" json:"payment_status"`
	PaymentRef    string `gorm:"type:varchar(100)" json:"payment_ref,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// TeamMember is one additional participant beyond the lead.
type TeamMember struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SubmitRequest is the public submission payload.
type SubmitRequest struct {
	EventID     uint         `json:"eventId" binding:"required"`
	Name        string       `json:"name" binding:"required"`
	Email       string       `json:"email" binding:"required,email"`
	Phone       string       `json:"phone" binding:"required"`
	College     string       `json:"college" binding:"required"`
	Department  string       `json:"department" binding:"required"`
	Year        string       `json:"year"`
	TeamName    string       `json:"teamName"`
	TeamMembers []TeamMember `json:"teamMembers"`
	PaymentRef  string       `json:"paymentRef"`
}

// PaymentStatusRequest transitions a registration to paid or failed.
// Amount optionally overrides the fee_due snapshot when confirming.
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	Amount        *int   `json:"amount"`
}

// WithEvent is the admin listing projection: a registration joined with
// its event's name and fee. EventName is empty for dangling references
// and rendered as "unknown event" by the console.
type WithEvent struct {
	Registration
	EventName string `json:"event_name"`
	EventFee  int    `json:"event_fee"`
}

// ListFilter narrows the admin listing server-side.
type ListFilter struct {
	EventID uint   // 0 = all events
	Search  string // free text over name/email/phone
}
