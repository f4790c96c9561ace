package event

import (
	"time"

	"gorm.io/datatypes"
)

// Departments an event can belong to.
var Departments = []string{"general", "cse", "mech", "ece", "eee", "civil"}

func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// Event is one festival event. Date and time are stored as the free text
// the organisers supply; listings sort on the raw time string.
type Event struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Department      string         `gorm:"type:varchar(20);not null;index" json:"department"`
	Date            string         `gorm:"type:varchar(30);not null" json:"date"`
	Time            string         `gorm:"type:varchar(30);not null" json:"time"`
	Venue           string         `gorm:"type:varchar(255);not null" json:"venue"`
	Tagline         string         `gorm:"type:text" json:"tagline"`
	ImageURL        string         `gorm:"type:text" json:"image_url"`
	Rules           datatypes.JSON `gorm:"type:jsonb" json:"rules"` // ordered list of strings
	JudgingCriteria string         `gorm:"type:text" json:"judging_criteria"`
	Fee             int            `gorm:"not null;default:0" json:"fee"`
	TeamSize        string         `gorm:"type:varchar(50);not null;default:Individual" json:"team_size"`
	ContactName     string         `gorm:"type:varchar(100)" json:"contact_name"`
	ContactPhone    string         `gorm:"type:varchar(20)" json:"contact_phone"`
	RegistrationOpen bool          `gorm:"not null;default:true" json:"registration_open"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	Likes           int            `gorm:"not null;default:0" json:"likes"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// CreateEventRequest carries the admin payload for a new event.
type CreateEventRequest struct {
	Name            string   `json:"name" binding:"required"`
	Department      string   `json:"department" binding:"required"`
	Date            string   `json:"date" binding:"required"` // "2006-01-02"
	Time            string   `json:"time" binding:"required"` // free text, e.g. "3:00 PM"
	Venue           string   `json:"venue" binding:"required"`
	Tagline         string   `json:"tagline"`
	ImageURL        string   `json:"image_url"`
	Rules           []string `json:"rules"`
	JudgingCriteria string   `json:"judging_criteria"`
	Fee             *int     `json:"fee"`
	TeamSize        string   `json:"team_size"`
	ContactName     string   `json:"contact_name"`
	ContactPhone    string   `json:"contact_phone"`
	RegistrationOpen *bool   `json:"registration_open"`
	RegistrationDeadline string `json:"registration_deadline"` // "2006-01-02", optional
}

// UpdateEventRequest mirrors the create payload for full edits.
type UpdateEventRequest = CreateEventRequest

type RegistrationStatusRequest struct {
	Open *bool `json:"open" binding:"required"`
}

type LikeRequest struct {
	IsUnlike bool `json:"isUnlike"`
}
