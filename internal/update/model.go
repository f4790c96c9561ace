package update

import "time"

// Update is one ticker/news item shown on the public site.
type Update struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Link      string    `gorm:"type:text" json:"link,omitempty"`
	Active    bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Update) TableName() string {
	return "updates"
}

type CreateUpdateRequest struct {
	Text   string `json:"text" binding:"required"`
	Link   string `json:"link"`
	Active *bool  `json:"active"`
}
