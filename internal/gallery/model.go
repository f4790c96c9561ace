package gallery

import "time"

// MediaItem is one gallery entry. Upload/hosting happens elsewhere; only
// the URL is stored.
type MediaItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	Category  string    `gorm:"type:varchar(50);index" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MediaItem) TableName() string {
	return "gallery_items"
}

type CreateMediaRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	Category string `json:"category"`
}
