package models

import "time"

type GalleryImage struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	ObjectKey string `gorm:"size:255;not null" json:"-"`
	URL       string `gorm:"size:512;not null" json:"url"`
	Caption   string `gorm:"size:255" json:"caption"`
	Position  int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
