package models

import "time"

// Client has no login; it is a salon-scoped contact card. Any one of the
// identifying fields may be empty.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	InstagramName string `gorm:"size:100" json:"instagram_name"`
	Name          string `gorm:"size:100" json:"name"`
	Email         string `gorm:"size:100" json:"email"`
	Phone         string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
