package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Tagline string `gorm:"size:255" json:"tagline"`
	About   string `gorm:"type:text" json:"about"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	// Day-grid bounds for the dashboard calendar, in whole hours.
	DayStartHour int `gorm:"default:8" json:"day_start_hour"`
	DayEndHour   int `gorm:"default:22" json:"day_end_hour"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
