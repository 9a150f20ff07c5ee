package models

import "time"

// Payment states an appointment can carry.
const (
	PaymentUnpaid   = "unpaid"
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Appointment keeps the wall-clock storage shape: a calendar date plus
// "HH:MM" bounds, both naive (no timezone, no cross-midnight ranges). Date,
// times and owner are fixed at creation; only price, deposit flag, payment
// status and notes are editable.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint `json:"salon_id"`

	OwnerID uint `gorm:"index:idx_appointments_owner_date" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceType    string `gorm:"size:50" json:"service_type"`
	ServiceDetails string `gorm:"size:255" json:"service_details"`

	Date        string `gorm:"size:10;index:idx_appointments_owner_date" json:"date"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	DurationMin int    `json:"duration_min"`

	Price         float64 `json:"price"`
	DepositPaid   bool    `json:"deposit_paid"`
	PaymentStatus string  `gorm:"size:20;default:'unpaid'" json:"payment_status"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
