package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	ClientID            uint             `json:"client_id"`
	Client              ClientProfile    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CaregiverID         uint             `json:"caregiver_id"`
	Caregiver           CaregiverProfile `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverID"`
	ServiceDate         time.Time        `json:"service_date"`
	StartTime           string           `json:"start_time"` // "HH:MM" in 24h
	EndTime             string           `json:"end_time"`   // "HH:MM" in 24h
	DurationHours       float64          `json:"duration_hours"`
	TotalAmount         float64          `json:"total_amount"`
	Status              BookingStatus    `json:"status"`
	ServiceAddress      string           `json:"service_address"`
	SpecialInstructions string           `json:"special_instructions"`
	Services            []BookingService `json:"services,omitempty" gorm:"foreignKey:BookingID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// BookingService is one service line on a booking with its per-line rate.
type BookingService struct {
	gorm.Model
	BookingID uint    `json:"booking_id"`
	ServiceID uint    `json:"service_id"`
	Service   Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Rate      float64 `json:"rate"`
}
