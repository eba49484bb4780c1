package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// CaregiverAvailability is one weekly time slot a caregiver works.
type CaregiverAvailability struct {
	gorm.Model
	CaregiverID uint             `json:"caregiver_id"`
	Caregiver   CaregiverProfile `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverID"`
	DayOfWeek   DayOfWeek        `json:"day_of_week"`
	StartTime   string           `json:"start_time"` // Format "HH:MM" in 24h
	EndTime     string           `json:"end_time"`   // Format "HH:MM" in 24h
	IsAvailable bool             `json:"is_available" gorm:"default:true"`
}
