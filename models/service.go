package models

import (
	"gorm.io/gorm"
)

// Service is a catalog entry describing a type of care.
type Service struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
}

// CaregiverService links a caregiver to a catalog service with an optional
// rate override. CustomRate falls back to the service base price when zero.
type CaregiverService struct {
	gorm.Model
	CaregiverID uint             `json:"caregiver_id"`
	Caregiver   CaregiverProfile `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverID"`
	ServiceID   uint             `json:"service_id"`
	Service     Service          `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	CustomRate  float64          `json:"custom_rate"`
}
