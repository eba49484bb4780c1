package models

import (
	"gorm.io/gorm"
)

type Certification struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
}

type CaregiverCertification struct {
	gorm.Model
	CaregiverID     uint             `json:"caregiver_id"`
	Caregiver       CaregiverProfile `json:"caregiver,omitempty" gorm:"foreignKey:CaregiverID"`
	CertificationID uint             `json:"certification_id"`
	Certification   Certification    `json:"certification,omitempty" gorm:"foreignKey:CertificationID"`
	Verified        bool             `json:"verified" gorm:"default:false"`
}
