package models

import (
	"gorm.io/gorm"
)

// ClientProfile is the role-specific profile for users with the client role.
type ClientProfile struct {
	gorm.Model
	UserID                uint   `json:"user_id"`
	User                  User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Address               string `json:"address"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	MedicalConditions     string `json:"medical_conditions"`
	SpecialInstructions   string `json:"special_instructions"`
}

type CaregiverStatus string

const (
	CaregiverPendingApproval CaregiverStatus = "pending_approval"
	CaregiverApproved        CaregiverStatus = "approved"
	CaregiverSuspended       CaregiverStatus = "suspended"
	CaregiverRejected        CaregiverStatus = "rejected"
)

// CaregiverProfile is the role-specific profile for users with the caregiver role.
type CaregiverProfile struct {
	gorm.Model
	UserID                 uint               `json:"user_id"`
	User                   User               `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Bio                    string             `json:"bio"`
	ExperienceYears        int                `json:"experience_years"`
	HourlyRate             float64            `json:"hourly_rate"`
	ServiceRadius          int                `json:"service_radius"`
	ZipCode                string             `json:"zip_code"`
	Status                 CaregiverStatus    `json:"status"`
	Rating                 float64            `json:"rating" gorm:"type:decimal(2,1)"`
	TotalReviews           int                `json:"total_reviews"`
	TotalJobsCompleted     int                `json:"total_jobs_completed"`
	BackgroundCheckDone    bool               `json:"background_check_verified" gorm:"default:false"`
	IsAvailable            bool               `json:"is_available" gorm:"default:true"`
	Services               []CaregiverService `json:"services,omitempty" gorm:"foreignKey:CaregiverID"`
}

func (p *CaregiverProfile) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = CaregiverPendingApproval
	}
	return nil
}
