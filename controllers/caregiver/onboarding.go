package caregiver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

type ServiceSelection struct {
	ServiceID  uint    `json:"service_id"`
	CustomRate float64 `json:"custom_rate"`
}

type AvailabilitySlot struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
}

type OnboardingInput struct {
	Bio              string             `json:"bio"`
	ExperienceYears  int                `json:"experience_years"`
	ZipCode          string             `json:"zip_code"`
	ServiceRadius    int                `json:"service_radius"`
	Services         []ServiceSelection `json:"services"`
	CertificationIDs []uint             `json:"certification_ids"`
	Availability     []AvailabilitySlot `json:"availability"`
}

// CompleteOnboarding fills in the caregiver profile and records offered
// services, certifications, and weekly availability. The inserts run in
// sequence without a transaction, so a later failure leaves the earlier rows.
func CompleteOnboarding(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	input := new(OnboardingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if len(input.Services) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one service is required",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	// Fall back to the service base price where no custom rate was given
	rates := make([]float64, 0, len(input.Services))
	caregiverServices := make([]models.CaregiverService, 0, len(input.Services))
	for _, selection := range input.Services {
		var service models.Service
		if err := db.DB.First(&service, selection.ServiceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Service not found",
			})
		}

		rate := selection.CustomRate
		if rate == 0 {
			rate = service.BasePrice
		}
		rates = append(rates, rate)
		caregiverServices = append(caregiverServices, models.CaregiverService{
			CaregiverID: profile.ID,
			ServiceID:   service.ID,
			CustomRate:  rate,
		})
	}

	// The profile hourly rate is the cheapest offered rate
	hourlyRate := rates[0]
	for _, rate := range rates {
		if rate < hourlyRate {
			hourlyRate = rate
		}
	}

	updates := map[string]interface{}{
		"bio":              input.Bio,
		"experience_years": input.ExperienceYears,
		"zip_code":         input.ZipCode,
		"service_radius":   input.ServiceRadius,
		"hourly_rate":      hourlyRate,
	}
	if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update caregiver profile",
		})
	}

	if err := db.DB.Create(&caregiverServices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save caregiver services",
		})
	}

	if len(input.CertificationIDs) > 0 {
		certifications := make([]models.CaregiverCertification, 0, len(input.CertificationIDs))
		for _, certID := range input.CertificationIDs {
			var certification models.Certification
			if err := db.DB.First(&certification, certID).Error; err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Certification not found",
				})
			}
			certifications = append(certifications, models.CaregiverCertification{
				CaregiverID:     profile.ID,
				CertificationID: certID,
				Verified:        false,
			})
		}
		if err := db.DB.Create(&certifications).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save certifications",
			})
		}
	}

	if len(input.Availability) > 0 {
		slots := make([]models.CaregiverAvailability, 0, len(input.Availability))
		for _, slot := range input.Availability {
			slots = append(slots, models.CaregiverAvailability{
				CaregiverID: profile.ID,
				DayOfWeek:   slot.DayOfWeek,
				StartTime:   slot.StartTime,
				EndTime:     slot.EndTime,
				IsAvailable: true,
			})
		}
		if err := db.DB.Create(&slots).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save availability",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Onboarding complete",
	})
}
