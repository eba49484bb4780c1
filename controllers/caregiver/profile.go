package caregiver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetProfile returns the caller's caregiver profile with offered services
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Preload("User").
		Preload("Services").
		Preload("Services.Service").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	profile.User.Password = ""
	return c.JSON(profile)
}

// UpdateProfile updates the caller's caregiver profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	type ProfileInput struct {
		Bio             string  `json:"bio"`
		ExperienceYears int     `json:"experience_years"`
		HourlyRate      float64 `json:"hourly_rate"`
		ServiceRadius   int     `json:"service_radius"`
		ZipCode         string  `json:"zip_code"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	updates := map[string]interface{}{
		"bio":              input.Bio,
		"experience_years": input.ExperienceYears,
		"hourly_rate":      input.HourlyRate,
		"service_radius":   input.ServiceRadius,
		"zip_code":         input.ZipCode,
	}
	if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// UpdateAvailability toggles the caller's availability flag
func UpdateAvailability(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	type AvailabilityInput struct {
		IsAvailable bool `json:"is_available"`
	}

	input := new(AvailabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result := db.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", userID).
		Update("is_available", input.IsAvailable)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"is_available": input.IsAvailable,
	})
}
