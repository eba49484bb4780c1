package client

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetProfile returns the caller's client profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.ClientProfile
	if err := db.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	profile.User.Password = ""
	return c.JSON(profile)
}

// UpdateProfile updates the caller's client profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	type ProfileInput struct {
		Address               string `json:"address"`
		EmergencyContactName  string `json:"emergency_contact_name"`
		EmergencyContactPhone string `json:"emergency_contact_phone"`
		MedicalConditions     string `json:"medical_conditions"`
		SpecialInstructions   string `json:"special_instructions"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var profile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	updates := map[string]interface{}{
		"address":                 input.Address,
		"emergency_contact_name":  input.EmergencyContactName,
		"emergency_contact_phone": input.EmergencyContactPhone,
		"medical_conditions":      input.MedicalConditions,
		"special_instructions":    input.SpecialInstructions,
	}
	if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(profile)
}
