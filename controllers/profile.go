package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
	"github.com/Hephzy-d/elderly-care-connect/utils"
)

// UpdateAvatar uploads the caller's avatar image and stores the URL
func UpdateAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Avatar file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("avatar_%d", userID)
	url, err := utils.UploadToCloudinary(file, publicID, "avatars")
	if err != nil {
		log.Printf("Cloudinary upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload avatar",
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save avatar URL",
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": url,
	})
}
