package caregiver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetCaregiverBookings returns the caller's bookings with client and service
// info, ordered by service date ascending
func GetCaregiverBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Client.User").
		Preload("Services.Service").
		Where("caregiver_id = ?", profile.ID).
		Order("service_date asc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	for i := range bookings {
		bookings[i].Client.User.Password = ""
	}

	return c.JSON(bookings)
}

// GetJobRequests returns the caller's pending bookings, newest first
func GetJobRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Client.User").
		Preload("Services.Service").
		Where("caregiver_id = ? AND status = ?", profile.ID, models.BookingPending).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch job requests",
		})
	}

	for i := range bookings {
		bookings[i].Client.User.Password = ""
	}

	return c.JSON(bookings)
}

// GetClients returns the clients the caregiver has bookings with
func GetClients(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	var clients []models.ClientProfile
	if err := db.DB.Preload("User").
		Joins("JOIN bookings ON bookings.client_id = client_profiles.id").
		Where("bookings.caregiver_id = ?", profile.ID).
		Group("client_profiles.id").
		Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clients",
		})
	}

	for i := range clients {
		clients[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"clients": clients,
		"count":   len(clients),
	})
}

// GetSchedule returns the caller's weekly availability slots
func GetSchedule(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var profile models.CaregiverProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver profile not found",
		})
	}

	var slots []models.CaregiverAvailability
	if err := db.DB.Where("caregiver_id = ?", profile.ID).
		Order("day_of_week, start_time").
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch schedule",
		})
	}

	return c.JSON(slots)
}
