package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
	"github.com/Hephzy-d/elderly-care-connect/utils"
)

// GetBooking returns a booking by ID with its relations
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Client.User").
		Preload("Caregiver.User").
		Preload("Services.Service").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	booking.Client.User.Password = ""
	booking.Caregiver.User.Password = ""

	return c.JSON(booking)
}

// UpdateBookingStatus overwrites a booking's status. The new value only has
// to be a known status; no transition checking is done, so a cancelled
// booking can be moved back to confirmed.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if !models.ValidBookingStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking status",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := db.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update booking status",
		})
	}

	return c.JSON(booking)
}
