package client

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
	"github.com/Hephzy-d/elderly-care-connect/utils"
)

type BookingInput struct {
	CaregiverID         uint    `json:"caregiver_id"`
	ServiceDate         string  `json:"service_date"` // "YYYY-MM-DD"
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	DurationHours       float64 `json:"duration_hours"`
	TotalAmount         float64 `json:"total_amount"`
	ServiceAddress      string  `json:"service_address"`
	SpecialInstructions string  `json:"special_instructions"`
	ServiceIDs          []uint  `json:"service_ids"`
}

// CreateBooking inserts the booking row and one booking service line per
// selected service. The line rate is the total split evenly across services,
// not itemized per service price. The two inserts are not wrapped in a
// transaction: a failed line insert leaves the booking row behind.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.CaregiverID == 0 || input.ServiceDate == "" || len(input.ServiceIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	serviceDate, err := time.Parse("2006-01-02", input.ServiceDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, use YYYY-MM-DD",
		})
	}

	// Resolve the caller's client profile
	var clientProfile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&clientProfile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var caregiver models.CaregiverProfile
	if err := db.DB.Preload("User").First(&caregiver, input.CaregiverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver not found",
		})
	}

	booking := models.Booking{
		ClientID:            clientProfile.ID,
		CaregiverID:         input.CaregiverID,
		ServiceDate:         serviceDate,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		DurationHours:       input.DurationHours,
		TotalAmount:         input.TotalAmount,
		ServiceAddress:      input.ServiceAddress,
		SpecialInstructions: input.SpecialInstructions,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	rate := utils.LineRate(input.TotalAmount, input.DurationHours, len(input.ServiceIDs))
	bookingServices := make([]models.BookingService, 0, len(input.ServiceIDs))
	for _, serviceID := range input.ServiceIDs {
		bookingServices = append(bookingServices, models.BookingService{
			BookingID: booking.ID,
			ServiceID: serviceID,
			Rate:      rate,
		})
	}
	if err := db.DB.Create(&bookingServices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking services",
		})
	}

	// Notify the caregiver, best effort
	go func() {
		subject := "New Booking Request"
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>You have a new booking request.</p>
			<ul>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s - %s</li>
				<li><strong>Address:</strong> %s</li>
			</ul>
			<p>Please review it on your dashboard.</p>
		`, caregiver.User.FirstName, input.ServiceDate, input.StartTime, input.EndTime, input.ServiceAddress)
		if err := utils.SendEmail(caregiver.User.Email, subject, body); err != nil {
			log.Printf("Failed to send booking notification: %v", err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetClientBookings returns the caller's bookings with caregiver and service
// info, ordered by service date ascending
func GetClientBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	var clientProfile models.ClientProfile
	if err := db.DB.Where("user_id = ?", userID).First(&clientProfile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client profile not found",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Caregiver.User").
		Preload("Services.Service").
		Where("client_id = ?", clientProfile.ID).
		Order("service_date asc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	for i := range bookings {
		bookings[i].Caregiver.User.Password = ""
	}

	return c.JSON(bookings)
}
