package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetDashboardOverview returns the caller's booking counts and upcoming bookings
func GetDashboardOverview(c *fiber.Ctx) error {
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

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.BookingStatus, out *int64) {
		db.DB.Model(&models.Booking{}).
			Where("client_id = ? AND status = ?", clientProfile.ID, status).
			Count(out)
	}

	db.DB.Model(&models.Booking{}).Where("client_id = ?", clientProfile.ID).Count(&statistics.TotalBookings)
	countByStatus(models.BookingPending, &statistics.PendingCount)
	countByStatus(models.BookingConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.BookingCompleted, &statistics.CompletedCount)
	countByStatus(models.BookingCancelled, &statistics.CancelledCount)
	statistics.LastUpdated = time.Now()

	// Upcoming bookings, soonest first
	limit := 5
	if c.Query("limit") != "" {
		parsedLimit := c.QueryInt("limit")
		if parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	var upcoming []models.Booking
	if err := db.DB.Preload("Caregiver.User").
		Preload("Services.Service").
		Where("client_id = ? AND service_date >= ? AND status IN (?)",
			clientProfile.ID, today, []models.BookingStatus{models.BookingPending, models.BookingConfirmed}).
		Order("service_date asc").
		Limit(limit).
		Find(&upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for i := range upcoming {
		upcoming[i].Caregiver.User.Password = ""
	}

	return c.JSON(fiber.Map{
		"statistics": statistics,
		"upcoming":   upcoming,
	})
}
