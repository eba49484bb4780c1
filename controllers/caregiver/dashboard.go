package caregiver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetDashboardOverview returns booking counts and earnings for the caller
func GetDashboardOverview(c *fiber.Ctx) error {
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

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		TotalEarnings  float64   `json:"total_earnings"`
		Rating         float64   `json:"rating"`
		IsAvailable    bool      `json:"is_available"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.BookingStatus, out *int64) {
		db.DB.Model(&models.Booking{}).
			Where("caregiver_id = ? AND status = ?", profile.ID, status).
			Count(out)
	}

	db.DB.Model(&models.Booking{}).Where("caregiver_id = ?", profile.ID).Count(&statistics.TotalBookings)
	countByStatus(models.BookingPending, &statistics.PendingCount)
	countByStatus(models.BookingConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.BookingCompleted, &statistics.CompletedCount)
	countByStatus(models.BookingCancelled, &statistics.CancelledCount)

	// Earnings from completed bookings
	type EarningsResult struct {
		TotalEarnings float64
	}
	var earningsResult EarningsResult
	db.DB.Model(&models.Booking{}).
		Where("caregiver_id = ? AND status = ?", profile.ID, models.BookingCompleted).
		Select("COALESCE(SUM(total_amount), 0) as total_earnings").
		Scan(&earningsResult)

	statistics.TotalEarnings = earningsResult.TotalEarnings
	statistics.Rating = profile.Rating
	statistics.IsAvailable = profile.IsAvailable
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
