package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupBookingRoutes configures the shared booking routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Get("/:id", controllers.GetBooking)
	booking.Patch("/:id/status", controllers.UpdateBookingStatus)
}
