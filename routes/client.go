package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers/client"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupClientRoutes configures all client related routes
func SetupClientRoutes(app *fiber.App) {
	clientGroup := app.Group("/client", middleware.Protected(), middleware.RequireRole("client"))
	clientGroup.Get("/dashboard", client.GetDashboardOverview)
	clientGroup.Get("/caregivers", client.GetAvailableCaregivers)
	clientGroup.Get("/caregivers/:id", client.GetCaregiverDetails)
	clientGroup.Post("/bookings", client.CreateBooking)
	clientGroup.Get("/bookings", client.GetClientBookings)
	clientGroup.Get("/profile", client.GetProfile)
	clientGroup.Patch("/profile", client.UpdateProfile)
}
