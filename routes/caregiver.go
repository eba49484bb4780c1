package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers/caregiver"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupCaregiverRoutes configures all caregiver related routes
func SetupCaregiverRoutes(app *fiber.App) {
	caregiverGroup := app.Group("/caregiver", middleware.Protected(), middleware.RequireRole("caregiver"))
	caregiverGroup.Get("/dashboard", caregiver.GetDashboardOverview)
	caregiverGroup.Post("/onboarding", caregiver.CompleteOnboarding)
	caregiverGroup.Get("/bookings", caregiver.GetCaregiverBookings)
	caregiverGroup.Get("/requests", caregiver.GetJobRequests)
	caregiverGroup.Get("/clients", caregiver.GetClients)
	caregiverGroup.Get("/schedule", caregiver.GetSchedule)
	caregiverGroup.Get("/profile", caregiver.GetProfile)
	caregiverGroup.Patch("/profile", caregiver.UpdateProfile)
	caregiverGroup.Patch("/availability", caregiver.UpdateAvailability)
}
