package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole("admin"), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole("admin"), controllers.DeleteService)

	app.Get("/certifications", controllers.GetAllCertifications)
}
