package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetCurrentUser)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Post("/avatar", middleware.Protected(), controllers.UpdateAvatar)

	// Get user by ID
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
}
