package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/controllers"
	"github.com/Hephzy-d/elderly-care-connect/middleware"
)

// SetupMessageRoutes configures the messaging routes
func SetupMessageRoutes(app *fiber.App) {
	message := app.Group("/messages", middleware.Protected())
	message.Post("/", controllers.SendMessage)
	message.Get("/conversations", controllers.GetConversations)
	message.Get("/:userID", controllers.GetMessages)
}
