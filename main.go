package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Hephzy-d/elderly-care-connect/cron"

	"github.com/Hephzy-d/elderly-care-connect/db"

	"github.com/Hephzy-d/elderly-care-connect/redis"

	"github.com/Hephzy-d/elderly-care-connect/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Elderly Care Connect API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupCaregiverRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupMessageRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
