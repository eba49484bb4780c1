package db

import (
	"fmt"
	"log"

	"github.com/Hephzy-d/elderly-care-connect/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.CaregiverProfile{},
		&models.Service{},
		&models.CaregiverService{},
		&models.Booking{},
		&models.BookingService{},
		&models.Message{},
		&models.Certification{},
		&models.CaregiverCertification{},
		&models.CaregiverAvailability{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
