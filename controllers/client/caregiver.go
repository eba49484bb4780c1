package client

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetAvailableCaregivers returns caregiver profiles with their user info and
// offered services. When service_ids is given the result is narrowed to
// caregivers offering at least one of the requested services.
func GetAvailableCaregivers(c *fiber.Ctx) error {
	var caregivers []models.CaregiverProfile

	if err := db.DB.Preload("User").
		Preload("Services").
		Preload("Services.Service").
		Find(&caregivers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch caregivers",
		})
	}

	serviceIDs, err := parseServiceIDs(c.Query("service_ids"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service_ids",
		})
	}
	caregivers = filterByServices(caregivers, serviceIDs)

	for i := range caregivers {
		caregivers[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"caregivers": caregivers,
		"count":      len(caregivers),
	})
}

// GetCaregiverDetails returns one caregiver profile with services and certifications
func GetCaregiverDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var caregiver models.CaregiverProfile
	if err := db.DB.Preload("User").
		Preload("Services").
		Preload("Services.Service").
		First(&caregiver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Caregiver not found",
		})
	}

	var certifications []models.CaregiverCertification
	db.DB.Preload("Certification").Where("caregiver_id = ?", caregiver.ID).Find(&certifications)

	var availability []models.CaregiverAvailability
	db.DB.Where("caregiver_id = ?", caregiver.ID).Order("day_of_week, start_time").Find(&availability)

	caregiver.User.Password = ""

	return c.JSON(fiber.Map{
		"caregiver":      caregiver,
		"certifications": certifications,
		"availability":   availability,
	})
}

// parseServiceIDs parses a comma separated id list, e.g. "1,2,3"
func parseServiceIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// filterByServices keeps caregivers offering at least one of the requested
// services (OR semantics). An empty id list keeps everyone.
func filterByServices(caregivers []models.CaregiverProfile, serviceIDs []uint) []models.CaregiverProfile {
	if len(serviceIDs) == 0 {
		return caregivers
	}

	wanted := make(map[uint]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = true
	}

	filtered := []models.CaregiverProfile{}
	for _, caregiver := range caregivers {
		for _, cs := range caregiver.Services {
			if wanted[cs.ServiceID] {
				filtered = append(filtered, caregiver)
				break
			}
		}
	}
	return filtered
}
