package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Hephzy-d/elderly-care-connect/db"
	"github.com/Hephzy-d/elderly-care-connect/models"
)

// GetAllServices returns the service catalog ordered by name
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service

	if err := db.DB.Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// GetAllCertifications returns the certification catalog
func GetAllCertifications(c *fiber.Ctx) error {
	var certifications []models.Certification

	if err := db.DB.Order("name").Find(&certifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(certifications)
}

// CreateService adds a catalog entry (admin only)
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if service.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service name is required",
		})
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a catalog entry (admin only)
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	var existingService models.Service
	if db.DB.First(&existingService, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	service.ID = existingService.ID
	db.DB.Save(&service)
	return c.JSON(service)
}

// DeleteService deletes a catalog entry (admin only)
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	db.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}
