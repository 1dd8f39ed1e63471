package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "cellbill_backend/internals/features/admin/schema/service"
	helper "cellbill_backend/internals/helpers"
)

type SchemaController struct {
	Service *service.SchemaService
}

func NewSchemaController(db *gorm.DB) *SchemaController {
	return &SchemaController{Service: service.NewSchemaService(db)}
}

// GET /create-tables
func (h *SchemaController) CreateTables(c *fiber.Ctx) error {
	if err := h.Service.CreateTables(c.UserContext()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create tables: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Tables created successfully."})
}

// GET /populate-data
func (h *SchemaController) PopulateData(c *fiber.Ctx) error {
	if err := h.Service.PopulateData(c.UserContext()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to populate data: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Sample data inserted successfully."})
}

// GET /delete-data
func (h *SchemaController) DeleteData(c *fiber.Ctx) error {
	if err := h.Service.DeleteData(c.UserContext()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete data: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "All data deleted."})
}
