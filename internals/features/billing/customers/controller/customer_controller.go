package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/customers/dto"
	model "cellbill_backend/internals/features/billing/customers/model"
	helper "cellbill_backend/internals/helpers"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

/* ======================= LIST ======================= */
// GET /customers
func (h *CustomerController) List(c *fiber.Ctx) error {
	rows := make([]model.CustomerModel, 0)
	if err := h.DB.Order("customer_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch customers")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /customers
func (h *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "customer id already exists or referenced plan/account is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /customers/:id
func (h *CustomerController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.CustomerModel{}).
		Where("customer_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "referenced plan/account is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update customer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "customer not found")
	}

	var updated model.CustomerModel
	if err := h.DB.First(&updated, "customer_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload customer")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /customers/:id
func (h *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.CustomerModel{}, "customer_id = ?", id)
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "customer is still referenced by other rows")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete customer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "customer not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
