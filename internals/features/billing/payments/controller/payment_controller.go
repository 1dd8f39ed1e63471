package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/payments/dto"
	model "cellbill_backend/internals/features/billing/payments/model"
	helper "cellbill_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= LIST ======================= */
// GET /payments
func (h *PaymentController) List(c *fiber.Ctx) error {
	rows := make([]model.PaymentModel, 0)
	if err := h.DB.Order("payment_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch payments")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "payment id already exists or referenced bill/account is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create payment")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /payments/:id
func (h *PaymentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "referenced bill/account is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update payment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
	}

	var updated model.PaymentModel
	if err := h.DB.First(&updated, "payment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload payment")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /payments/:id
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.PaymentModel{}, "payment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
