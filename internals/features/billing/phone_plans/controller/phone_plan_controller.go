package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/phone_plans/dto"
	model "cellbill_backend/internals/features/billing/phone_plans/model"
	helper "cellbill_backend/internals/helpers"
)

type PhonePlanController struct {
	DB *gorm.DB
}

func NewPhonePlanController(db *gorm.DB) *PhonePlanController {
	return &PhonePlanController{DB: db}
}

/* ======================= LIST ======================= */
// GET /phone-plans
func (h *PhonePlanController) List(c *fiber.Ctx) error {
	rows := make([]model.PhonePlanModel, 0)
	if err := h.DB.Order("phone_plan_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch phone plans")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /phone-plans
func (h *PhonePlanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePhonePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "phone plan id already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create phone plan")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /phone-plans/:id
func (h *PhonePlanController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdatePhonePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.PhonePlanModel{}).
		Where("phone_plan_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update phone plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "phone plan not found")
	}

	var updated model.PhonePlanModel
	if err := h.DB.First(&updated, "phone_plan_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload phone plan")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /phone-plans/:id
func (h *PhonePlanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.PhonePlanModel{}, "phone_plan_id = ?", id)
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "phone plan is still referenced by other rows")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete phone plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "phone plan not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
