package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/call_records/dto"
	model "cellbill_backend/internals/features/billing/call_records/model"
	helper "cellbill_backend/internals/helpers"
)

type CallRecordController struct {
	DB *gorm.DB
}

func NewCallRecordController(db *gorm.DB) *CallRecordController {
	return &CallRecordController{DB: db}
}

/* ======================= LIST ======================= */
// GET /call-records
func (h *CallRecordController) List(c *fiber.Ctx) error {
	rows := make([]model.CallRecordModel, 0)
	if err := h.DB.Order("call_record_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch call records")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /call-records
func (h *CallRecordController) Create(c *fiber.Ctx) error {
	var req dto.CreateCallRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "call record id already exists or referenced plan is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create call record")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /call-records/:id
func (h *CallRecordController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCallRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.CallRecordModel{}).
		Where("call_record_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "referenced plan is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update call record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "call record not found")
	}

	var updated model.CallRecordModel
	if err := h.DB.First(&updated, "call_record_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload call record")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /call-records/:id
func (h *CallRecordController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.CallRecordModel{}, "call_record_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete call record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "call record not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
