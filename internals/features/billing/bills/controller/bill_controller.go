package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/bills/dto"
	model "cellbill_backend/internals/features/billing/bills/model"
	helper "cellbill_backend/internals/helpers"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

/* ======================= LIST ======================= */
// GET /bills
func (h *BillController) List(c *fiber.Ctx) error {
	rows := make([]model.BillModel, 0)
	if err := h.DB.Order("bill_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch bills")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /bills
func (h *BillController) Create(c *fiber.Ctx) error {
	var req dto.CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "bill id already exists or referenced customer is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create bill")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /bills/:id
func (h *BillController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.BillModel{}).
		Where("bill_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "referenced customer is missing")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update bill")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "bill not found")
	}

	var updated model.BillModel
	if err := h.DB.First(&updated, "bill_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload bill")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /bills/:id
func (h *BillController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.BillModel{}, "bill_id = ?", id)
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "bill is still referenced by payments")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete bill")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "bill not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
