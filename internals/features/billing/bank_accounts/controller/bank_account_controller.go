package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "cellbill_backend/internals/features/billing/bank_accounts/dto"
	model "cellbill_backend/internals/features/billing/bank_accounts/model"
	helper "cellbill_backend/internals/helpers"
)

type BankAccountController struct {
	DB *gorm.DB
}

func NewBankAccountController(db *gorm.DB) *BankAccountController {
	return &BankAccountController{DB: db}
}

/* ======================= LIST ======================= */
// GET /bank-accounts
func (h *BankAccountController) List(c *fiber.Ctx) error {
	rows := make([]model.BankAccountModel, 0)
	if err := h.DB.Order("bank_account_id ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch bank accounts")
	}
	return c.JSON(rows)
}

/* ======================= CREATE ======================= */
// POST /bank-accounts
func (h *BankAccountController) Create(c *fiber.Ctx) error {
	var req dto.CreateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.BankAccountBalance.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "balance must not be negative")
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsConstraintViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "bank account id already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create bank account")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

/* ======================= UPDATE ======================= */
// PUT /bank-accounts/:id
func (h *BankAccountController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.BankAccountBalance.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "balance must not be negative")
	}

	res := h.DB.Model(&model.BankAccountModel{}).
		Where("bank_account_id = ?", id).
		Updates(req.ToUpdates())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update bank account")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "bank account not found")
	}

	var updated model.BankAccountModel
	if err := h.DB.First(&updated, "bank_account_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload bank account")
	}
	return c.JSON(updated)
}

/* ======================= DELETE ======================= */
// DELETE /bank-accounts/:id
func (h *BankAccountController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Delete(&model.BankAccountModel{}, "bank_account_id = ?", id)
	if res.Error != nil {
		if helper.IsConstraintViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "bank account is still referenced by other rows")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete bank account")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "bank account not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
