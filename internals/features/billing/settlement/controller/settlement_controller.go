package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "cellbill_backend/internals/features/billing/settlement/service"
)

type SettlementController struct {
	Service *service.SettlementService
}

func NewSettlementController(db *gorm.DB) *SettlementController {
	return &SettlementController{Service: service.NewSettlementService(db)}
}

/* ======================= PROCESS ======================= */
// POST /process-transaction
//
// Business outcomes (no unpaid bills, insufficient funds) are 200 with
// status=error; only unexpected failures are 500. Every response carries
// the elapsed wall-clock milliseconds.
func (h *SettlementController) ProcessTransaction(c *fiber.Ctx) error {
	start := time.Now()

	res, err := h.Service.ProcessOne(c.UserContext())
	duration := time.Since(start).Milliseconds()

	switch {
	case err == nil:
		return c.JSON(fiber.Map{
			"status": "success",
			"message": fmt.Sprintf("Transaction processed successfully: bill %d settled for %s (payment %d).",
				res.BillID, res.Amount.StringFixed(2), res.PaymentID),
			"bill_id":    res.BillID,
			"payment_id": res.PaymentID,
			"amount":     res.Amount,
			"duration":   duration,
		})
	case errors.Is(err, service.ErrNoUnpaidBills):
		return c.JSON(fiber.Map{
			"status":   "error",
			"message":  "No unpaid bills found.",
			"duration": duration,
		})
	case errors.Is(err, service.ErrInsufficientFunds):
		return c.JSON(fiber.Map{
			"status":   "error",
			"message":  "Insufficient funds: account balance does not cover the bill total.",
			"duration": duration,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":   "error",
			"message":  "Transaction failed: " + err.Error(),
			"duration": duration,
		})
	}
}
