package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settlementController "cellbill_backend/internals/features/billing/settlement/controller"
)

// SettlementRoutes mounts the transaction processor.
func SettlementRoutes(app *fiber.App, db *gorm.DB) {
	settlement := settlementController.NewSettlementController(db)
	app.Post("/process-transaction", settlement.ProcessTransaction)
}
