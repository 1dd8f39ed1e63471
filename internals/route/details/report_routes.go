package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "cellbill_backend/internals/features/billing/reports/controller"
)

// ReportRoutes mounts the canned read-only reports.
func ReportRoutes(app *fiber.App, db *gorm.DB) {
	reports := reportController.NewReportController(db)
	app.Get("/view-records", reports.ViewRecords)
	app.Get("/billing-summary", reports.BillingSummary)
	app.Get("/total-call-time-all", reports.TotalCallTime)
	app.Get("/payment-history", reports.PaymentHistory)
	app.Get("/high-data-usage", reports.HighDataUsage)
}
