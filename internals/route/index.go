package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "cellbill_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	log.Println("[INFO] Setting up BillingRoutes...")
	routeDetails.BillingRoutes(app, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	routeDetails.ReportRoutes(app, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	routeDetails.AdminRoutes(app, db)

	log.Println("[INFO] Setting up SettlementRoutes...")
	routeDetails.SettlementRoutes(app, db)
}
