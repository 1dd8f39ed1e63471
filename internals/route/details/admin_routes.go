package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schemaController "cellbill_backend/internals/features/admin/schema/controller"
)

// AdminRoutes mounts the schema/bulk-data lifecycle endpoints.
// GET is intentional: the browser console triggers these via plain fetches.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	schema := schemaController.NewSchemaController(db)
	app.Get("/create-tables", schema.CreateTables)
	app.Get("/populate-data", schema.PopulateData)
	app.Get("/delete-data", schema.DeleteData)
}
