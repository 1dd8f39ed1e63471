package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bankAccountController "cellbill_backend/internals/features/billing/bank_accounts/controller"
	billController "cellbill_backend/internals/features/billing/bills/controller"
	callRecordController "cellbill_backend/internals/features/billing/call_records/controller"
	customerController "cellbill_backend/internals/features/billing/customers/controller"
	paymentController "cellbill_backend/internals/features/billing/payments/controller"
	phonePlanController "cellbill_backend/internals/features/billing/phone_plans/controller"
)

// BillingRoutes mounts the CRUD surface for all six resources.
func BillingRoutes(app *fiber.App, db *gorm.DB) {
	customers := customerController.NewCustomerController(db)
	app.Get("/customers", customers.List)
	app.Post("/customers", customers.Create)
	app.Put("/customers/:id", customers.Update)
	app.Delete("/customers/:id", customers.Delete)

	plans := phonePlanController.NewPhonePlanController(db)
	app.Get("/phone-plans", plans.List)
	app.Post("/phone-plans", plans.Create)
	app.Put("/phone-plans/:id", plans.Update)
	app.Delete("/phone-plans/:id", plans.Delete)

	calls := callRecordController.NewCallRecordController(db)
	app.Get("/call-records", calls.List)
	app.Post("/call-records", calls.Create)
	app.Put("/call-records/:id", calls.Update)
	app.Delete("/call-records/:id", calls.Delete)

	bills := billController.NewBillController(db)
	app.Get("/bills", bills.List)
	app.Post("/bills", bills.Create)
	app.Put("/bills/:id", bills.Update)
	app.Delete("/bills/:id", bills.Delete)

	payments := paymentController.NewPaymentController(db)
	app.Get("/payments", payments.List)
	app.Post("/payments", payments.Create)
	app.Put("/payments/:id", payments.Update)
	app.Delete("/payments/:id", payments.Delete)

	accounts := bankAccountController.NewBankAccountController(db)
	app.Get("/bank-accounts", accounts.List)
	app.Post("/bank-accounts", accounts.Create)
	app.Put("/bank-accounts/:id", accounts.Update)
	app.Delete("/bank-accounts/:id", accounts.Delete)
}
