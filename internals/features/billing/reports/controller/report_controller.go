package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "cellbill_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

const viewRecordsSQL = `
SELECT c.customer_id, c.customer_name, c.customer_number, c.customer_email, c.customer_address,
       p.phone_plan_type, p.phone_plan_monthly_charge, p.phone_plan_data_limit, p.phone_plan_talk_time,
       b.bank_account_bank_name, b.bank_account_number, b.bank_account_balance
FROM customers c
JOIN phone_plans p  ON p.phone_plan_id  = c.customer_phone_plan_id
JOIN bank_accounts b ON b.bank_account_id = c.customer_bank_account_id
ORDER BY c.customer_id ASC`

const billingSummarySQL = `
SELECT c.customer_id, c.customer_name,
       COUNT(bl.bill_id)                                              AS bill_count,
       COALESCE(SUM(bl.bill_total), 0)                                AS total_billed,
       COALESCE(SUM(bl.bill_total) FILTER (WHERE bl.bill_status = 'paid'), 0) AS total_paid,
       COUNT(bl.bill_id) FILTER (WHERE bl.bill_status = 'unpaid')     AS unpaid_count
FROM customers c
LEFT JOIN bills bl ON bl.bill_customer_id = c.customer_id
GROUP BY c.customer_id, c.customer_name
ORDER BY c.customer_id ASC`

const totalCallTimeSQL = `
SELECT c.customer_id, c.customer_name,
       COUNT(cr.call_record_id)                AS call_count,
       COALESCE(SUM(cr.call_record_duration), 0) AS total_minutes,
       COALESCE(SUM(cr.call_record_cost), 0)     AS total_cost
FROM customers c
LEFT JOIN call_records cr ON cr.call_record_phone_plan_id = c.customer_phone_plan_id
GROUP BY c.customer_id, c.customer_name
ORDER BY c.customer_id ASC`

const paymentHistorySQL = `
SELECT pm.payment_id, pm.payment_date, pm.payment_method, pm.payment_type, pm.payment_amount,
       bl.bill_id, bl.bill_total,
       c.customer_id, c.customer_name
FROM payments pm
JOIN bills bl    ON bl.bill_id     = pm.payment_bill_id
JOIN customers c ON c.customer_id  = bl.bill_customer_id
ORDER BY pm.payment_date DESC, pm.payment_id DESC`

const highDataUsageSQL = `
SELECT c.customer_id, c.customer_name,
       p.phone_plan_type, p.phone_plan_data_limit
FROM customers c
JOIN phone_plans p ON p.phone_plan_id = c.customer_phone_plan_id
WHERE p.phone_plan_data_limit >= 10
ORDER BY p.phone_plan_data_limit DESC, c.customer_id ASC`

// records always serializes as an array; an empty report is not an error
func (h *ReportController) run(c *fiber.Ctx, query string) error {
	rows := make([]map[string]interface{}, 0)
	if err := h.DB.Raw(query).Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "report query failed")
	}
	return c.JSON(fiber.Map{"records": rows})
}

// GET /view-records
func (h *ReportController) ViewRecords(c *fiber.Ctx) error {
	return h.run(c, viewRecordsSQL)
}

// GET /billing-summary
func (h *ReportController) BillingSummary(c *fiber.Ctx) error {
	return h.run(c, billingSummarySQL)
}

// GET /total-call-time-all
func (h *ReportController) TotalCallTime(c *fiber.Ctx) error {
	return h.run(c, totalCallTimeSQL)
}

// GET /payment-history
func (h *ReportController) PaymentHistory(c *fiber.Ctx) error {
	return h.run(c, paymentHistorySQL)
}

// GET /high-data-usage
func (h *ReportController) HighDataUsage(c *fiber.Ctx) error {
	return h.run(c, highDataUsageSQL)
}
