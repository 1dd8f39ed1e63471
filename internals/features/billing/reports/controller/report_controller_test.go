package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	ctl := NewReportController(gdb)
	app.Get("/view-records", ctl.ViewRecords)
	app.Get("/billing-summary", ctl.BillingSummary)
	app.Get("/total-call-time-all", ctl.TotalCallTime)
	app.Get("/payment-history", ctl.PaymentHistory)
	app.Get("/high-data-usage", ctl.HighDataUsage)
	return app, mock
}

func TestViewRecords_ReturnsJoinedRows(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectQuery(`SELECT c\.customer_id, c\.customer_name`).
		WillReturnRows(sqlmock.NewRows([]string{
			"customer_id", "customer_name", "customer_number", "customer_email", "customer_address",
			"phone_plan_type", "phone_plan_monthly_charge", "phone_plan_data_limit", "phone_plan_talk_time",
			"bank_account_bank_name", "bank_account_number", "bank_account_balance",
		}).AddRow(int64(1), "Alice Johnson", "555-0101", "alice@example.com", "12 Oak St",
			"standard", "45.00", 15, 600, "First National", "1001001000", "500.00"))

	resp, err := app.Test(httptest.NewRequest("GET", "/view-records", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string][]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body["records"], 1)
	assert.Equal(t, "Alice Johnson", body["records"][0]["customer_name"])
	assert.Equal(t, "standard", body["records"][0]["phone_plan_type"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReports_EmptyResultIsNotAnError(t *testing.T) {
	app, mock := setupApp(t)

	for _, path := range []string{
		"/view-records", "/billing-summary", "/total-call-time-all", "/payment-history", "/high-data-usage",
	} {
		mock.ExpectQuery(`SELECT `).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), path)
		records, ok := body["records"].([]interface{})
		require.True(t, ok, "records must be an array for %s", path)
		assert.Len(t, records, 0, path)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReports_QueryFailureIs500(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectQuery(`SELECT `).WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/billing-summary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}
