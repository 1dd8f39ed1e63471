package controller

import (
	"encoding/json"
	"io"
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
	ctl := NewSettlementController(gdb)
	app.Post("/process-transaction", ctl.ProcessTransaction)
	return app, mock
}

func decodeBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestProcessTransaction_NoUnpaidBills(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bills" WHERE bill_status = .+FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{
			"bill_id", "bill_customer_id", "bill_date", "bill_due_date", "bill_total", "bill_status",
		}))
	mock.ExpectRollback()

	resp, err := app.Test(httptest.NewRequest("POST", "/process-transaction", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "No unpaid bills found.", body["message"])
	_, hasDuration := body["duration"].(float64)
	assert.True(t, hasDuration, "duration must be numeric")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessTransaction_UnexpectedFailureIs500(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bills" WHERE bill_status = .+FOR UPDATE`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	resp, err := app.Test(httptest.NewRequest("POST", "/process-transaction", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "Transaction failed")

	assert.NoError(t, mock.ExpectationsWereMet())
}
