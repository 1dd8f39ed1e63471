package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
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
	ctl := NewCustomerController(gdb)
	app.Get("/customers", ctl.List)
	app.Post("/customers", ctl.Create)
	app.Put("/customers/:id", ctl.Update)
	app.Delete("/customers/:id", ctl.Delete)
	return app, mock
}

func customerColumns() []string {
	return []string{
		"customer_id", "customer_name", "customer_number", "customer_email", "customer_address",
		"customer_phone_plan_id", "customer_bank_account_id",
	}
}

const customerBody = `{
	"customer_id": 1,
	"customer_name": "Alice Johnson",
	"customer_number": "555-0101",
	"customer_email": "alice@example.com",
	"customer_address": "12 Oak St",
	"customer_phone_plan_id": 2,
	"customer_bank_account_id": 1
}`

func TestList_OrderedByID(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY customer_id ASC`).
		WillReturnRows(sqlmock.NewRows(customerColumns()).
			AddRow(int64(1), "Alice Johnson", "555-0101", "alice@example.com", "12 Oak St", int64(2), int64(1)).
			AddRow(int64(2), "Bob Rivera", "555-0102", "bob@example.com", "48 Pine Ave", int64(1), int64(2)))

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, float64(1), rows[0]["customer_id"])
	assert.Equal(t, float64(2), rows[1]["customer_id"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsArray(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY customer_id ASC`).
		WillReturnRows(sqlmock.NewRows(customerColumns()))

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestCreate_Returns201(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/customers", strings.NewReader(customerBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var row map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&row))
	assert.Equal(t, float64(1), row["customer_id"])
	assert.Equal(t, "Alice Johnson", row["customer_name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKeyIsConflict(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/customers", strings.NewReader(customerBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_InvalidPayloadIsBadRequest(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("POST", "/customers", strings.NewReader(`{"customer_id": 1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdate_MissingRowIs404(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	body := `{
		"customer_name": "Alice Johnson",
		"customer_number": "555-0101",
		"customer_email": "alice@example.com",
		"customer_address": "12 Oak St",
		"customer_phone_plan_id": 2,
		"customer_bank_account_id": 1
	}`
	req := httptest.NewRequest("PUT", "/customers/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Returns204Then404(t *testing.T) {
	app, mock := setupApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "customers" WHERE customer_id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/customers/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// second delete of the same id finds nothing
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "customers" WHERE customer_id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err = app.Test(httptest.NewRequest("DELETE", "/customers/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_BadIDIsBadRequest(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/customers/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
