package service

import (
	"context"

	"gorm.io/gorm"
)

// SchemaService owns the schema/bulk-data lifecycle: named DDL and seed
// statements executed in order, never SQL assembled from request input.
type SchemaService struct {
	DB *gorm.DB
}

func NewSchemaService(db *gorm.DB) *SchemaService {
	return &SchemaService{DB: db}
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS phone_plans (
		phone_plan_id             BIGINT PRIMARY KEY,
		phone_plan_type           TEXT NOT NULL,
		phone_plan_monthly_charge NUMERIC(12,2) NOT NULL DEFAULT 0,
		phone_plan_data_limit     INT NOT NULL DEFAULT 0,
		phone_plan_talk_time      INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS bank_accounts (
		bank_account_id             BIGINT PRIMARY KEY,
		bank_account_bank_name      TEXT NOT NULL,
		bank_account_number         TEXT NOT NULL,
		bank_account_routing_number TEXT NOT NULL,
		bank_account_balance        NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (bank_account_balance >= 0),
		bank_account_holder_name    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id              BIGINT PRIMARY KEY,
		customer_name            TEXT NOT NULL,
		customer_number          TEXT NOT NULL,
		customer_email           TEXT NOT NULL,
		customer_address         TEXT NOT NULL,
		customer_phone_plan_id   BIGINT NOT NULL REFERENCES phone_plans(phone_plan_id) ON DELETE RESTRICT,
		customer_bank_account_id BIGINT NOT NULL REFERENCES bank_accounts(bank_account_id) ON DELETE RESTRICT
	)`,
	`CREATE TABLE IF NOT EXISTS call_records (
		call_record_id            BIGINT PRIMARY KEY,
		call_record_phone_plan_id BIGINT NOT NULL REFERENCES phone_plans(phone_plan_id) ON DELETE RESTRICT,
		call_record_time          TIMESTAMPTZ NOT NULL,
		call_record_duration      INT NOT NULL DEFAULT 0,
		call_record_cost          NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id          BIGINT PRIMARY KEY,
		bill_customer_id BIGINT NOT NULL REFERENCES customers(customer_id) ON DELETE RESTRICT,
		bill_date        DATE NOT NULL,
		bill_due_date    DATE NOT NULL,
		bill_total       NUMERIC(12,2) NOT NULL DEFAULT 0,
		bill_status      TEXT NOT NULL DEFAULT 'unpaid' CHECK (bill_status IN ('unpaid','paid'))
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		payment_id              BIGINT PRIMARY KEY,
		payment_bill_id         BIGINT NOT NULL REFERENCES bills(bill_id) ON DELETE RESTRICT,
		payment_bank_account_id BIGINT NOT NULL REFERENCES bank_accounts(bank_account_id) ON DELETE RESTRICT,
		payment_method          TEXT NOT NULL,
		payment_type            TEXT NOT NULL,
		payment_date            TIMESTAMPTZ NOT NULL,
		payment_amount          NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
}

// Deterministic seed set: covers paid and unpaid bills, an account with
// plenty of balance and one that cannot cover its bill.
var seedStatements = []string{
	`INSERT INTO phone_plans (phone_plan_id, phone_plan_type, phone_plan_monthly_charge, phone_plan_data_limit, phone_plan_talk_time) VALUES
		(1, 'basic',     25.00,  5,  300),
		(2, 'standard',  45.00, 15,  600),
		(3, 'unlimited', 75.00, 50, 3000)
	ON CONFLICT (phone_plan_id) DO NOTHING`,
	`INSERT INTO bank_accounts (bank_account_id, bank_account_bank_name, bank_account_number, bank_account_routing_number, bank_account_balance, bank_account_holder_name) VALUES
		(1, 'First National', '1001001000', '021000021', 500.00, 'Alice Johnson'),
		(2, 'Commerce Bank',  '2002002000', '026009593', 100.00, 'Bob Rivera'),
		(3, 'Union Savings',  '3003003000', '031100209',  30.00, 'Carol Tan')
	ON CONFLICT (bank_account_id) DO NOTHING`,
	`INSERT INTO customers (customer_id, customer_name, customer_number, customer_email, customer_address, customer_phone_plan_id, customer_bank_account_id) VALUES
		(1, 'Alice Johnson', '555-0101', 'alice@example.com', '12 Oak St',    2, 1),
		(2, 'Bob Rivera',    '555-0102', 'bob@example.com',   '48 Pine Ave',  1, 2),
		(3, 'Carol Tan',     '555-0103', 'carol@example.com', '7 Maple Rd',   3, 3)
	ON CONFLICT (customer_id) DO NOTHING`,
	`INSERT INTO call_records (call_record_id, call_record_phone_plan_id, call_record_time, call_record_duration, call_record_cost) VALUES
		(1, 2, '2025-07-01T09:15:00Z', 12, 1.20),
		(2, 2, '2025-07-03T18:40:00Z', 34, 3.40),
		(3, 1, '2025-07-05T11:05:00Z',  8, 0.80),
		(4, 3, '2025-07-08T20:30:00Z', 55, 0.00)
	ON CONFLICT (call_record_id) DO NOTHING`,
	`INSERT INTO bills (bill_id, bill_customer_id, bill_date, bill_due_date, bill_total, bill_status) VALUES
		(1, 1, '2025-06-01', '2025-06-15', 45.00, 'paid'),
		(2, 1, '2025-07-01', '2025-07-15', 60.00, 'unpaid'),
		(3, 2, '2025-07-01', '2025-07-20', 25.00, 'unpaid'),
		(4, 3, '2025-07-01', '2025-07-25', 75.00, 'unpaid')
	ON CONFLICT (bill_id) DO NOTHING`,
	`INSERT INTO payments (payment_id, payment_bill_id, payment_bank_account_id, payment_method, payment_type, payment_date, payment_amount) VALUES
		(1, 1, 1, 'bank_transfer', 'manual', '2025-06-10T14:00:00Z', 45.00)
	ON CONFLICT (payment_id) DO NOTHING`,
}

// child-first so FK constraints never fire
var deleteStatements = []string{
	`DELETE FROM payments`,
	`DELETE FROM bills`,
	`DELETE FROM call_records`,
	`DELETE FROM customers`,
	`DELETE FROM bank_accounts`,
	`DELETE FROM phone_plans`,
}

func (s *SchemaService) CreateTables(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range createStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SchemaService) PopulateData(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range seedStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SchemaService) DeleteData(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range deleteStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
