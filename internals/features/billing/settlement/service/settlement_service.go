package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bankModel "cellbill_backend/internals/features/billing/bank_accounts/model"
	billModel "cellbill_backend/internals/features/billing/bills/model"
	customerModel "cellbill_backend/internals/features/billing/customers/model"
	paymentModel "cellbill_backend/internals/features/billing/payments/model"
)

var (
	ErrNoUnpaidBills     = errors.New("no unpaid bills")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// SettlementResult is the structured outcome of one settled bill.
type SettlementResult struct {
	BillID    int64           `json:"bill_id"`
	PaymentID int64           `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type SettlementService struct {
	DB *gorm.DB
}

func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{DB: db}
}

// ProcessOne settles exactly one unpaid bill against the owning customer's
// bank account, all inside a single transaction.
//
// Selection order is deterministic: oldest due date first, lowest id as
// tiebreak. The bill row is taken FOR UPDATE, so concurrent settlers
// serialize here; once the winner commits, a blocked settler re-evaluates
// the unpaid predicate and moves on to the next bill (or reports none left).
func (s *SettlementService) ProcessOne(ctx context.Context) (*SettlementResult, error) {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var bill billModel.BillModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("bill_status = ?", billModel.BillStatusUnpaid).
		Order("bill_due_date ASC, bill_id ASC").
		First(&bill).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUnpaidBills
		}
		return nil, fmt.Errorf("select unpaid bill: %w", err)
	}

	var cust customerModel.CustomerModel
	if err := tx.First(&cust, "customer_id = ?", bill.BillCustomerID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("resolve customer %d: %w", bill.BillCustomerID, err)
	}

	var acc bankModel.BankAccountModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acc, "bank_account_id = ?", cust.CustomerBankAccountID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("resolve bank account %d: %w", cust.CustomerBankAccountID, err)
	}

	if acc.BankAccountBalance.LessThan(bill.BillTotal) {
		tx.Rollback()
		return nil, ErrInsufficientFunds
	}

	if err := tx.Model(&bankModel.BankAccountModel{}).
		Where("bank_account_id = ?", acc.BankAccountID).
		Update("bank_account_balance", acc.BankAccountBalance.Sub(bill.BillTotal)).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("debit account: %w", err)
	}

	if err := tx.Model(&billModel.BillModel{}).
		Where("bill_id = ?", bill.BillID).
		Update("bill_status", billModel.BillStatusPaid).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("mark bill paid: %w", err)
	}

	// next payment id inside the same tx (CRUD payment ids stay caller-supplied)
	var nextID int64
	if err := tx.Raw(`SELECT COALESCE(MAX(payment_id), 0) + 1 FROM payments`).
		Scan(&nextID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("next payment id: %w", err)
	}

	pay := paymentModel.PaymentModel{
		PaymentID:            nextID,
		PaymentBillID:        bill.BillID,
		PaymentBankAccountID: acc.BankAccountID,
		PaymentMethod:        "bank_transfer",
		PaymentType:          "settlement",
		PaymentDate:          time.Now(),
		PaymentAmount:        bill.BillTotal,
	}
	if err := tx.Create(&pay).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit settlement: %w", err)
	}

	return &SettlementResult{
		BillID:    bill.BillID,
		PaymentID: pay.PaymentID,
		Amount:    bill.BillTotal,
	}, nil
}
