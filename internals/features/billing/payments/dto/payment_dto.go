package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "cellbill_backend/internals/features/billing/payments/model"
)

type CreatePaymentRequest struct {
	PaymentID            int64           `json:"payment_id" validate:"required,gt=0"`
	PaymentBillID        int64           `json:"payment_bill_id" validate:"required,gt=0"`
	PaymentBankAccountID int64           `json:"payment_bank_account_id" validate:"required,gt=0"`
	PaymentMethod        string          `json:"payment_method" validate:"required"`
	PaymentType          string          `json:"payment_type" validate:"required"`
	PaymentDate          time.Time       `json:"payment_date" validate:"required"`
	PaymentAmount        decimal.Decimal `json:"payment_amount"`
}

func (r CreatePaymentRequest) ToModel() model.PaymentModel {
	return model.PaymentModel{
		PaymentID:            r.PaymentID,
		PaymentBillID:        r.PaymentBillID,
		PaymentBankAccountID: r.PaymentBankAccountID,
		PaymentMethod:        r.PaymentMethod,
		PaymentType:          r.PaymentType,
		PaymentDate:          r.PaymentDate,
		PaymentAmount:        r.PaymentAmount,
	}
}

type UpdatePaymentRequest struct {
	PaymentBillID        int64           `json:"payment_bill_id" validate:"required,gt=0"`
	PaymentBankAccountID int64           `json:"payment_bank_account_id" validate:"required,gt=0"`
	PaymentMethod        string          `json:"payment_method" validate:"required"`
	PaymentType          string          `json:"payment_type" validate:"required"`
	PaymentDate          time.Time       `json:"payment_date" validate:"required"`
	PaymentAmount        decimal.Decimal `json:"payment_amount"`
}

func (r UpdatePaymentRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"payment_bill_id":         r.PaymentBillID,
		"payment_bank_account_id": r.PaymentBankAccountID,
		"payment_method":          r.PaymentMethod,
		"payment_type":            r.PaymentType,
		"payment_date":            r.PaymentDate,
		"payment_amount":          r.PaymentAmount,
	}
}
