package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentModel struct {
	PaymentID int64 `gorm:"column:payment_id;primaryKey;autoIncrement:false" json:"payment_id"`

	PaymentBillID        int64           `gorm:"column:payment_bill_id;not null" json:"payment_bill_id"`
	PaymentBankAccountID int64           `gorm:"column:payment_bank_account_id;not null" json:"payment_bank_account_id"`
	PaymentMethod        string          `gorm:"column:payment_method;type:text;not null" json:"payment_method"`
	PaymentType          string          `gorm:"column:payment_type;type:text;not null" json:"payment_type"`
	PaymentDate          time.Time       `gorm:"column:payment_date;not null" json:"payment_date"`
	PaymentAmount        decimal.Decimal `gorm:"column:payment_amount;type:decimal(12,2);not null" json:"payment_amount"`
}

func (PaymentModel) TableName() string { return "payments" }
