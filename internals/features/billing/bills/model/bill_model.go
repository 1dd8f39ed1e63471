package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

type BillModel struct {
	BillID int64 `gorm:"column:bill_id;primaryKey;autoIncrement:false" json:"bill_id"`

	BillCustomerID int64           `gorm:"column:bill_customer_id;not null" json:"bill_customer_id"`
	BillDate       time.Time       `gorm:"column:bill_date;type:date;not null" json:"bill_date"`
	BillDueDate    time.Time       `gorm:"column:bill_due_date;type:date;not null" json:"bill_due_date"`
	BillTotal      decimal.Decimal `gorm:"column:bill_total;type:decimal(12,2);not null" json:"bill_total"`
	BillStatus     string          `gorm:"column:bill_status;type:text;not null;default:'unpaid'" json:"bill_status"` // unpaid|paid
}

func (BillModel) TableName() string { return "bills" }
