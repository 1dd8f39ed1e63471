package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "cellbill_backend/internals/features/billing/bills/model"
)

type CreateBillRequest struct {
	BillID         int64           `json:"bill_id" validate:"required,gt=0"`
	BillCustomerID int64           `json:"bill_customer_id" validate:"required,gt=0"`
	BillDate       time.Time       `json:"bill_date" validate:"required"`
	BillDueDate    time.Time       `json:"bill_due_date" validate:"required"`
	BillTotal      decimal.Decimal `json:"bill_total"`
	BillStatus     string          `json:"bill_status" validate:"required,oneof=unpaid paid"`
}

func (r CreateBillRequest) ToModel() model.BillModel {
	return model.BillModel{
		BillID:         r.BillID,
		BillCustomerID: r.BillCustomerID,
		BillDate:       r.BillDate,
		BillDueDate:    r.BillDueDate,
		BillTotal:      r.BillTotal,
		BillStatus:     r.BillStatus,
	}
}

type UpdateBillRequest struct {
	BillCustomerID int64           `json:"bill_customer_id" validate:"required,gt=0"`
	BillDate       time.Time       `json:"bill_date" validate:"required"`
	BillDueDate    time.Time       `json:"bill_due_date" validate:"required"`
	BillTotal      decimal.Decimal `json:"bill_total"`
	BillStatus     string          `json:"bill_status" validate:"required,oneof=unpaid paid"`
}

func (r UpdateBillRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"bill_customer_id": r.BillCustomerID,
		"bill_date":        r.BillDate,
		"bill_due_date":    r.BillDueDate,
		"bill_total":       r.BillTotal,
		"bill_status":      r.BillStatus,
	}
}
