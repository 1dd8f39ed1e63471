package dto

import (
	model "cellbill_backend/internals/features/billing/customers/model"
)

type CreateCustomerRequest struct {
	CustomerID            int64  `json:"customer_id" validate:"required,gt=0"`
	CustomerName          string `json:"customer_name" validate:"required"`
	CustomerNumber        string `json:"customer_number" validate:"required"`
	CustomerEmail         string `json:"customer_email" validate:"required,email"`
	CustomerAddress       string `json:"customer_address" validate:"required"`
	CustomerPhonePlanID   int64  `json:"customer_phone_plan_id" validate:"required,gt=0"`
	CustomerBankAccountID int64  `json:"customer_bank_account_id" validate:"required,gt=0"`
}

func (r CreateCustomerRequest) ToModel() model.CustomerModel {
	return model.CustomerModel{
		CustomerID:            r.CustomerID,
		CustomerName:          r.CustomerName,
		CustomerNumber:        r.CustomerNumber,
		CustomerEmail:         r.CustomerEmail,
		CustomerAddress:       r.CustomerAddress,
		CustomerPhonePlanID:   r.CustomerPhonePlanID,
		CustomerBankAccountID: r.CustomerBankAccountID,
	}
}

// Full update: every mutable field is required.
type UpdateCustomerRequest struct {
	CustomerName          string `json:"customer_name" validate:"required"`
	CustomerNumber        string `json:"customer_number" validate:"required"`
	CustomerEmail         string `json:"customer_email" validate:"required,email"`
	CustomerAddress       string `json:"customer_address" validate:"required"`
	CustomerPhonePlanID   int64  `json:"customer_phone_plan_id" validate:"required,gt=0"`
	CustomerBankAccountID int64  `json:"customer_bank_account_id" validate:"required,gt=0"`
}

func (r UpdateCustomerRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":            r.CustomerName,
		"customer_number":          r.CustomerNumber,
		"customer_email":           r.CustomerEmail,
		"customer_address":         r.CustomerAddress,
		"customer_phone_plan_id":   r.CustomerPhonePlanID,
		"customer_bank_account_id": r.CustomerBankAccountID,
	}
}
