package dto

import (
	"github.com/shopspring/decimal"

	model "cellbill_backend/internals/features/billing/bank_accounts/model"
)

type CreateBankAccountRequest struct {
	BankAccountID            int64           `json:"bank_account_id" validate:"required,gt=0"`
	BankAccountBankName      string          `json:"bank_account_bank_name" validate:"required"`
	BankAccountNumber        string          `json:"bank_account_number" validate:"required"`
	BankAccountRoutingNumber string          `json:"bank_account_routing_number" validate:"required"`
	BankAccountBalance       decimal.Decimal `json:"bank_account_balance"`
	BankAccountHolderName    string          `json:"bank_account_holder_name" validate:"required"`
}

func (r CreateBankAccountRequest) ToModel() model.BankAccountModel {
	return model.BankAccountModel{
		BankAccountID:            r.BankAccountID,
		BankAccountBankName:      r.BankAccountBankName,
		BankAccountNumber:        r.BankAccountNumber,
		BankAccountRoutingNumber: r.BankAccountRoutingNumber,
		BankAccountBalance:       r.BankAccountBalance,
		BankAccountHolderName:    r.BankAccountHolderName,
	}
}

type UpdateBankAccountRequest struct {
	BankAccountBankName      string          `json:"bank_account_bank_name" validate:"required"`
	BankAccountNumber        string          `json:"bank_account_number" validate:"required"`
	BankAccountRoutingNumber string          `json:"bank_account_routing_number" validate:"required"`
	BankAccountBalance       decimal.Decimal `json:"bank_account_balance"`
	BankAccountHolderName    string          `json:"bank_account_holder_name" validate:"required"`
}

func (r UpdateBankAccountRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"bank_account_bank_name":      r.BankAccountBankName,
		"bank_account_number":         r.BankAccountNumber,
		"bank_account_routing_number": r.BankAccountRoutingNumber,
		"bank_account_balance":        r.BankAccountBalance,
		"bank_account_holder_name":    r.BankAccountHolderName,
	}
}
