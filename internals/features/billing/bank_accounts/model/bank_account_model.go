package model

import (
	"github.com/shopspring/decimal"
)

type BankAccountModel struct {
	BankAccountID int64 `gorm:"column:bank_account_id;primaryKey;autoIncrement:false" json:"bank_account_id"`

	BankAccountBankName      string          `gorm:"column:bank_account_bank_name;type:text;not null" json:"bank_account_bank_name"`
	BankAccountNumber        string          `gorm:"column:bank_account_number;type:text;not null" json:"bank_account_number"`
	BankAccountRoutingNumber string          `gorm:"column:bank_account_routing_number;type:text;not null" json:"bank_account_routing_number"`
	BankAccountBalance       decimal.Decimal `gorm:"column:bank_account_balance;type:decimal(12,2);not null" json:"bank_account_balance"`
	BankAccountHolderName    string          `gorm:"column:bank_account_holder_name;type:text;not null" json:"bank_account_holder_name"`
}

func (BankAccountModel) TableName() string { return "bank_accounts" }
