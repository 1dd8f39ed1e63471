package model

type CustomerModel struct {
	CustomerID int64 `gorm:"column:customer_id;primaryKey;autoIncrement:false" json:"customer_id"`

	CustomerName    string `gorm:"column:customer_name;type:text;not null" json:"customer_name"`
	CustomerNumber  string `gorm:"column:customer_number;type:text;not null" json:"customer_number"`
	CustomerEmail   string `gorm:"column:customer_email;type:text;not null" json:"customer_email"`
	CustomerAddress string `gorm:"column:customer_address;type:text;not null" json:"customer_address"`

	// FK (RESTRICT on delete, schema-enforced)
	CustomerPhonePlanID   int64 `gorm:"column:customer_phone_plan_id;not null" json:"customer_phone_plan_id"`
	CustomerBankAccountID int64 `gorm:"column:customer_bank_account_id;not null" json:"customer_bank_account_id"`
}

func (CustomerModel) TableName() string { return "customers" }
