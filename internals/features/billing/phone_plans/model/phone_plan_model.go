package model

import (
	"github.com/shopspring/decimal"
)

type PhonePlanModel struct {
	PhonePlanID int64 `gorm:"column:phone_plan_id;primaryKey;autoIncrement:false" json:"phone_plan_id"`

	PhonePlanType          string          `gorm:"column:phone_plan_type;type:text;not null" json:"phone_plan_type"`
	PhonePlanMonthlyCharge decimal.Decimal `gorm:"column:phone_plan_monthly_charge;type:decimal(12,2);not null" json:"phone_plan_monthly_charge"`
	PhonePlanDataLimit     int             `gorm:"column:phone_plan_data_limit;not null" json:"phone_plan_data_limit"` // GB
	PhonePlanTalkTime      int             `gorm:"column:phone_plan_talk_time;not null" json:"phone_plan_talk_time"`  // minutes
}

func (PhonePlanModel) TableName() string { return "phone_plans" }
