package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CallRecordModel struct {
	CallRecordID int64 `gorm:"column:call_record_id;primaryKey;autoIncrement:false" json:"call_record_id"`

	CallRecordPhonePlanID int64           `gorm:"column:call_record_phone_plan_id;not null" json:"call_record_phone_plan_id"`
	CallRecordTime        time.Time       `gorm:"column:call_record_time;not null" json:"call_record_time"`
	CallRecordDuration    int             `gorm:"column:call_record_duration;not null" json:"call_record_duration"` // minutes
	CallRecordCost        decimal.Decimal `gorm:"column:call_record_cost;type:decimal(12,2);not null" json:"call_record_cost"`
}

func (CallRecordModel) TableName() string { return "call_records" }
