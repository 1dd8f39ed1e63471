package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "cellbill_backend/internals/features/billing/call_records/model"
)

type CreateCallRecordRequest struct {
	CallRecordID          int64           `json:"call_record_id" validate:"required,gt=0"`
	CallRecordPhonePlanID int64           `json:"call_record_phone_plan_id" validate:"required,gt=0"`
	CallRecordTime        time.Time       `json:"call_record_time" validate:"required"`
	CallRecordDuration    int             `json:"call_record_duration" validate:"gte=0"`
	CallRecordCost        decimal.Decimal `json:"call_record_cost"`
}

func (r CreateCallRecordRequest) ToModel() model.CallRecordModel {
	return model.CallRecordModel{
		CallRecordID:          r.CallRecordID,
		CallRecordPhonePlanID: r.CallRecordPhonePlanID,
		CallRecordTime:        r.CallRecordTime,
		CallRecordDuration:    r.CallRecordDuration,
		CallRecordCost:        r.CallRecordCost,
	}
}

type UpdateCallRecordRequest struct {
	CallRecordPhonePlanID int64           `json:"call_record_phone_plan_id" validate:"required,gt=0"`
	CallRecordTime        time.Time       `json:"call_record_time" validate:"required"`
	CallRecordDuration    int             `json:"call_record_duration" validate:"gte=0"`
	CallRecordCost        decimal.Decimal `json:"call_record_cost"`
}

func (r UpdateCallRecordRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"call_record_phone_plan_id": r.CallRecordPhonePlanID,
		"call_record_time":          r.CallRecordTime,
		"call_record_duration":      r.CallRecordDuration,
		"call_record_cost":          r.CallRecordCost,
	}
}
