package dto

import (
	"github.com/shopspring/decimal"

	model "cellbill_backend/internals/features/billing/phone_plans/model"
)

type CreatePhonePlanRequest struct {
	PhonePlanID            int64           `json:"phone_plan_id" validate:"required,gt=0"`
	PhonePlanType          string          `json:"phone_plan_type" validate:"required"`
	PhonePlanMonthlyCharge decimal.Decimal `json:"phone_plan_monthly_charge"`
	PhonePlanDataLimit     int             `json:"phone_plan_data_limit" validate:"gte=0"`
	PhonePlanTalkTime      int             `json:"phone_plan_talk_time" validate:"gte=0"`
}

func (r CreatePhonePlanRequest) ToModel() model.PhonePlanModel {
	return model.PhonePlanModel{
		PhonePlanID:            r.PhonePlanID,
		PhonePlanType:          r.PhonePlanType,
		PhonePlanMonthlyCharge: r.PhonePlanMonthlyCharge,
		PhonePlanDataLimit:     r.PhonePlanDataLimit,
		PhonePlanTalkTime:      r.PhonePlanTalkTime,
	}
}

type UpdatePhonePlanRequest struct {
	PhonePlanType          string          `json:"phone_plan_type" validate:"required"`
	PhonePlanMonthlyCharge decimal.Decimal `json:"phone_plan_monthly_charge"`
	PhonePlanDataLimit     int             `json:"phone_plan_data_limit" validate:"gte=0"`
	PhonePlanTalkTime      int             `json:"phone_plan_talk_time" validate:"gte=0"`
}

func (r UpdatePhonePlanRequest) ToUpdates() map[string]interface{} {
	return map[string]interface{}{
		"phone_plan_type":           r.PhonePlanType,
		"phone_plan_monthly_charge": r.PhonePlanMonthlyCharge,
		"phone_plan_data_limit":     r.PhonePlanDataLimit,
		"phone_plan_talk_time":      r.PhonePlanTalkTime,
	}
}
