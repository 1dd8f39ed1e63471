package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := CreateCustomerRequest{
		CustomerID:            7,
		CustomerName:          "Bob Rivera",
		CustomerNumber:        "555-0102",
		CustomerEmail:         "bob@example.com",
		CustomerAddress:       "48 Pine Ave",
		CustomerPhonePlanID:   1,
		CustomerBankAccountID: 2,
	}

	m := req.ToModel()
	assert.Equal(t, int64(7), m.CustomerID)
	assert.Equal(t, "Bob Rivera", m.CustomerName)
	assert.Equal(t, int64(1), m.CustomerPhonePlanID)
	assert.Equal(t, int64(2), m.CustomerBankAccountID)
}

func TestUpdateCustomerRequest_ToUpdates(t *testing.T) {
	req := UpdateCustomerRequest{
		CustomerName:          "Bob Rivera",
		CustomerNumber:        "555-0102",
		CustomerEmail:         "bob@example.com",
		CustomerAddress:       "48 Pine Ave",
		CustomerPhonePlanID:   1,
		CustomerBankAccountID: 2,
	}

	u := req.ToUpdates()
	assert.Len(t, u, 6)
	assert.Equal(t, "Bob Rivera", u["customer_name"])
	assert.Equal(t, int64(1), u["customer_phone_plan_id"])
	assert.Equal(t, int64(2), u["customer_bank_account_id"])
}

func TestCreateCustomerRequest_Validation(t *testing.T) {
	v := validator.New()

	valid := CreateCustomerRequest{
		CustomerID:            1,
		CustomerName:          "Alice Johnson",
		CustomerNumber:        "555-0101",
		CustomerEmail:         "alice@example.com",
		CustomerAddress:       "12 Oak St",
		CustomerPhonePlanID:   2,
		CustomerBankAccountID: 1,
	}
	require.NoError(t, v.Struct(valid))

	missingID := valid
	missingID.CustomerID = 0
	assert.Error(t, v.Struct(missingID))

	badEmail := valid
	badEmail.CustomerEmail = "not-an-email"
	assert.Error(t, v.Struct(badEmail))
}
