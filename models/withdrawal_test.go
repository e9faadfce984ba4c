package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountDetailsValidate(t *testing.T) {
	tests := []struct {
		name    string
		method  WithdrawalMethod
		details AccountDetails
		wantErr error
	}{
		{
			name:    "bank transfer complete",
			method:  MethodBankTransfer,
			details: AccountDetails{IBAN: "SN08SN0100152000048500003035", BankName: "CBAO"},
		},
		{
			name:    "bank transfer missing iban",
			method:  MethodBankTransfer,
			details: AccountDetails{BankName: "CBAO"},
			wantErr: ErrMissingAccountDetails,
		},
		{
			name:    "bank transfer missing bank name",
			method:  MethodBankTransfer,
			details: AccountDetails{IBAN: "SN08SN0100152000048500003035"},
			wantErr: ErrMissingAccountDetails,
		},
		{
			name:    "mobile money complete",
			method:  MethodMobileMoney,
			details: AccountDetails{Phone: "+221771234567"},
		},
		{
			name:    "mobile money missing phone",
			method:  MethodMobileMoney,
			details: AccountDetails{},
			wantErr: ErrMissingAccountDetails,
		},
		{
			name:    "cash needs nothing",
			method:  MethodCash,
			details: AccountDetails{},
		},
		{
			name:    "unknown method",
			method:  WithdrawalMethod("paypal"),
			details: AccountDetails{},
			wantErr: ErrUnknownWithdrawalMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate(tt.method)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidClientStatus(t *testing.T) {
	for _, status := range []ClientStatus{ClientStatusPending, ClientStatusActive, ClientStatusInactive, ClientStatusSuspended} {
		assert.True(t, ValidClientStatus(status))
	}
	assert.False(t, ValidClientStatus(ClientStatus("deleted")))
	assert.False(t, ValidClientStatus(ClientStatus("")))
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus(OrderStatus("shipped")))
}
