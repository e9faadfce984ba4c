package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mafalia/teranga-network/models"
)

func TestSummarizeCommissionsPartition(t *testing.T) {
	commissions := []models.Commission{
		{Status: models.CommissionStatusAvailable, Amount: 30000},
		{Status: models.CommissionStatusPending, Amount: 12000},
		{Status: models.CommissionStatusPending, Amount: 8000},
		{Status: models.CommissionStatusWithdrawn, Amount: 50000},
	}

	balance := SummarizeCommissions(commissions)
	assert.Equal(t, 100000.0, balance.Total)
	assert.Equal(t, 30000.0, balance.Available)
	assert.Equal(t, 20000.0, balance.Pending)
	assert.Equal(t, 50000.0, balance.Withdrawn)
	assert.Equal(t, balance.Total, balance.Available+balance.Pending+balance.Withdrawn)
}

func TestSummarizeCommissionsEmpty(t *testing.T) {
	balance := SummarizeCommissions(nil)
	assert.Zero(t, balance.Total)
	assert.Zero(t, balance.Available)
	assert.Zero(t, balance.Pending)
	assert.Zero(t, balance.Withdrawn)
}

func TestCanWithdrawGate(t *testing.T) {
	assert.False(t, CanWithdraw(0))
	assert.False(t, CanWithdraw(24999))
	assert.True(t, CanWithdraw(25000))
	assert.True(t, CanWithdraw(25001))
}

func TestValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		available float64
		wantErr   error
	}{
		{name: "exactly minimum", amount: 25000, available: 25000, wantErr: nil},
		{name: "above minimum with balance", amount: 30000, available: 100000, wantErr: nil},
		{name: "one below minimum", amount: 24999, available: 100000, wantErr: ErrBelowMinimum},
		{name: "zero amount", amount: 0, available: 100000, wantErr: ErrBelowMinimum},
		{name: "exceeds balance", amount: 30000, available: 29999, wantErr: ErrInsufficientBalance},
		{name: "below minimum and over balance reports minimum first", amount: 24999, available: 0, wantErr: ErrBelowMinimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawal(tt.amount, tt.available)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewWithdrawalReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := newWithdrawalReference()
		assert.Regexp(t, `^WD-[0-9A-F]{8}$`, ref)
		assert.False(t, seen[ref], "references should not repeat")
		seen[ref] = true
	}
}
