package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
)

func availableCommission(amount float64) models.Commission {
	return models.Commission{
		ID:        primitive.NewObjectID(),
		PartnerID: primitive.NewObjectID(),
		ClientID:  primitive.NewObjectID(),
		OrderID:   primitive.NewObjectID(),
		Amount:    amount,
		Status:    models.CommissionStatusAvailable,
	}
}

func TestPlanCommissionCoverExactFit(t *testing.T) {
	records := []models.Commission{
		availableCommission(10000),
		availableCommission(15000),
	}

	plan := planCommissionCover(records, 25000)
	assert.Len(t, plan.full, 2)
	assert.Nil(t, plan.split)
	assert.Equal(t, 25000.0, plan.covered)
}

func TestPlanCommissionCoverSplitsBoundaryRecord(t *testing.T) {
	// One 30,000 record funding a 25,000 withdrawal: only 25,000 may be
	// withdrawn; the 5,000 excess stays with the partner.
	records := []models.Commission{availableCommission(30000)}

	plan := planCommissionCover(records, 25000)
	assert.Empty(t, plan.full)
	require.NotNil(t, plan.split)
	assert.Equal(t, records[0].ID, plan.split.ID)
	assert.Equal(t, 25000.0, plan.consumed)
	assert.Equal(t, 25000.0, plan.covered)
	assert.Equal(t, 5000.0, plan.split.Amount-plan.consumed)
}

func TestPlanCommissionCoverSplitsAfterFullRecords(t *testing.T) {
	records := []models.Commission{
		availableCommission(10000),
		availableCommission(10000),
		availableCommission(20000),
	}

	plan := planCommissionCover(records, 25000)
	require.Len(t, plan.full, 2)
	assert.Equal(t, records[0].ID, plan.full[0].ID)
	assert.Equal(t, records[1].ID, plan.full[1].ID)
	require.NotNil(t, plan.split)
	assert.Equal(t, records[2].ID, plan.split.ID)
	assert.Equal(t, 5000.0, plan.consumed)
	assert.Equal(t, 25000.0, plan.covered)
}

func TestPlanCommissionCoverNeverOvershoots(t *testing.T) {
	records := []models.Commission{
		availableCommission(7000),
		availableCommission(9000),
		availableCommission(11000),
		availableCommission(40000),
	}

	for _, amount := range []float64{25000, 26000, 27000, 50000, 67000} {
		plan := planCommissionCover(records, amount)
		assert.Equal(t, amount, plan.covered, "amount %.0f", amount)

		// Everything consumed equals everything covered: no record loses
		// more than the withdrawal takes.
		var consumed float64
		for _, commission := range plan.full {
			consumed += commission.Amount
		}
		consumed += plan.consumed
		assert.Equal(t, plan.covered, consumed, "amount %.0f", amount)
	}
}

func TestPlanCommissionCoverInsufficientRecords(t *testing.T) {
	records := []models.Commission{
		availableCommission(10000),
		availableCommission(5000),
	}

	plan := planCommissionCover(records, 25000)
	assert.Len(t, plan.full, 2)
	assert.Nil(t, plan.split)
	assert.Equal(t, 15000.0, plan.covered)
	assert.Less(t, plan.covered, 25000.0)
}

func TestPlanCommissionCoverEmpty(t *testing.T) {
	plan := planCommissionCover(nil, 25000)
	assert.Empty(t, plan.full)
	assert.Nil(t, plan.split)
	assert.Zero(t, plan.covered)
}
