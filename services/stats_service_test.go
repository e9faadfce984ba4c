package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mafalia/teranga-network/models"
)

func TestReduceStatsEmpty(t *testing.T) {
	stats := ReduceStats("p1", nil, nil, nil, nil)

	assert.Equal(t, "p1", stats.PartnerID)
	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.CompletedPayments)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalCommission)
}

func TestReduceStatsClients(t *testing.T) {
	clients := []models.Client{
		{Status: models.ClientStatusActive},
		{Status: models.ClientStatusActive},
		{Status: models.ClientStatusPending},
		{Status: models.ClientStatusInactive},
		{Status: models.ClientStatusSuspended},
	}

	stats := ReduceStats("p1", clients, nil, nil, nil)
	assert.Equal(t, 5, stats.TotalClients)
	assert.Equal(t, 2, stats.ActiveClients)
}

func TestReduceStatsOrders(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusConfirmed},
		{Status: models.OrderStatusConfirmed},
		{Status: models.OrderStatusActive},
		{Status: models.OrderStatusCompleted},
		{Status: models.OrderStatusCancelled},
	}

	stats := ReduceStats("p1", nil, orders, nil, nil)
	assert.Equal(t, 6, stats.TotalOrders)
	// Completed orders passed through the confirmed state, so they stay
	// counted as confirmed.
	assert.Equal(t, 3, stats.ConfirmedOrders)
	assert.Equal(t, 1, stats.ActiveOrders)
}

func TestReduceStatsTransactions(t *testing.T) {
	transactions := []models.Transaction{
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 50000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 150000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusPending, Amount: 70000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusFailed, Amount: 30000},
		{Type: models.TransactionTypeWithdrawal, Status: models.TransactionStatusCompleted, Amount: 25000},
		{Type: models.TransactionTypeCommission, Status: models.TransactionStatusCompleted, Amount: 10000},
	}

	stats := ReduceStats("p1", nil, nil, transactions, nil)
	assert.Equal(t, 2, stats.CompletedPayments)
	assert.Equal(t, 200000.0, stats.TotalRevenue)
}

func TestReduceStatsCommissions(t *testing.T) {
	commissions := []models.Commission{
		{Status: models.CommissionStatusAvailable, Amount: 30000},
		{Status: models.CommissionStatusAvailable, Amount: 20000},
		{Status: models.CommissionStatusPending, Amount: 15000},
		{Status: models.CommissionStatusWithdrawn, Amount: 40000},
	}

	stats := ReduceStats("p1", nil, nil, nil, commissions)
	assert.Equal(t, 105000.0, stats.TotalCommission)
	assert.Equal(t, 50000.0, stats.AvailableCommission)
	assert.Equal(t, 15000.0, stats.PendingCommission)

	// Withdrawn is not separately exposed, but the partition must reconcile.
	withdrawn := stats.TotalCommission - stats.AvailableCommission - stats.PendingCommission
	assert.Equal(t, 40000.0, withdrawn)
}

func TestReduceStatsEndToEndScenario(t *testing.T) {
	clients := []models.Client{
		{Status: models.ClientStatusActive},
		{Status: models.ClientStatusActive},
		{Status: models.ClientStatusPending},
	}
	orders := []models.Order{
		{Status: models.OrderStatusConfirmed},
		{Status: models.OrderStatusConfirmed},
		{Status: models.OrderStatusConfirmed},
		{Status: models.OrderStatusActive},
		{Status: models.OrderStatusPending},
	}
	transactions := []models.Transaction{
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 50000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 50000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 50000},
		{Type: models.TransactionTypePayment, Status: models.TransactionStatusCompleted, Amount: 50000},
	}

	stats := ReduceStats("p1", clients, orders, transactions, nil)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 2, stats.ActiveClients)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 3, stats.ConfirmedOrders)
	assert.Equal(t, 1, stats.ActiveOrders)
	assert.Equal(t, 4, stats.CompletedPayments)
	assert.Equal(t, 200000.0, stats.TotalRevenue)
}
