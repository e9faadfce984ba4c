// services/stats_service.go
package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/storage"
)

// StatsService aggregates a partner's clients, orders, transactions and
// commissions into a PartnerStats summary. It re-reads the full history on
// every call; per-partner record volumes are small enough that correctness
// beats incremental bookkeeping.
type StatsService struct {
	store *storage.Store
}

// NewStatsService builds a StatsService on top of the store.
func NewStatsService(store *storage.Store) *StatsService {
	return &StatsService{store: store}
}

// ComputeStats reads the four source collections for the partner and reduces
// them. Storage failures propagate; a zero-filled summary is returned only
// when the collections are genuinely empty. Zero-filling on failure would
// understate balances and could wrongly unblock withdrawal eligibility.
func (s *StatsService) ComputeStats(ctx context.Context, partnerID primitive.ObjectID) (*models.PartnerStats, error) {
	clients, err := s.store.ClientsByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}
	orders, err := s.store.OrdersByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}
	transactions, err := s.store.TransactionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}
	commissions, err := s.store.CommissionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}

	stats := ReduceStats(partnerID.Hex(), clients, orders, transactions, commissions)
	return &stats, nil
}

// ReduceStats folds raw records into a PartnerStats summary. Pure function;
// the IO lives in ComputeStats.
func ReduceStats(
	partnerID string,
	clients []models.Client,
	orders []models.Order,
	transactions []models.Transaction,
	commissions []models.Commission,
) models.PartnerStats {
	stats := models.PartnerStats{
		PartnerID:    partnerID,
		TotalClients: len(clients),
		TotalOrders:  len(orders),
	}

	for _, client := range clients {
		if client.Status == models.ClientStatusActive {
			stats.ActiveClients++
		}
	}

	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusConfirmed, models.OrderStatusCompleted:
			stats.ConfirmedOrders++
		case models.OrderStatusActive:
			stats.ActiveOrders++
		case models.OrderStatusPending, models.OrderStatusCancelled:
			// counted in the total only
		}
	}

	for _, transaction := range transactions {
		if transaction.Type == models.TransactionTypePayment &&
			transaction.Status == models.TransactionStatusCompleted {
			stats.CompletedPayments++
			stats.TotalRevenue += transaction.Amount
		}
	}

	for _, commission := range commissions {
		stats.TotalCommission += commission.Amount
		switch commission.Status {
		case models.CommissionStatusAvailable:
			stats.AvailableCommission += commission.Amount
		case models.CommissionStatusPending:
			stats.PendingCommission += commission.Amount
		case models.CommissionStatusWithdrawn:
			// part of the total only
		}
	}

	return stats
}
