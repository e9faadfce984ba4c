// storage/records.go
package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mafalia/teranga-network/models"
)

// ClientsByPartner lists a partner's clients, newest first.
func (s *Store) ClientsByPartner(ctx context.Context, partnerID primitive.ObjectID) ([]models.Client, error) {
	return QueryDocuments[models.Client](ctx, s, CollectionClients,
		bson.M{"partnerId": partnerID}, byCreatedAtDesc())
}

// OrdersByPartner lists a partner's orders, newest first.
func (s *Store) OrdersByPartner(ctx context.Context, partnerID primitive.ObjectID) ([]models.Order, error) {
	return QueryDocuments[models.Order](ctx, s, CollectionOrders,
		bson.M{"partnerId": partnerID}, byCreatedAtDesc())
}

// TransactionsByPartner lists a partner's ledger entries, newest first.
func (s *Store) TransactionsByPartner(ctx context.Context, partnerID primitive.ObjectID) ([]models.Transaction, error) {
	return QueryDocuments[models.Transaction](ctx, s, CollectionTransactions,
		bson.M{"partnerId": partnerID}, byCreatedAtDesc())
}

// CommissionsByPartner lists a partner's commission records, newest first.
func (s *Store) CommissionsByPartner(ctx context.Context, partnerID primitive.ObjectID) ([]models.Commission, error) {
	return QueryDocuments[models.Commission](ctx, s, CollectionCommissions,
		bson.M{"partnerId": partnerID}, byCreatedAtDesc())
}

// WithdrawalsByPartner lists a partner's withdrawal requests, newest first.
func (s *Store) WithdrawalsByPartner(ctx context.Context, partnerID primitive.ObjectID) ([]models.Withdrawal, error) {
	return QueryDocuments[models.Withdrawal](ctx, s, CollectionWithdrawals,
		bson.M{"partnerId": partnerID},
		options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}}))
}

// UpdateClientStatus changes a client's lifecycle status, verifying the
// client belongs to the partner.
func (s *Store) UpdateClientStatus(
	ctx context.Context,
	partnerID, clientID primitive.ObjectID,
	status models.ClientStatus,
) (bool, error) {
	res, err := s.db.Collection(CollectionClients).UpdateOne(ctx,
		bson.M{"_id": clientID, "partnerId": partnerID},
		bson.M{"$set": bson.M{"status": status, "lastActive": time.Now()}})
	if err != nil {
		return false, fmt.Errorf("updating client status: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// UpdateOrderStatus changes an order's lifecycle status and stamps the
// matching timestamp field, verifying ownership.
func (s *Store) UpdateOrderStatus(
	ctx context.Context,
	partnerID, orderID primitive.ObjectID,
	status models.OrderStatus,
) (bool, error) {
	now := time.Now()
	set := bson.M{"status": status, "updatedAt": now}
	switch status {
	case models.OrderStatusConfirmed:
		set["confirmedAt"] = now
	case models.OrderStatusCompleted:
		set["completedAt"] = now
	}

	res, err := s.db.Collection(CollectionOrders).UpdateOne(ctx,
		bson.M{"_id": orderID, "partnerId": partnerID},
		bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("updating order status: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// commissionCover plans how available commission records fund a withdrawal,
// oldest first. When a record straddles the remaining amount it is split:
// only the consumed portion is withdrawn and the excess stays available.
type commissionCover struct {
	full     []models.Commission // flipped to withdrawn in full
	split    *models.Commission  // boundary record, partially consumed
	consumed float64             // portion of split that is withdrawn
	covered  float64
}

// planCommissionCover selects records until amount is covered. Pure function;
// covered never exceeds amount and falls short only when the records do.
func planCommissionCover(available []models.Commission, amount float64) commissionCover {
	var plan commissionCover
	for i := range available {
		if plan.covered >= amount {
			break
		}
		remaining := amount - plan.covered
		if available[i].Amount > remaining {
			plan.split = &available[i]
			plan.consumed = remaining
			plan.covered += remaining
			break
		}
		plan.full = append(plan.full, available[i])
		plan.covered += available[i].Amount
	}
	return plan
}

// MarkCommissionsWithdrawn flips available commissions to withdrawn until the
// given amount is covered, oldest first. A record that straddles the boundary
// is shrunk to the withdrawn portion and its excess is re-inserted as a fresh
// available record, so the partner never loses balance to an overshoot.
// Returns the amount actually covered.
func (s *Store) MarkCommissionsWithdrawn(
	ctx context.Context,
	partnerID primitive.ObjectID,
	amount float64,
) (float64, error) {
	available, err := QueryDocuments[models.Commission](ctx, s, CollectionCommissions,
		bson.M{"partnerId": partnerID, "status": models.CommissionStatusAvailable},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return 0, err
	}

	plan := planCommissionCover(available, amount)
	now := time.Now()
	var covered float64
	for _, commission := range plan.full {
		_, err := s.db.Collection(CollectionCommissions).UpdateByID(ctx, commission.ID, bson.M{
			"$set": bson.M{"status": models.CommissionStatusWithdrawn, "withdrawnAt": now},
		})
		if err != nil {
			return covered, fmt.Errorf("marking commission withdrawn: %w", err)
		}
		covered += commission.Amount
	}

	if plan.split != nil {
		_, err := s.db.Collection(CollectionCommissions).UpdateByID(ctx, plan.split.ID, bson.M{
			"$set": bson.M{
				"amount":      plan.consumed,
				"status":      models.CommissionStatusWithdrawn,
				"withdrawnAt": now,
			},
		})
		if err != nil {
			return covered, fmt.Errorf("marking commission withdrawn: %w", err)
		}

		remainder := models.Commission{
			PartnerID:   plan.split.PartnerID,
			ClientID:    plan.split.ClientID,
			OrderID:     plan.split.OrderID,
			Amount:      plan.split.Amount - plan.consumed,
			Percentage:  plan.split.Percentage,
			Status:      models.CommissionStatusAvailable,
			CreatedAt:   plan.split.CreatedAt,
			AvailableAt: plan.split.AvailableAt,
		}
		if _, err := s.CreateDocument(ctx, CollectionCommissions, remainder); err != nil {
			return covered, fmt.Errorf("re-inserting commission remainder: %w", err)
		}
		covered += plan.consumed
	}

	return covered, nil
}
