// services/commission_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/storage"
)

// CommissionService sums commission records by state and gates withdrawal
// requests on the available balance.
//
// Withdrawal creation does not flip commission state; the pending -> approved
// manual approval step is the real gate, and ProcessWithdrawal re-validates
// the balance before marking commissions withdrawn.
type CommissionService struct {
	store *storage.Store
}

// NewCommissionService builds a CommissionService on top of the store.
func NewCommissionService(store *storage.Store) *CommissionService {
	return &CommissionService{store: store}
}

// SummarizeCommissions partitions commission records by status. Pure
// function; Total reconciles with Available + Pending + Withdrawn.
func SummarizeCommissions(commissions []models.Commission) models.CommissionBalance {
	var balance models.CommissionBalance
	for _, commission := range commissions {
		balance.Total += commission.Amount
		switch commission.Status {
		case models.CommissionStatusAvailable:
			balance.Available += commission.Amount
		case models.CommissionStatusPending:
			balance.Pending += commission.Amount
		case models.CommissionStatusWithdrawn:
			balance.Withdrawn += commission.Amount
		}
	}
	return balance
}

// CanWithdraw reports whether the available balance meets the system minimum.
func CanWithdraw(availableCommission float64) bool {
	return availableCommission >= models.MinimumWithdrawal
}

// Balance reads the partner's commission records and summarizes them.
func (s *CommissionService) Balance(ctx context.Context, partnerID primitive.ObjectID) (*models.CommissionBalance, error) {
	commissions, err := s.store.CommissionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("reading commission balance: %w", err)
	}
	balance := SummarizeCommissions(commissions)
	return &balance, nil
}

// ValidateWithdrawal checks a requested amount against the minimum and the
// available balance. Pure function; returns ErrBelowMinimum or
// ErrInsufficientBalance.
func ValidateWithdrawal(amount, availableCommission float64) error {
	if amount < models.MinimumWithdrawal {
		return ErrBelowMinimum
	}
	if amount > availableCommission {
		return ErrInsufficientBalance
	}
	return nil
}

// CreateWithdrawalRequest validates the amount and account details, then
// inserts a pending withdrawal with a request timestamp. The available
// balance is read fresh at request time; commission records stay untouched
// until approval.
func (s *CommissionService) CreateWithdrawalRequest(
	ctx context.Context,
	partnerID primitive.ObjectID,
	amount float64,
	method models.WithdrawalMethod,
	details models.AccountDetails,
) (*models.Withdrawal, error) {
	if err := details.Validate(method); err != nil {
		return nil, err
	}

	balance, err := s.Balance(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if err := ValidateWithdrawal(amount, balance.Available); err != nil {
		return nil, err
	}

	withdrawal := models.Withdrawal{
		PartnerID:      partnerID,
		Reference:      newWithdrawalReference(),
		Amount:         amount,
		Method:         method,
		Status:         models.WithdrawalStatusPending,
		AccountDetails: details,
		RequestedAt:    time.Now(),
	}

	id, err := s.store.CreateDocument(ctx, storage.CollectionWithdrawals, withdrawal)
	if err != nil {
		return nil, fmt.Errorf("creating withdrawal request: %w", err)
	}
	withdrawal.ID = id
	return &withdrawal, nil
}

// ProcessWithdrawal approves or rejects a pending withdrawal. Approval
// re-validates the available balance, flips commissions to withdrawn and
// records a withdrawal ledger entry.
func (s *CommissionService) ProcessWithdrawal(
	ctx context.Context,
	withdrawalID primitive.ObjectID,
	approve bool,
	rejectionReason string,
) (*models.Withdrawal, error) {
	withdrawal, err := storage.GetDocument[models.Withdrawal](ctx, s.store, storage.CollectionWithdrawals, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return nil, ErrWithdrawalNotPending
	}

	now := time.Now()
	if !approve {
		withdrawal.Status = models.WithdrawalStatusRejected
		withdrawal.ProcessedAt = &now
		withdrawal.RejectionReason = rejectionReason
		return withdrawal, s.updateWithdrawal(ctx, withdrawal)
	}

	balance, err := s.Balance(ctx, withdrawal.PartnerID)
	if err != nil {
		return nil, err
	}
	if withdrawal.Amount > balance.Available {
		return nil, ErrInsufficientBalance
	}

	covered, err := s.store.MarkCommissionsWithdrawn(ctx, withdrawal.PartnerID, withdrawal.Amount)
	if err != nil {
		return nil, err
	}
	if covered < withdrawal.Amount {
		// A concurrent flip drained the balance between the check and the
		// cover; the shortfall needs manual reconciliation.
		return nil, fmt.Errorf("withdrawal %s: covered %.0f of %.0f: %w",
			withdrawal.Reference, covered, withdrawal.Amount, ErrInsufficientBalance)
	}

	ledgerEntry := models.Transaction{
		PartnerID:   withdrawal.PartnerID,
		Type:        models.TransactionTypeWithdrawal,
		Amount:      withdrawal.Amount,
		Status:      models.TransactionStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
		Description: "Withdrawal " + withdrawal.Reference,
	}
	if _, err := s.store.CreateDocument(ctx, storage.CollectionTransactions, ledgerEntry); err != nil {
		return nil, err
	}

	withdrawal.Status = models.WithdrawalStatusApproved
	withdrawal.ProcessedAt = &now
	return withdrawal, s.updateWithdrawal(ctx, withdrawal)
}

func (s *CommissionService) updateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	_, err := s.store.Database().Collection(storage.CollectionWithdrawals).UpdateByID(ctx, withdrawal.ID, bson.M{
		"$set": bson.M{
			"status":          withdrawal.Status,
			"processedAt":     withdrawal.ProcessedAt,
			"rejectionReason": withdrawal.RejectionReason,
		},
	})
	if err != nil {
		return fmt.Errorf("updating withdrawal: %w", err)
	}
	return nil
}

// newWithdrawalReference generates a short human-readable reference number.
func newWithdrawalReference() string {
	return "WD-" + strings.ToUpper(uuid.NewString()[:8])
}
