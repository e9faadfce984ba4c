// models/transaction.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType is the kind of ledger entry.
type TransactionType string

const (
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeCommission TransactionType = "commission"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the lifecycle status of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Transaction is an append-only ledger entry. Entries are never mutated after
// reaching a terminal status except by the withdrawal workflow.
type Transaction struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	PartnerID   primitive.ObjectID  `json:"partnerId" bson:"partnerId"`
	ClientID    *primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"`
	OrderID     *primitive.ObjectID `json:"orderId,omitempty" bson:"orderId,omitempty"`
	Type        TransactionType     `json:"type" bson:"type"`
	Amount      float64             `json:"amount" bson:"amount"`
	Status      TransactionStatus   `json:"status" bson:"status"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
}
