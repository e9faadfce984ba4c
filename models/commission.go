// models/commission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommissionStatus progresses pending -> available -> withdrawn, monotonically.
// No reverse transition exists.
type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"   // not yet released
	CommissionStatusAvailable CommissionStatus = "available" // withdrawable
	CommissionStatusWithdrawn CommissionStatus = "withdrawn" // paid out
)

// DefaultCommissionRate is the share of a completed order credited to the
// enrolling partner.
const DefaultCommissionRate = 0.10

// Commission is an amount owed to a partner for a specific order.
type Commission struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PartnerID   primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId"`
	OrderID     primitive.ObjectID `json:"orderId" bson:"orderId"`
	Amount      float64            `json:"amount" bson:"amount"`
	Percentage  float64            `json:"percentage" bson:"percentage"`
	Status      CommissionStatus   `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	AvailableAt *time.Time         `json:"availableAt,omitempty" bson:"availableAt,omitempty"`
	WithdrawnAt *time.Time         `json:"withdrawnAt,omitempty" bson:"withdrawnAt,omitempty"`
}

// CommissionBalance summarizes a partner's commission records by status.
// Total always equals Available + Pending + Withdrawn.
type CommissionBalance struct {
	Total     float64 `json:"total"`
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
	Withdrawn float64 `json:"withdrawn"`
}
