// models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle status of a commercial order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusActive,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item on an order.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice" bson:"totalPrice"`
}

// Order is a commercial transaction tied to a client and, transitively,
// to the enrolling partner.
type Order struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId"`
	PartnerID   primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	Amount      float64            `json:"amount" bson:"amount"`
	Status      OrderStatus        `json:"status" bson:"status"`
	Items       []OrderItem        `json:"items,omitempty" bson:"items,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	ConfirmedAt *time.Time         `json:"confirmedAt,omitempty" bson:"confirmedAt,omitempty"`
	CompletedAt *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
