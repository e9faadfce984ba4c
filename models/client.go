// models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientType distinguishes individual enrollments from business enrollments.
type ClientType string

const (
	ClientTypeMafalia   ClientType = "mafalia"   // individual
	ClientTypeCommercia ClientType = "commercia" // business
)

// ClientStatus is the lifecycle status of an enrolled client.
type ClientStatus string

const (
	ClientStatusPending   ClientStatus = "pending"
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
)

// ValidClientStatus reports whether s is one of the known client statuses.
func ValidClientStatus(s ClientStatus) bool {
	switch s {
	case ClientStatusPending, ClientStatusActive, ClientStatusInactive, ClientStatusSuspended:
		return true
	}
	return false
}

// Client is an end-customer enrolled by exactly one partner.
type Client struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PartnerID primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	Type      ClientType         `json:"type" bson:"type"`
	Status    ClientStatus       `json:"status" bson:"status"`

	// Personal info (mafalia)
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty"`

	// Business info (commercia)
	BusinessName string `json:"businessName,omitempty" bson:"businessName,omitempty"`
	BusinessType string `json:"businessType,omitempty" bson:"businessType,omitempty"`
	Ninea        string `json:"ninea,omitempty" bson:"ninea,omitempty"`

	// Common fields
	Email      string     `json:"email" bson:"email"`
	Phone      string     `json:"phone" bson:"phone"`
	Country    string     `json:"country,omitempty" bson:"country,omitempty"`
	Region     string     `json:"region,omitempty" bson:"region,omitempty"`
	Address    string     `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	LastActive *time.Time `json:"lastActive,omitempty" bson:"lastActive,omitempty"`
}
