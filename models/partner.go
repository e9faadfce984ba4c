// models/partner.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rank is one of four ordered loyalty tiers derived from the partner score.
type Rank string

const (
	RankBronze   Rank = "Bronze"
	RankSilver   Rank = "Silver"
	RankGold     Rank = "Gold"
	RankPlatinum Rank = "Platinum"
)

// RankOrder lists the tiers in ascending order. Used for ordinal comparison
// when deciding rank upgrades.
var RankOrder = []Rank{RankBronze, RankSilver, RankGold, RankPlatinum}

// Ordinal returns the position of the rank in the ascending tier order,
// or -1 for an unknown rank.
func (r Rank) Ordinal() int {
	for i, rank := range RankOrder {
		if rank == r {
			return i
		}
	}
	return -1
}

// Partner is a commercial agent who enrolls clients and earns commissions.
type Partner struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"password,omitempty" bson:"password"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Country      string             `json:"country,omitempty" bson:"country,omitempty"`
	Region       string             `json:"region,omitempty" bson:"region,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Rank         Rank               `json:"rank" bson:"rank"`
	Score        int                `json:"score" bson:"score"`
	ReferralCode string             `json:"referralCode,omitempty" bson:"referralCode,omitempty"`
	JoinedAt     time.Time          `json:"joinedAt" bson:"joinedAt"`
	Avatar       string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	IsCertified  bool               `json:"isCertified" bson:"isCertified"`
	CertifiedAt  *time.Time         `json:"certifiedAt,omitempty" bson:"certifiedAt,omitempty"`
}

// FullName returns the partner display name used on the leaderboard.
func (p *Partner) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PartnerStats is a derived aggregate computed fresh from the clients, orders,
// transactions and commissions collections. It is never persisted.
type PartnerStats struct {
	PartnerID           string  `json:"partnerId"`
	TotalClients        int     `json:"totalClients"`
	ActiveClients       int     `json:"activeClients"`
	TotalOrders         int     `json:"totalOrders"`
	ConfirmedOrders     int     `json:"confirmedOrders"`
	ActiveOrders        int     `json:"activeOrders"`
	CompletedPayments   int     `json:"completedPayments"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalCommission     float64 `json:"totalCommission"`
	AvailableCommission float64 `json:"availableCommission"`
	PendingCommission   float64 `json:"pendingCommission"`
}
