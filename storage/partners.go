// storage/partners.go
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mafalia/teranga-network/models"
)

// PartnerByID reads a partner by id; missing partners yield (nil, nil).
func (s *Store) PartnerByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	return GetDocument[models.Partner](ctx, s, CollectionPartners, id)
}

// PartnerByEmail reads a partner by email; missing partners yield (nil, nil).
func (s *Store) PartnerByEmail(ctx context.Context, email string) (*models.Partner, error) {
	var partner models.Partner
	err := s.db.Collection(CollectionPartners).FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting partner by email: %w", err)
	}
	return &partner, nil
}

// AllPartners lists every partner, oldest first.
func (s *Store) AllPartners(ctx context.Context) ([]models.Partner, error) {
	return QueryDocuments[models.Partner](ctx, s, CollectionPartners, bson.M{},
		options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}}))
}

// CreatePartner inserts a new partner document.
func (s *Store) CreatePartner(ctx context.Context, partner models.Partner) (primitive.ObjectID, error) {
	return s.CreateDocument(ctx, CollectionPartners, partner)
}

// UpdatePartnerScore persists a recomputed score and rank.
func (s *Store) UpdatePartnerScore(ctx context.Context, id primitive.ObjectID, score int, rank models.Rank) error {
	_, err := s.db.Collection(CollectionPartners).UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"score": score, "rank": rank},
	})
	if err != nil {
		return fmt.Errorf("updating partner score: %w", err)
	}
	return nil
}
