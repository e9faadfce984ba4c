// storage/store.go
package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	CollectionPartners     = "partners"
	CollectionClients      = "clients"
	CollectionOrders       = "orders"
	CollectionTransactions = "transactions"
	CollectionCommissions  = "commissions"
	CollectionWithdrawals  = "withdrawals"
	CollectionCertificates = "certificates"
)

// Store wraps a Mongo database with the document operations the services
// need: equality-filtered queries, reads by id and inserts with
// server-assigned ids.
type Store struct {
	db *mongo.Database
}

// New builds a Store on top of the given database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Database exposes the underlying database for callers that need raw access,
// such as status-transition updates.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// QueryDocuments runs an equality-filtered find on a collection and decodes
// the results into a slice of T.
func QueryDocuments[T any](
	ctx context.Context,
	s *Store,
	collection string,
	filter bson.M,
	opts ...*options.FindOptions,
) ([]T, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decoding %s results: %w", collection, err)
	}
	return results, nil
}

// GetDocument reads a single document by id. A missing document yields
// (nil, nil) rather than an error.
func GetDocument[T any](ctx context.Context, s *Store, collection string, id primitive.ObjectID) (*T, error) {
	var result T
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting document from %s: %w", collection, err)
	}
	return &result, nil
}

// CreateDocument inserts a document and returns its generated id.
func (s *Store) CreateDocument(ctx context.Context, collection string, data interface{}) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("inserting into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// byCreatedAtDesc sorts query results newest first.
func byCreatedAtDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
