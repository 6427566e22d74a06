// Package mongo stores the Squad and Poll aggregates as single documents, so
// every engine mutation is one atomic document write.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodsquad/api/internal/core/domain"
)

const (
	squadCollection = "squads"
	pollCollection  = "polls"
)

// Connect opens a client and verifies the connection.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client.Database(dbName), nil
}

// EnsureIndexes creates the squad lookup indexes and the poll TTL index. The
// TTL only applies to still-active polls: a completed poll keeps its winner.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(squadCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "members.user_id", Value: 1}}},
		{Keys: bson.D{{Key: "current_session.is_active", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create squad indexes: %w", err)
	}

	ttl := int32(domain.PollTTL.Seconds())
	_, err = db.Collection(pollCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "squad_id", Value: 1}}},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().
				SetExpireAfterSeconds(ttl).
				SetPartialFilterExpression(bson.D{{Key: "status", Value: string(domain.PollActive)}}),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create poll indexes: %w", err)
	}
	return nil
}
