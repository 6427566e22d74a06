package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type squadRepository struct {
	col *mongo.Collection
}

func NewSquadRepository(db *mongo.Database) ports.SquadRepository {
	return &squadRepository{col: db.Collection(squadCollection)}
}

func (r *squadRepository) Save(ctx context.Context, squad *domain.Squad) error {
	if _, err := r.col.InsertOne(ctx, squad); err != nil {
		return fmt.Errorf("failed to insert squad: %w", err)
	}
	return nil
}

func (r *squadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Squad, error) {
	var squad domain.Squad
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&squad)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSquadNotFound
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}
	return &squad, nil
}

func (r *squadRepository) Update(ctx context.Context, squad *domain.Squad) error {
	squad.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": squad.ID}, squad)
	if err != nil {
		return fmt.Errorf("failed to update squad: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSquadNotFound
	}
	return nil
}

func (r *squadRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Squad, error) {
	cursor, err := r.col.Find(ctx, bson.M{"members.user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list squads: %w", err)
	}
	defer cursor.Close(ctx)

	var squads []*domain.Squad
	if err := cursor.All(ctx, &squads); err != nil {
		return nil, fmt.Errorf("failed to decode squads: %w", err)
	}
	return squads, nil
}
