package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type pollRepository struct {
	col *mongo.Collection
}

func NewPollRepository(db *mongo.Database) ports.PollRepository {
	return &pollRepository{col: db.Collection(pollCollection)}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	if _, err := r.col.InsertOne(ctx, poll); err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	var poll domain.Poll
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&poll)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return &poll, nil
}

func (r *pollRepository) Update(ctx context.Context, poll *domain.Poll) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": poll.ID}, poll)
	if err != nil {
		return fmt.Errorf("failed to update poll: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}
