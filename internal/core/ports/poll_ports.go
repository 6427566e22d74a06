package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	Update(ctx context.Context, poll *domain.Poll) error
}

type CreatePollInput struct {
	SquadID  uuid.UUID
	Question string
	Options  []string
}

type PollService interface {
	Create(ctx context.Context, creatorID uuid.UUID, input CreatePollInput) (*domain.Poll, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	Vote(ctx context.Context, pollID, optionID, userID uuid.UUID) (*domain.Poll, error)
	Resolve(ctx context.Context, pollID uuid.UUID) (*domain.Poll, []domain.Restaurant, error)
}
