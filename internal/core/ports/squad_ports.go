package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
)

type SquadRepository interface {
	Save(ctx context.Context, squad *domain.Squad) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Squad, error)
	Update(ctx context.Context, squad *domain.Squad) error
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*domain.Squad, error)
}

type MemberInput struct {
	UserID      uuid.UUID
	Username    string
	Preferences domain.Preferences
	Latitude    float64
	Longitude   float64
}

type CreateSquadInput struct {
	Name      string
	SquadType string
	Members   []MemberInput
}

type SquadService interface {
	Create(ctx context.Context, creator MemberInput, input CreateSquadInput) (*domain.Squad, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Squad, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Squad, error)
}

type SessionVoteInput struct {
	SquadID      uuid.UUID
	RestaurantID int64
	UserID       uuid.UUID
	VoteType     string
}

// SessionService owns the squad decision session lifecycle: start, vote,
// finalize or roulette.
type SessionService interface {
	StartSession(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error)
	Vote(ctx context.Context, input SessionVoteInput) (*domain.Squad, error)
	FinalizeDecision(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error)
	FoodRoulette(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error)
}
