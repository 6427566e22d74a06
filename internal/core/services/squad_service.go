package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type squadService struct {
	squads ports.SquadRepository
	now    func() time.Time
}

func NewSquadService(squads ports.SquadRepository) ports.SquadService {
	return &squadService{squads: squads, now: time.Now}
}

// Create makes a new squad with the creator as its first member. Additional
// members can be passed along; a duplicate of the creator is ignored.
func (s *squadService) Create(ctx context.Context, creator ports.MemberInput, input ports.CreateSquadInput) (*domain.Squad, error) {
	if input.Name == "" {
		return nil, errors.New("squad name is required")
	}

	squadType, err := domain.ParseSquadType(input.SquadType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	members := []domain.Member{newMember(creator, now)}
	for _, m := range input.Members {
		if m.UserID == creator.UserID {
			continue
		}
		members = append(members, newMember(m, now))
	}

	squad := &domain.Squad{
		ID:        uuid.New(),
		Name:      input.Name,
		SquadType: squadType,
		CreatorID: creator.UserID,
		Members:   members,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.squads.Save(ctx, squad); err != nil {
		return nil, err
	}

	slog.Info("squad created", "squad_id", squad.ID, "name", squad.Name, "members", len(members))
	return squad, nil
}

func (s *squadService) Get(ctx context.Context, id uuid.UUID) (*domain.Squad, error) {
	return s.squads.GetByID(ctx, id)
}

func (s *squadService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Squad, error) {
	return s.squads.ListByMember(ctx, userID)
}

func newMember(input ports.MemberInput, joinedAt time.Time) domain.Member {
	return domain.Member{
		UserID:          input.UserID,
		Username:        input.Username,
		Preferences:     input.Preferences,
		CurrentLocation: domain.NewGeoPoint(input.Latitude, input.Longitude),
		JoinedAt:        joinedAt,
	}
}
