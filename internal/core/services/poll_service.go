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

const (
	defaultPollQuestion = "Where should we eat?"
	recommendationCap   = 5
)

type pollService struct {
	polls       ports.PollRepository
	squads      ports.SquadRepository
	restaurants ports.RestaurantFinder
	locks       *aggregateLocker
	now         func() time.Time
}

func NewPollService(polls ports.PollRepository, squads ports.SquadRepository, restaurants ports.RestaurantFinder) ports.PollService {
	return &pollService{
		polls:       polls,
		squads:      squads,
		restaurants: restaurants,
		locks:       newAggregateLocker(),
		now:         time.Now,
	}
}

// Create opens a poll for a squad. The creator must be a current member.
func (s *pollService) Create(ctx context.Context, creatorID uuid.UUID, input ports.CreatePollInput) (*domain.Poll, error) {
	squad, err := s.squads.GetByID(ctx, input.SquadID)
	if err != nil {
		return nil, err
	}
	if !squad.HasMember(creatorID) {
		return nil, domain.ErrNotSquadMember
	}

	question := input.Question
	if question == "" {
		question = defaultPollQuestion
	}

	var options []domain.PollOption
	for _, label := range input.Options {
		if label == "" {
			continue
		}
		options = append(options, domain.PollOption{
			ID:       uuid.New(),
			FoodType: label,
		})
	}
	if len(options) == 0 {
		return nil, errors.New("at least one option is required")
	}

	poll := &domain.Poll{
		ID:        uuid.New(),
		SquadID:   input.SquadID,
		CreatorID: creatorID,
		Question:  question,
		Options:   options,
		Status:    domain.PollActive,
		CreatedAt: s.now(),
	}

	if err := s.polls.Save(ctx, poll); err != nil {
		return nil, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "squad_id", poll.SquadID, "options", len(options))
	return poll, nil
}

func (s *pollService) Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return s.getLive(ctx, id)
}

// Vote casts a single, permanent vote for one option.
func (s *pollService) Vote(ctx context.Context, pollID, optionID, userID uuid.UUID) (*domain.Poll, error) {
	defer s.locks.lock(pollID)()

	poll, err := s.getLive(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if err := poll.CastVote(optionID, userID); err != nil {
		return nil, err
	}

	if err := s.polls.Update(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// Resolve completes the poll and looks up restaurant recommendations matching
// the winning label. The lookup is a read-only side effect; poll state does
// not depend on it.
func (s *pollService) Resolve(ctx context.Context, pollID uuid.UUID) (*domain.Poll, []domain.Restaurant, error) {
	defer s.locks.lock(pollID)()

	poll, err := s.getLive(ctx, pollID)
	if err != nil {
		return nil, nil, err
	}

	poll.Resolve()
	if err := s.polls.Update(ctx, poll); err != nil {
		return nil, nil, err
	}

	var recommendations []domain.Restaurant
	if poll.Winner != "" {
		recommendations, err = s.restaurants.FindByCuisine(ctx, poll.Winner, recommendationCap)
		if err != nil {
			return nil, nil, err
		}
	}

	slog.Info("poll resolved", "poll_id", poll.ID, "winner", poll.Winner, "recommendations", len(recommendations))
	return poll, recommendations, nil
}

// getLive loads a poll and treats an active poll past its expiry window as
// missing, matching the storage layer's TTL behavior.
func (s *pollService) getLive(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	poll, err := s.polls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll.Expired(s.now()) {
		return nil, domain.ErrPollNotFound
	}
	return poll, nil
}
