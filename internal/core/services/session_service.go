package services

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

const (
	searchRadiusMeters = 5000
	maxSuggestions     = 5
	sessionDuration    = 10 * time.Minute
)

type sessionService struct {
	squads      ports.SquadRepository
	restaurants ports.RestaurantFinder
	rng         *rand.Rand
	locks       *aggregateLocker
	now         func() time.Time
}

// NewSessionService builds the session manager. The random source drives the
// roulette pick and is injected so tests can seed it.
func NewSessionService(squads ports.SquadRepository, restaurants ports.RestaurantFinder, rng *rand.Rand) ports.SessionService {
	return &sessionService{
		squads:      squads,
		restaurants: restaurants,
		rng:         rng,
		locks:       newAggregateLocker(),
		now:         time.Now,
	}
}

// StartSession aggregates member preferences, queries the restaurant finder
// around the squad's centroid and materializes the top surviving candidates
// as suggestions. Fails when a session is already active.
func (s *sessionService) StartSession(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error) {
	defer s.locks.lock(squadID)()

	squad, err := s.squads.GetByID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if squad.HasActiveSession() {
		return nil, domain.ErrSessionActive
	}

	profile, err := AggregatePreferences(squad.Members)
	if err != nil {
		return nil, err
	}

	candidates, err := s.restaurants.FindNearby(ctx, profile.CentroidLat, profile.CentroidLon, searchRadiusMeters, nil)
	if err != nil {
		return nil, err
	}

	// Candidates arrive nearest-first; keep that order for the cap.
	suggestions := make([]domain.SuggestedRestaurant, 0, maxSuggestions)
	for _, r := range candidates {
		if !profile.AllowsPrice(r.PriceRange) || !profile.AllowsCuisine(r.CuisineType) {
			continue
		}
		suggestions = append(suggestions, domain.SuggestedRestaurant{
			RestaurantID:         r.ID,
			RestaurantName:       r.Name,
			Location:             domain.NewGeoPoint(r.Latitude, r.Longitude),
			AvgDistanceToMembers: r.Distance,
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	now := s.now()
	squad.CurrentSession = &domain.DecisionSession{
		IsActive:             true,
		StartedAt:            now,
		DecisionDeadline:     now.Add(sessionDuration),
		SuggestedRestaurants: suggestions,
	}

	if err := s.squads.Update(ctx, squad); err != nil {
		return nil, err
	}

	slog.Info("decision session started",
		"squad_id", squadID,
		"candidates", len(candidates),
		"suggestions", len(suggestions),
	)
	return squad, nil
}

// Vote records one member's vote on a suggested restaurant, overriding any
// previous vote by the same member on it.
func (s *sessionService) Vote(ctx context.Context, input ports.SessionVoteInput) (*domain.Squad, error) {
	voteType, err := domain.ParseVoteType(input.VoteType)
	if err != nil {
		return nil, err
	}

	defer s.locks.lock(input.SquadID)()

	squad, err := s.squads.GetByID(ctx, input.SquadID)
	if err != nil {
		return nil, err
	}
	if !squad.HasActiveSession() {
		return nil, domain.ErrNoActiveSession
	}

	suggestion := squad.CurrentSession.Suggestion(input.RestaurantID)
	if suggestion == nil {
		return nil, domain.ErrRestaurantNotSuggested
	}

	if err := suggestion.RecordVote(input.UserID, voteType, s.now()); err != nil {
		return nil, err
	}

	if err := s.squads.Update(ctx, squad); err != nil {
		return nil, err
	}
	return squad, nil
}

// FinalizeDecision closes the session with the highest-scored suggestion
// (first in list order on ties), records the meeting and updates squad stats.
func (s *sessionService) FinalizeDecision(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error) {
	defer s.locks.lock(squadID)()

	squad, err := s.squads.GetByID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if !squad.HasActiveSession() {
		return nil, domain.ErrNoActiveSession
	}

	session := squad.CurrentSession
	winner := session.TopSuggestion()
	if winner == nil {
		return nil, domain.ErrNoSuggestions
	}

	now := s.now()
	decisionMinutes := int(now.Sub(session.StartedAt).Minutes())

	session.FinalDecision = &domain.FinalDecision{
		RestaurantID:   winner.RestaurantID,
		RestaurantName: winner.RestaurantName,
		DecidedAt:      now,
		DecisionMethod: domain.DecisionVoting,
	}
	session.IsActive = false

	squad.Stats.ApplyDecision(winner.RestaurantID, winner.RestaurantName, decisionMinutes)
	squad.MeetingHistory = append(squad.MeetingHistory, domain.Meeting{
		RestaurantID:   winner.RestaurantID,
		RestaurantName: winner.RestaurantName,
		Date:           now,
		Attendees:      squad.MemberIDs(),
		DecisionTime:   decisionMinutes,
	})

	if err := s.squads.Update(ctx, squad); err != nil {
		return nil, err
	}

	slog.Info("decision finalized",
		"squad_id", squadID,
		"restaurant", winner.RestaurantName,
		"decision_minutes", decisionMinutes,
	)
	return squad, nil
}

// FoodRoulette closes the session with a uniformly random suggestion,
// ignoring scores. Only the meeting counter moves; no history entry and no
// decision-time stats.
func (s *sessionService) FoodRoulette(ctx context.Context, squadID uuid.UUID) (*domain.Squad, error) {
	defer s.locks.lock(squadID)()

	squad, err := s.squads.GetByID(ctx, squadID)
	if err != nil {
		return nil, err
	}
	if !squad.HasActiveSession() {
		return nil, domain.ErrNoActiveSession
	}

	session := squad.CurrentSession
	if len(session.SuggestedRestaurants) == 0 {
		return nil, domain.ErrNoSuggestions
	}

	winner := session.SuggestedRestaurants[s.rng.Intn(len(session.SuggestedRestaurants))]

	session.FinalDecision = &domain.FinalDecision{
		RestaurantID:   winner.RestaurantID,
		RestaurantName: winner.RestaurantName,
		DecidedAt:      s.now(),
		DecisionMethod: domain.DecisionRoulette,
	}
	session.IsActive = false
	squad.Stats.TotalMeetings++

	if err := s.squads.Update(ctx, squad); err != nil {
		return nil, err
	}

	slog.Info("roulette decision", "squad_id", squadID, "restaurant", winner.RestaurantName)
	return squad, nil
}
