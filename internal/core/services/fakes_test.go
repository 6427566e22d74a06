package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type fakeSquadRepo struct {
	squads  map[uuid.UUID]*domain.Squad
	updates int
}

func newFakeSquadRepo(squads ...*domain.Squad) *fakeSquadRepo {
	repo := &fakeSquadRepo{squads: make(map[uuid.UUID]*domain.Squad)}
	for _, sq := range squads {
		repo.squads[sq.ID] = sq
	}
	return repo
}

func (r *fakeSquadRepo) Save(_ context.Context, squad *domain.Squad) error {
	r.squads[squad.ID] = squad
	return nil
}

func (r *fakeSquadRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Squad, error) {
	squad, ok := r.squads[id]
	if !ok {
		return nil, domain.ErrSquadNotFound
	}
	return squad, nil
}

func (r *fakeSquadRepo) Update(_ context.Context, squad *domain.Squad) error {
	if _, ok := r.squads[squad.ID]; !ok {
		return domain.ErrSquadNotFound
	}
	r.squads[squad.ID] = squad
	r.updates++
	return nil
}

func (r *fakeSquadRepo) ListByMember(_ context.Context, userID uuid.UUID) ([]*domain.Squad, error) {
	var result []*domain.Squad
	for _, squad := range r.squads {
		if squad.HasMember(userID) {
			result = append(result, squad)
		}
	}
	return result, nil
}

type fakePollRepo struct {
	polls   map[uuid.UUID]*domain.Poll
	updates int
}

func newFakePollRepo(polls ...*domain.Poll) *fakePollRepo {
	repo := &fakePollRepo{polls: make(map[uuid.UUID]*domain.Poll)}
	for _, p := range polls {
		repo.polls[p.ID] = p
	}
	return repo
}

func (r *fakePollRepo) Save(_ context.Context, poll *domain.Poll) error {
	r.polls[poll.ID] = poll
	return nil
}

func (r *fakePollRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return poll, nil
}

func (r *fakePollRepo) Update(_ context.Context, poll *domain.Poll) error {
	if _, ok := r.polls[poll.ID]; !ok {
		return domain.ErrPollNotFound
	}
	r.polls[poll.ID] = poll
	r.updates++
	return nil
}

// fakeFinder serves canned restaurants and records the last nearby query so
// tests can assert on the centroid and radius the caller used.
type fakeFinder struct {
	nearby    []domain.Restaurant
	byCuisine []domain.Restaurant

	lastLat    float64
	lastLon    float64
	lastRadius int
	lastLabel  string
	lastLimit  int
}

func (f *fakeFinder) FindNearby(_ context.Context, lat, lon float64, radiusMeters int, _ *ports.NearbyFilters) ([]domain.Restaurant, error) {
	f.lastLat = lat
	f.lastLon = lon
	f.lastRadius = radiusMeters
	return f.nearby, nil
}

func (f *fakeFinder) FindByCuisine(_ context.Context, label string, limit int) ([]domain.Restaurant, error) {
	f.lastLabel = label
	f.lastLimit = limit
	if limit < len(f.byCuisine) {
		return f.byCuisine[:limit], nil
	}
	return f.byCuisine, nil
}
