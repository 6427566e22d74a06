package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	handler "github.com/foodsquad/api/internal/adapters/handler/http"
	mongorepo "github.com/foodsquad/api/internal/adapters/repository/mongo"
	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
	"github.com/foodsquad/api/internal/core/services"
)

// stubFinder stands in for the restaurant catalog so the flow tests only
// exercise the engine and its mongo persistence.
type stubFinder struct {
	nearby    []domain.Restaurant
	byCuisine []domain.Restaurant
}

func (f *stubFinder) FindNearby(_ context.Context, _, _ float64, _ int, _ *ports.NearbyFilters) ([]domain.Restaurant, error) {
	return f.nearby, nil
}

func (f *stubFinder) FindByCuisine(_ context.Context, _ string, limit int) ([]domain.Restaurant, error) {
	if limit < len(f.byCuisine) {
		return f.byCuisine[:limit], nil
	}
	return f.byCuisine, nil
}

type TestApp struct {
	Server         *httptest.Server
	Client         *stdhttp.Client
	Finder         *stubFinder
	MongoContainer testcontainers.Container

	disconnect func()
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()

	mongoContainer, mongoURI, err := setupMongoContainer(ctx)
	require.NoError(t, err)

	db, err := mongorepo.Connect(ctx, mongoURI, "foodsquad_test")
	require.NoError(t, err)
	require.NoError(t, mongorepo.EnsureIndexes(ctx, db))

	squadRepo := mongorepo.NewSquadRepository(db)
	pollRepo := mongorepo.NewPollRepository(db)
	finder := &stubFinder{}

	squadSvc := services.NewSquadService(squadRepo)
	sessionSvc := services.NewSessionService(squadRepo, finder, rand.New(rand.NewSource(1)))
	pollSvc := services.NewPollService(pollRepo, squadRepo, finder)

	router := handler.NewHandler(
		handler.NewSquadHandler(squadSvc, sessionSvc),
		handler.NewPollHandler(pollSvc),
		handler.NewRestaurantHandler(finder),
		[]byte(testJWTSecret),
	)
	server := httptest.NewServer(router)

	return &TestApp{
		Server:         server,
		Client:         server.Client(),
		Finder:         finder,
		MongoContainer: mongoContainer,
		disconnect: func() {
			db.Client().Disconnect(context.Background()) //nolint:errcheck
		},
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.disconnect()
	if err := app.MongoContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) do(t *testing.T, method, path, token string, payload any) (int, apiEnvelope) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := stdhttp.NewRequest(method, app.Server.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func decodeData(t *testing.T, envelope apiEnvelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

func kadikoySpots() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: 1, Name: "Ciya Sofrasi", CuisineType: "turkish", PriceRange: "moderate", Rating: 4.7, Latitude: 40.9893, Longitude: 29.0256, Distance: 150},
		{ID: 2, Name: "Fellini Pizza", CuisineType: "pizza", PriceRange: "moderate", Rating: 4.2, Latitude: 40.9910, Longitude: 29.0289, Distance: 300},
		{ID: 3, Name: "Sushico", CuisineType: "sushi", PriceRange: "moderate", Rating: 4.0, Latitude: 40.9922, Longitude: 29.0312, Distance: 450},
	}
}

// TestSquadDecisionFlow walks the whole lifecycle: create squad, start a
// session, vote, finalize, check stats and history.
func TestSquadDecisionFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	app.Finder.nearby = kadikoySpots()

	creatorID := uuid.New()
	memberID := uuid.New()
	creatorToken := tokenForUser(t, creatorID)
	memberToken := tokenForUser(t, memberID)

	// Step 1: create the squad.
	status, envelope := app.do(t, "POST", "/api/squads", creatorToken, map[string]any{
		"name":      "Lunch Crew",
		"username":  "ayse",
		"latitude":  40.9890,
		"longitude": 29.0260,
		"members": []map[string]any{
			{"user_id": memberID, "username": "mehmet", "latitude": 40.9920, "longitude": 29.0300},
		},
	})
	require.Equal(t, stdhttp.StatusCreated, status)

	var squad domain.Squad
	decodeData(t, envelope, &squad)
	require.NotEqual(t, uuid.Nil, squad.ID)
	require.Len(t, squad.Members, 2)

	// Step 2: start the decision session.
	status, envelope = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/start", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)
	decodeData(t, envelope, &squad)
	require.NotNil(t, squad.CurrentSession)
	require.Len(t, squad.CurrentSession.SuggestedRestaurants, 3)

	// Starting again while one is running must fail.
	status, _ = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/start", squad.ID), creatorToken, nil)
	assert.Equal(t, stdhttp.StatusBadRequest, status)

	// Step 3: both members vote. Super like outweighs the upvote.
	status, _ = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/vote", squad.ID), creatorToken, map[string]any{
		"restaurant_id": 2, "vote_type": "super_like",
	})
	require.Equal(t, stdhttp.StatusOK, status)

	status, _ = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/vote", squad.ID), memberToken, map[string]any{
		"restaurant_id": 1, "vote_type": "upvote",
	})
	require.Equal(t, stdhttp.StatusOK, status)

	// Voting on a restaurant outside the suggestion list is rejected.
	status, _ = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/vote", squad.ID), memberToken, map[string]any{
		"restaurant_id": 99, "vote_type": "upvote",
	})
	assert.Equal(t, stdhttp.StatusNotFound, status)

	// Step 4: finalize and verify the winner.
	status, envelope = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/finalize", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)
	assert.Contains(t, envelope.Message, "Fellini Pizza")

	var result struct {
		Decision domain.FinalDecision `json:"decision"`
		Stats    domain.SquadStats    `json:"stats"`
	}
	decodeData(t, envelope, &result)
	assert.Equal(t, int64(2), result.Decision.RestaurantID)
	assert.Equal(t, domain.DecisionVoting, result.Decision.DecisionMethod)
	assert.Equal(t, 1, result.Stats.TotalMeetings)
	require.NotNil(t, result.Stats.FavoriteRestaurant)
	assert.Equal(t, "Fellini Pizza", result.Stats.FavoriteRestaurant.RestaurantName)

	// Step 5: the decision is persisted on the squad document.
	status, envelope = app.do(t, "GET", fmt.Sprintf("/api/squads/%s", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)
	decodeData(t, envelope, &squad)
	assert.False(t, squad.CurrentSession.IsActive)
	require.Len(t, squad.MeetingHistory, 1)
	assert.Equal(t, "Fellini Pizza", squad.MeetingHistory[0].RestaurantName)
	assert.Len(t, squad.MeetingHistory[0].Attendees, 2)

	// Step 6: squads list for the second member includes this one.
	status, envelope = app.do(t, "GET", "/api/squads/my", memberToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)
	var squads []domain.Squad
	decodeData(t, envelope, &squads)
	require.Len(t, squads, 1)
	assert.Equal(t, squad.ID, squads[0].ID)
}

func TestFoodRouletteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	app.Finder.nearby = kadikoySpots()

	creatorToken := tokenForUser(t, uuid.New())

	status, envelope := app.do(t, "POST", "/api/squads", creatorToken, map[string]any{
		"name": "Roulette Crew", "username": "deniz", "latitude": 40.99, "longitude": 29.03,
	})
	require.Equal(t, stdhttp.StatusCreated, status)
	var squad domain.Squad
	decodeData(t, envelope, &squad)

	status, _ = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/start", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)

	status, envelope = app.do(t, "POST", fmt.Sprintf("/api/squads/%s/session/roulette", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)

	var decision domain.FinalDecision
	decodeData(t, envelope, &decision)
	assert.Equal(t, domain.DecisionRoulette, decision.DecisionMethod)

	// Roulette counts the meeting but records no history entry.
	status, envelope = app.do(t, "GET", fmt.Sprintf("/api/squads/%s", squad.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)
	decodeData(t, envelope, &squad)
	assert.Equal(t, 1, squad.Stats.TotalMeetings)
	assert.Empty(t, squad.MeetingHistory)
	assert.Nil(t, squad.Stats.FavoriteRestaurant)
}

// TestPollFlow tests the lifecycle: create poll -> vote -> duplicate vote
// rejected -> resolve with recommendations.
func TestPollFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)
	app.Finder.byCuisine = []domain.Restaurant{
		{ID: 10, Name: "Borsam Tas Firin", CuisineType: "kebab", Rating: 4.5},
		{ID: 11, Name: "Durumzade", CuisineType: "kebab", Rating: 4.2},
	}

	creatorID := uuid.New()
	memberID := uuid.New()
	creatorToken := tokenForUser(t, creatorID)
	memberToken := tokenForUser(t, memberID)

	status, envelope := app.do(t, "POST", "/api/squads", creatorToken, map[string]any{
		"name": "Poll Crew", "username": "ayse", "latitude": 40.99, "longitude": 29.03,
		"members": []map[string]any{
			{"user_id": memberID, "username": "mehmet", "latitude": 40.99, "longitude": 29.03},
		},
	})
	require.Equal(t, stdhttp.StatusCreated, status)
	var squad domain.Squad
	decodeData(t, envelope, &squad)

	// Outsiders cannot open polls for the squad.
	status, _ = app.do(t, "POST", "/api/polls", tokenForUser(t, uuid.New()), map[string]any{
		"squad_id": squad.ID, "options": []string{"Kebab"},
	})
	assert.Equal(t, stdhttp.StatusUnauthorized, status)

	status, envelope = app.do(t, "POST", "/api/polls", creatorToken, map[string]any{
		"squad_id": squad.ID,
		"options":  []string{"Kebab", "Pizza", "Sushi"},
	})
	require.Equal(t, stdhttp.StatusCreated, status)

	var poll domain.Poll
	decodeData(t, envelope, &poll)
	require.Len(t, poll.Options, 3)
	assert.Equal(t, "Where should we eat?", poll.Question)

	status, _ = app.do(t, "POST", fmt.Sprintf("/api/polls/%s/vote", poll.ID), creatorToken, map[string]any{
		"option_id": poll.Options[0].ID,
	})
	require.Equal(t, stdhttp.StatusOK, status)

	status, _ = app.do(t, "POST", fmt.Sprintf("/api/polls/%s/vote", poll.ID), memberToken, map[string]any{
		"option_id": poll.Options[0].ID,
	})
	require.Equal(t, stdhttp.StatusOK, status)

	// One vote per user, across all options.
	status, _ = app.do(t, "POST", fmt.Sprintf("/api/polls/%s/vote", poll.ID), creatorToken, map[string]any{
		"option_id": poll.Options[1].ID,
	})
	assert.Equal(t, stdhttp.StatusConflict, status)

	status, envelope = app.do(t, "POST", fmt.Sprintf("/api/polls/%s/resolve", poll.ID), creatorToken, nil)
	require.Equal(t, stdhttp.StatusOK, status)

	var resolved struct {
		Poll            domain.Poll         `json:"poll"`
		Winner          string              `json:"winner"`
		Recommendations []domain.Restaurant `json:"recommendations"`
	}
	decodeData(t, envelope, &resolved)
	assert.Equal(t, "Kebab", resolved.Winner)
	assert.Equal(t, domain.PollCompleted, resolved.Poll.Status)
	require.Len(t, resolved.Recommendations, 2)
	assert.Equal(t, "Borsam Tas Firin", resolved.Recommendations[0].Name)

	// A completed poll rejects further votes.
	status, _ = app.do(t, "POST", fmt.Sprintf("/api/polls/%s/vote", poll.ID), tokenForUser(t, uuid.New()), map[string]any{
		"option_id": poll.Options[2].ID,
	})
	assert.Equal(t, stdhttp.StatusBadRequest, status)
}

func TestAuthRequired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Get(app.Server.URL + "/api/squads/my")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)

	req, err := stdhttp.NewRequest("GET", app.Server.URL+"/api/squads/my", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp2, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, stdhttp.StatusUnauthorized, resp2.StatusCode)
}
