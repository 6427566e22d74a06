package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type SquadHandler struct {
	squads   ports.SquadService
	sessions ports.SessionService
}

func NewSquadHandler(squads ports.SquadService, sessions ports.SessionService) *SquadHandler {
	return &SquadHandler{
		squads:   squads,
		sessions: sessions,
	}
}

type memberRequest struct {
	UserID      uuid.UUID          `json:"user_id"`
	Username    string             `json:"username"`
	Preferences domain.Preferences `json:"preferences"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
}

type createSquadRequest struct {
	Name      string          `json:"name"`
	SquadType string          `json:"squad_type"`
	Username  string          `json:"username"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Members   []memberRequest `json:"members"`
}

func (h *SquadHandler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req createSquadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "squad name is required")
		return
	}

	creator := ports.MemberInput{
		UserID:    userID,
		Username:  req.Username,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	input := ports.CreateSquadInput{
		Name:      req.Name,
		SquadType: req.SquadType,
	}
	for _, m := range req.Members {
		input.Members = append(input.Members, ports.MemberInput{
			UserID:      m.UserID,
			Username:    m.Username,
			Preferences: m.Preferences,
			Latitude:    m.Latitude,
			Longitude:   m.Longitude,
		})
	}

	squad, err := h.squads.Create(r.Context(), creator, input)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, "Squad created successfully", squad)
}

func (h *SquadHandler) GetSquad(w http.ResponseWriter, r *http.Request) {
	squadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid squad id")
		return
	}

	squad, err := h.squads.Get(r.Context(), squadID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", squad)
}

func (h *SquadHandler) ListMySquads(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	squads, err := h.squads.ListForUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", squads)
}

func (h *SquadHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	squadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid squad id")
		return
	}

	squad, err := h.sessions.StartSession(r.Context(), squadID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Decision session started. Vote now!", squad)
}

type sessionVoteRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	VoteType     string `json:"vote_type"`
}

func (h *SquadHandler) Vote(w http.ResponseWriter, r *http.Request) {
	squadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid squad id")
		return
	}

	userID, ok := userIDFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req sessionVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RestaurantID == 0 || req.VoteType == "" {
		respondError(w, http.StatusBadRequest, "restaurant id and vote type are required")
		return
	}

	squad, err := h.sessions.Vote(r.Context(), ports.SessionVoteInput{
		SquadID:      squadID,
		RestaurantID: req.RestaurantID,
		UserID:       userID,
		VoteType:     req.VoteType,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Vote recorded", squad.CurrentSession.SuggestedRestaurants)
}

func (h *SquadHandler) FinalizeDecision(w http.ResponseWriter, r *http.Request) {
	squadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid squad id")
		return
	}

	squad, err := h.sessions.FinalizeDecision(r.Context(), squadID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	decision := squad.CurrentSession.FinalDecision
	respondJSON(w, http.StatusOK, "Decision made! Going to "+decision.RestaurantName, map[string]any{
		"decision": decision,
		"stats":    squad.Stats,
	})
}

func (h *SquadHandler) FoodRoulette(w http.ResponseWriter, r *http.Request) {
	squadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid squad id")
		return
	}

	squad, err := h.sessions.FoodRoulette(r.Context(), squadID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	decision := squad.CurrentSession.FinalDecision
	respondJSON(w, http.StatusOK, "Roulette says: "+decision.RestaurantName+"!", decision)
}
