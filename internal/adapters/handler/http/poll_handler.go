package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foodsquad/api/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	SquadID  uuid.UUID `json:"squad_id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SquadID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "squad id is required")
		return
	}
	if len(req.Options) == 0 {
		respondError(w, http.StatusBadRequest, "at least one option is required")
		return
	}

	poll, err := h.service.Create(r.Context(), userID, ports.CreatePollInput{
		SquadID:  req.SquadID,
		Question: req.Question,
		Options:  req.Options,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "", poll)
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	poll, err := h.service.Get(r.Context(), pollID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", poll)
}

type votePollRequest struct {
	OptionID uuid.UUID `json:"option_id"`
}

func (h *PollHandler) VotePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	userID, ok := userIDFromContext(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req votePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OptionID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "option id is required")
		return
	}

	poll, err := h.service.Vote(r.Context(), pollID, req.OptionID, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Vote cast", poll)
}

func (h *PollHandler) ResolvePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	poll, recommendations, err := h.service.Resolve(r.Context(), pollID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, "Poll completed! Winner: "+poll.Winner, map[string]any{
		"poll":            poll,
		"winner":          poll.Winner,
		"recommendations": recommendations,
	})
}
