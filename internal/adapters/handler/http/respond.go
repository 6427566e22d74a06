package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodsquad/api/internal/core/domain"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiResponse{Success: true, Message: message, Data: data}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: false, Message: message}) //nolint:errcheck
}

// respondDomainError maps a domain error to its HTTP status.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSquadNotFound),
		errors.Is(err, domain.ErrPollNotFound),
		errors.Is(err, domain.ErrRestaurantNotSuggested),
		errors.Is(err, domain.ErrOptionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNoActiveSession),
		errors.Is(err, domain.ErrSessionActive),
		errors.Is(err, domain.ErrNoSuggestions),
		errors.Is(err, domain.ErrPollClosed),
		errors.Is(err, domain.ErrEmptySquad):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidVoteType),
		errors.Is(err, domain.ErrInvalidSquadType):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyVoted):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotSquadMember):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
