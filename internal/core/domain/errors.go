package domain

import "errors"

var (
	ErrSquadNotFound          = errors.New("squad not found")
	ErrPollNotFound           = errors.New("poll not found")
	ErrRestaurantNotSuggested = errors.New("restaurant not in suggestions")
	ErrOptionNotFound         = errors.New("option not found")
	ErrNoActiveSession        = errors.New("no active session")
	ErrSessionActive          = errors.New("a decision session is already active")
	ErrNoSuggestions          = errors.New("session has no suggested restaurants")
	ErrPollClosed             = errors.New("poll is closed")
	ErrAlreadyVoted           = errors.New("user has already voted")
	ErrNotSquadMember         = errors.New("user is not a member of this squad")
	ErrEmptySquad             = errors.New("squad has no members")
	ErrInvalidVoteType        = errors.New("invalid vote type")
	ErrInvalidSquadType       = errors.New("invalid squad type")
	ErrInternal               = errors.New("internal server error")
)
