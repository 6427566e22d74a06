package domain

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollActive    PollStatus = "active"
	PollCompleted PollStatus = "completed"
)

// PollTTL is how long an unfinished poll stays alive. Enforced by the storage
// layer's TTL index and re-checked lazily on read.
const PollTTL = time.Hour

type PollOption struct {
	ID       uuid.UUID `bson:"id" json:"id"`
	FoodType string    `bson:"food_type" json:"food_type"`
	Votes    int       `bson:"votes" json:"votes"`
}

// Poll is a lightweight single-question decision flow, independent of the
// full session machinery but scoped to the same squad membership.
type Poll struct {
	ID        uuid.UUID    `bson:"_id" json:"id"`
	SquadID   uuid.UUID    `bson:"squad_id" json:"squad_id"`
	CreatorID uuid.UUID    `bson:"creator_id" json:"creator_id"`
	Question  string       `bson:"question" json:"question"`
	Options   []PollOption `bson:"options" json:"options"`
	Voters    []uuid.UUID  `bson:"voters" json:"voters"`
	Status    PollStatus   `bson:"status" json:"status"`
	Winner    string       `bson:"winner,omitempty" json:"winner,omitempty"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
}

// Expired reports whether an active poll has outlived its window. Completed
// polls never expire through this path.
func (p *Poll) Expired(now time.Time) bool {
	return p.Status == PollActive && now.Sub(p.CreatedAt) >= PollTTL
}

func (p *Poll) HasVoted(userID uuid.UUID) bool {
	for _, v := range p.Voters {
		if v == userID {
			return true
		}
	}
	return false
}

// Option returns the option with the given id, or nil.
func (p *Poll) Option(optionID uuid.UUID) *PollOption {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return &p.Options[i]
		}
	}
	return nil
}

// CastVote registers a single vote. One vote per user for the lifetime of the
// poll; there is no vote change or revocation.
func (p *Poll) CastVote(optionID, userID uuid.UUID) error {
	if p.Status != PollActive {
		return ErrPollClosed
	}
	if p.HasVoted(userID) {
		return ErrAlreadyVoted
	}
	opt := p.Option(optionID)
	if opt == nil {
		return ErrOptionNotFound
	}
	opt.Votes++
	p.Voters = append(p.Voters, userID)
	return nil
}

// Resolve transitions the poll to completed and fixes the winner: the first
// option in list order with the strictly greatest vote count. Idempotent; once
// set the winner is never recomputed.
func (p *Poll) Resolve() {
	if p.Status == PollCompleted {
		return
	}
	p.Status = PollCompleted
	if p.Winner != "" {
		return
	}

	max := -1
	for _, opt := range p.Options {
		if opt.Votes > max {
			max = opt.Votes
			p.Winner = opt.FoodType
		}
	}
}
