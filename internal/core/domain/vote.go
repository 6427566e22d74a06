package domain

import (
	"time"

	"github.com/google/uuid"
)

// VoteType is the closed set of vote channels available during a session.
type VoteType string

const (
	VoteUp    VoteType = "upvote"
	VoteDown  VoteType = "downvote"
	VoteSuper VoteType = "super_like"
)

func ParseVoteType(s string) (VoteType, error) {
	switch VoteType(s) {
	case VoteUp, VoteDown, VoteSuper:
		return VoteType(s), nil
	}
	return "", ErrInvalidVoteType
}

// VoteRecord is a single (user, timestamp) vote entry.
type VoteRecord struct {
	UserID    uuid.UUID `bson:"user_id" json:"user_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// VoteTally holds the three vote channels of one suggested restaurant. A user
// appears in at most one of the three lists at any time.
type VoteTally struct {
	Upvotes    []VoteRecord `bson:"upvotes" json:"upvotes"`
	Downvotes  []VoteRecord `bson:"downvotes" json:"downvotes"`
	SuperLikes []VoteRecord `bson:"super_likes" json:"super_likes"`
}

// Score weights. Super-likes are the strongest positive signal, downvotes the
// only negative one.
const (
	upvoteWeight    = 2
	downvoteWeight  = 1
	superLikeWeight = 3
)

// RecordVote registers userID's vote on this restaurant. Any earlier vote by
// the same user is removed first, so a later vote silently overrides it;
// re-voting the same type re-stamps the timestamp. The total score is
// recomputed from the resulting tallies.
func (r *SuggestedRestaurant) RecordVote(userID uuid.UUID, vote VoteType, at time.Time) error {
	r.Votes.Upvotes = withoutUser(r.Votes.Upvotes, userID)
	r.Votes.Downvotes = withoutUser(r.Votes.Downvotes, userID)
	r.Votes.SuperLikes = withoutUser(r.Votes.SuperLikes, userID)

	record := VoteRecord{UserID: userID, Timestamp: at}
	switch vote {
	case VoteUp:
		r.Votes.Upvotes = append(r.Votes.Upvotes, record)
	case VoteDown:
		r.Votes.Downvotes = append(r.Votes.Downvotes, record)
	case VoteSuper:
		r.Votes.SuperLikes = append(r.Votes.SuperLikes, record)
	default:
		return ErrInvalidVoteType
	}

	r.TotalScore = upvoteWeight*len(r.Votes.Upvotes) -
		downvoteWeight*len(r.Votes.Downvotes) +
		superLikeWeight*len(r.Votes.SuperLikes)
	return nil
}

func withoutUser(records []VoteRecord, userID uuid.UUID) []VoteRecord {
	kept := records[:0]
	for _, rec := range records {
		if rec.UserID != userID {
			kept = append(kept, rec)
		}
	}
	return kept
}
