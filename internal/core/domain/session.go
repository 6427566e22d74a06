package domain

import "time"

type DecisionMethod string

const (
	DecisionVoting      DecisionMethod = "voting"
	DecisionRoulette    DecisionMethod = "roulette"
	DecisionAdminChoice DecisionMethod = "admin_choice"
)

// DecisionSession is a squad's active round of restaurant voting. A squad has
// at most one, embedded in its document; it is never persisted on its own.
type DecisionSession struct {
	IsActive             bool                  `bson:"is_active" json:"is_active"`
	StartedAt            time.Time             `bson:"started_at" json:"started_at"`
	DecisionDeadline     time.Time             `bson:"decision_deadline" json:"decision_deadline"`
	SuggestedRestaurants []SuggestedRestaurant `bson:"suggested_restaurants" json:"suggested_restaurants"`
	FinalDecision        *FinalDecision        `bson:"final_decision,omitempty" json:"final_decision,omitempty"`
}

// SuggestedRestaurant is one candidate surfaced for a session, carrying its
// own vote tallies.
type SuggestedRestaurant struct {
	RestaurantID         int64     `bson:"restaurant_id" json:"restaurant_id"`
	RestaurantName       string    `bson:"restaurant_name" json:"restaurant_name"`
	Location             GeoPoint  `bson:"location" json:"location"`
	Votes                VoteTally `bson:"votes" json:"votes"`
	TotalScore           int       `bson:"total_score" json:"total_score"`
	AvgDistanceToMembers float64   `bson:"avg_distance_to_members" json:"avg_distance_to_members"`
}

// FinalDecision is immutable once set; one per completed session.
type FinalDecision struct {
	RestaurantID   int64          `bson:"restaurant_id" json:"restaurant_id"`
	RestaurantName string         `bson:"restaurant_name" json:"restaurant_name"`
	DecidedAt      time.Time      `bson:"decided_at" json:"decided_at"`
	DecisionMethod DecisionMethod `bson:"decision_method" json:"decision_method"`
}

// Suggestion returns the suggested restaurant with the given id, or nil.
func (s *DecisionSession) Suggestion(restaurantID int64) *SuggestedRestaurant {
	for i := range s.SuggestedRestaurants {
		if s.SuggestedRestaurants[i].RestaurantID == restaurantID {
			return &s.SuggestedRestaurants[i]
		}
	}
	return nil
}

// TopSuggestion returns the suggestion with the highest total score. Ties are
// broken by suggestion order: the first restaurant to reach the maximum wins.
// Returns nil when the session has no suggestions.
func (s *DecisionSession) TopSuggestion() *SuggestedRestaurant {
	if len(s.SuggestedRestaurants) == 0 {
		return nil
	}
	top := &s.SuggestedRestaurants[0]
	for i := range s.SuggestedRestaurants[1:] {
		if s.SuggestedRestaurants[i+1].TotalScore > top.TotalScore {
			top = &s.SuggestedRestaurants[i+1]
		}
	}
	return top
}
