package domain

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteRestaurant struct {
	RestaurantID   int64  `bson:"restaurant_id" json:"restaurant_id"`
	RestaurantName string `bson:"restaurant_name" json:"restaurant_name"`
	VisitCount     int    `bson:"visit_count" json:"visit_count"`
}

// SquadStats are cumulative counters updated when a decision is finalized.
// Decision times are pointers so a legitimate zero-minute decision is not
// confused with "never recorded".
type SquadStats struct {
	TotalMeetings        int                 `bson:"total_meetings" json:"total_meetings"`
	FavoriteRestaurant   *FavoriteRestaurant `bson:"favorite_restaurant,omitempty" json:"favorite_restaurant,omitempty"`
	AvgSpendingPerPerson float64             `bson:"avg_spending_per_person,omitempty" json:"avg_spending_per_person,omitempty"`
	FavoriteCuisine      string              `bson:"favorite_cuisine,omitempty" json:"favorite_cuisine,omitempty"`
	LongestDecisionTime  *int                `bson:"longest_decision_time,omitempty" json:"longest_decision_time,omitempty"`
	FastestDecisionTime  *int                `bson:"fastest_decision_time,omitempty" json:"fastest_decision_time,omitempty"`
}

// ApplyDecision folds one finalized decision into the stats. The favorite
// restaurant only advances when the winner matches the recorded favorite, or
// none is recorded yet; a different winner never displaces an established
// favorite.
func (st *SquadStats) ApplyDecision(restaurantID int64, restaurantName string, decisionMinutes int) {
	st.TotalMeetings++

	switch {
	case st.FavoriteRestaurant == nil:
		st.FavoriteRestaurant = &FavoriteRestaurant{
			RestaurantID:   restaurantID,
			RestaurantName: restaurantName,
			VisitCount:     1,
		}
	case st.FavoriteRestaurant.RestaurantID == restaurantID:
		st.FavoriteRestaurant.VisitCount++
	}

	if st.FastestDecisionTime == nil || decisionMinutes < *st.FastestDecisionTime {
		v := decisionMinutes
		st.FastestDecisionTime = &v
	}
	if st.LongestDecisionTime == nil || decisionMinutes > *st.LongestDecisionTime {
		v := decisionMinutes
		st.LongestDecisionTime = &v
	}
}

// Meeting is a frozen history entry appended when a decision is finalized.
type Meeting struct {
	RestaurantID   int64       `bson:"restaurant_id" json:"restaurant_id"`
	RestaurantName string      `bson:"restaurant_name" json:"restaurant_name"`
	Date           time.Time   `bson:"date" json:"date"`
	Attendees      []uuid.UUID `bson:"attendees" json:"attendees"`
	DecisionTime   int         `bson:"decision_time" json:"decision_time"`
	TotalSpent     float64     `bson:"total_spent,omitempty" json:"total_spent,omitempty"`
}
