package domain

import (
	"time"

	"github.com/google/uuid"
)

type SquadType string

const (
	SquadCasual          SquadType = "casual"
	SquadSpecialOccasion SquadType = "special_occasion"
	SquadBusiness        SquadType = "business"
	SquadFamily          SquadType = "family"
)

// ParseSquadType validates a squad type string. An empty string falls back to
// the casual default.
func ParseSquadType(s string) (SquadType, error) {
	switch SquadType(s) {
	case SquadCasual, SquadSpecialOccasion, SquadBusiness, SquadFamily:
		return SquadType(s), nil
	case "":
		return SquadCasual, nil
	}
	return "", ErrInvalidSquadType
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func (p GeoPoint) Lon() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Lat() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Preferences holds one member's dining preferences. Zero values mean the
// member never set the field.
type Preferences struct {
	BudgetMin           int      `bson:"budget_min,omitempty" json:"budget_min,omitempty"`
	BudgetMax           int      `bson:"budget_max,omitempty" json:"budget_max,omitempty"`
	CuisinePreferences  []string `bson:"cuisine_preferences,omitempty" json:"cuisine_preferences,omitempty"`
	DietaryRestrictions []string `bson:"dietary_restrictions,omitempty" json:"dietary_restrictions,omitempty"`
	MaxDistance         int      `bson:"max_distance,omitempty" json:"max_distance,omitempty"`
	Atmosphere          string   `bson:"atmosphere,omitempty" json:"atmosphere,omitempty"`
}

// Member is a user's membership in a squad. Members are owned by their squad
// and have no independent lifecycle.
type Member struct {
	UserID          uuid.UUID   `bson:"user_id" json:"user_id"`
	Username        string      `bson:"username" json:"username"`
	Preferences     Preferences `bson:"preferences" json:"preferences"`
	CurrentLocation GeoPoint    `bson:"current_location" json:"current_location"`
	JoinedAt        time.Time   `bson:"joined_at" json:"joined_at"`
}

// Squad is the aggregate root for the group decision engine. The active
// session, stats and history are embedded so every mutation is a single
// document write.
type Squad struct {
	ID             uuid.UUID        `bson:"_id" json:"id"`
	Name           string           `bson:"name" json:"name"`
	SquadType      SquadType        `bson:"squad_type" json:"squad_type"`
	CreatorID      uuid.UUID        `bson:"creator_id" json:"creator_id"`
	Members        []Member         `bson:"members" json:"members"`
	CurrentSession *DecisionSession `bson:"current_session,omitempty" json:"current_session,omitempty"`
	Stats          SquadStats       `bson:"squad_stats" json:"squad_stats"`
	MeetingHistory []Meeting        `bson:"meeting_history" json:"meeting_history"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `bson:"updated_at" json:"updated_at"`
}

func (s *Squad) HasMember(userID uuid.UUID) bool {
	for _, m := range s.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Squad) HasActiveSession() bool {
	return s.CurrentSession != nil && s.CurrentSession.IsActive
}

// MemberIDs returns the user ids of all members, in join order.
func (s *Squad) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Members))
	for i, m := range s.Members {
		ids[i] = m.UserID
	}
	return ids
}
