package services

import (
	"github.com/foodsquad/api/internal/core/domain"
)

// Budget defaults applied when a member never set the corresponding bound.
const (
	defaultBudgetMin = 0
	defaultBudgetMax = 1000
)

// Price bucket mapping in local currency units. Unmapped buckets count as
// moderate.
var priceByRange = map[string]int{
	"budget":    100,
	"moderate":  200,
	"expensive": 400,
}

const defaultPrice = 200

func priceForRange(priceRange string) int {
	if price, ok := priceByRange[priceRange]; ok {
		return price
	}
	return defaultPrice
}

// PreferenceProfile is the merged filter set of a whole squad: the combined
// budget window, the union of cuisine preferences and the centroid of all
// member locations.
type PreferenceProfile struct {
	BudgetMin   int
	BudgetMax   int
	Cuisines    []string
	CentroidLat float64
	CentroidLon float64
}

// AggregatePreferences merges every member's preferences into one profile.
// The budget window spans the lowest minimum to the highest maximum; an empty
// cuisine union means no cuisine restriction.
func AggregatePreferences(members []domain.Member) (PreferenceProfile, error) {
	if len(members) == 0 {
		return PreferenceProfile{}, domain.ErrEmptySquad
	}

	profile := PreferenceProfile{}
	seen := make(map[string]bool)
	var sumLat, sumLon float64

	for i, m := range members {
		budgetMin := m.Preferences.BudgetMin
		if budgetMin == 0 {
			budgetMin = defaultBudgetMin
		}
		budgetMax := m.Preferences.BudgetMax
		if budgetMax == 0 {
			budgetMax = defaultBudgetMax
		}
		if i == 0 || budgetMin < profile.BudgetMin {
			profile.BudgetMin = budgetMin
		}
		if i == 0 || budgetMax > profile.BudgetMax {
			profile.BudgetMax = budgetMax
		}

		for _, cuisine := range m.Preferences.CuisinePreferences {
			if !seen[cuisine] {
				seen[cuisine] = true
				profile.Cuisines = append(profile.Cuisines, cuisine)
			}
		}

		sumLat += m.CurrentLocation.Lat()
		sumLon += m.CurrentLocation.Lon()
	}

	profile.CentroidLat = sumLat / float64(len(members))
	profile.CentroidLon = sumLon / float64(len(members))
	return profile, nil
}

// AllowsCuisine reports whether a restaurant's cuisine passes the merged
// allow-list. An empty list allows everything.
func (p PreferenceProfile) AllowsCuisine(cuisine string) bool {
	if len(p.Cuisines) == 0 {
		return true
	}
	for _, c := range p.Cuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}

// AllowsPrice reports whether a restaurant's price bucket falls inside the
// combined budget window.
func (p PreferenceProfile) AllowsPrice(priceRange string) bool {
	price := priceForRange(priceRange)
	return price >= p.BudgetMin && price <= p.BudgetMax
}
