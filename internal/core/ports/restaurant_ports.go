package ports

import (
	"context"

	"github.com/foodsquad/api/internal/core/domain"
)

// NearbyFilters are optional narrowing criteria for a nearby lookup. Zero
// values mean "no filter".
type NearbyFilters struct {
	CuisineType string
	PriceRange  string
	MinRating   float64
}

// RestaurantFinder is the geo/catalog lookup the decision engine consumes as
// a black box. FindNearby returns candidates ordered nearest-first;
// FindByCuisine returns matches ordered by rating descending, capped at limit.
type RestaurantFinder interface {
	FindNearby(ctx context.Context, lat, lon float64, radiusMeters int, filters *NearbyFilters) ([]domain.Restaurant, error)
	FindByCuisine(ctx context.Context, label string, limit int) ([]domain.Restaurant, error)
}
