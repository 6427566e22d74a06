package http

import (
	"net/http"
	"strconv"

	"github.com/foodsquad/api/internal/core/ports"
)

const defaultNearbyRadiusMeters = 2000

// RestaurantHandler exposes the restaurant finder directly, mainly for the
// map view.
type RestaurantHandler struct {
	finder ports.RestaurantFinder
}

func NewRestaurantHandler(finder ports.RestaurantFinder) *RestaurantHandler {
	return &RestaurantHandler{finder: finder}
}

func (h *RestaurantHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		respondError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	radius := defaultNearbyRadiusMeters
	if rad := q.Get("radius"); rad != "" {
		parsed, err := strconv.Atoi(rad)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid radius")
			return
		}
		radius = parsed
	}

	filters := &ports.NearbyFilters{
		CuisineType: q.Get("cuisine_type"),
		PriceRange:  q.Get("price_range"),
	}
	if minRating := q.Get("min_rating"); minRating != "" {
		parsed, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid min_rating")
			return
		}
		filters.MinRating = parsed
	}

	restaurants, err := h.finder.FindNearby(r.Context(), lat, lon, radius, filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", restaurants)
}
