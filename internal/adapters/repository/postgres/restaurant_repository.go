// Package postgres holds the relational restaurant catalog backing the
// nearby-search and recommendation lookups.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/foodsquad/api/internal/core/domain"
	"github.com/foodsquad/api/internal/core/ports"
)

type restaurantRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) ports.RestaurantFinder {
	return &restaurantRepository{db: db}
}

// haversineSQL computes the great-circle distance in meters between a
// restaurant row and the query point ($1 = lat, $2 = lon).
const haversineSQL = `
	2 * 6371000 * asin(sqrt(
		pow(sin(radians(latitude - $1) / 2), 2) +
		cos(radians($1)) * cos(radians(latitude)) *
		pow(sin(radians(longitude - $2) / 2), 2)
	))
`

func (r *restaurantRepository) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int, filters *ports.NearbyFilters) ([]domain.Restaurant, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, name, cuisine_type, cuisine_types, price_range, rating,
		       total_reviews, latitude, longitude, address, phone, distance
		FROM (
			SELECT *, ` + haversineSQL + ` AS distance
			FROM restaurants
		) nearby
		WHERE distance <= $3
	`)

	args := []any{lat, lon, radiusMeters}
	if filters != nil {
		if filters.CuisineType != "" {
			args = append(args, filters.CuisineType)
			fmt.Fprintf(&sb, " AND cuisine_type = $%d", len(args))
		}
		if filters.PriceRange != "" {
			args = append(args, filters.PriceRange)
			fmt.Fprintf(&sb, " AND price_range = $%d", len(args))
		}
		if filters.MinRating > 0 {
			args = append(args, filters.MinRating)
			fmt.Fprintf(&sb, " AND rating >= $%d", len(args))
		}
	}
	sb.WriteString(" ORDER BY distance")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby restaurants: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows, true)
}

func (r *restaurantRepository) FindByCuisine(ctx context.Context, label string, limit int) ([]domain.Restaurant, error) {
	query := `
		SELECT id, name, cuisine_type, cuisine_types, price_range, rating,
		       total_reviews, latitude, longitude, address, phone
		FROM restaurants
		WHERE cuisine_type = $1 OR $1 = ANY(cuisine_types)
		ORDER BY rating DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, label, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants by cuisine: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows, false)
}

func scanRestaurants(rows *sql.Rows, withDistance bool) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	for rows.Next() {
		var (
			rest         domain.Restaurant
			cuisineTypes pq.StringArray
			address      sql.NullString
			phone        sql.NullString
		)

		dest := []any{
			&rest.ID, &rest.Name, &rest.CuisineType, &cuisineTypes, &rest.PriceRange,
			&rest.Rating, &rest.TotalReviews, &rest.Latitude, &rest.Longitude,
			&address, &phone,
		}
		if withDistance {
			dest = append(dest, &rest.Distance)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}

		rest.CuisineTypes = cuisineTypes
		rest.Address = address.String
		rest.Phone = phone.String
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}
	return restaurants, nil
}
