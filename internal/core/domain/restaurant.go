package domain

// Restaurant is a catalog entry as returned by the restaurant finder.
// Distance is meters from the query point on nearby lookups, zero otherwise.
type Restaurant struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	CuisineType  string   `json:"cuisine_type"`
	CuisineTypes []string `json:"cuisine_types,omitempty"`
	PriceRange   string   `json:"price_range"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"total_reviews"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Distance     float64  `json:"distance,omitempty"`
}
