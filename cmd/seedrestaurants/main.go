// Seeds the restaurant catalog with sample rows for local development.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type seedRestaurant struct {
	name         string
	cuisineType  string
	cuisineTypes []string
	priceRange   string
	rating       float64
	latitude     float64
	longitude    float64
	address      string
}

// Sample spots around Kadikoy, Istanbul.
var seedData = []seedRestaurant{
	{"Ciya Sofrasi", "turkish", []string{"turkish", "anatolian"}, "moderate", 4.7, 40.9893, 29.0256, "Caferaga Mah. 43"},
	{"Borsam Tas Firin", "kebab", []string{"kebab", "turkish"}, "budget", 4.5, 40.9871, 29.0301, "Caferaga Mah. 22"},
	{"Basta Street Food", "street_food", []string{"street_food"}, "budget", 4.4, 40.9902, 29.0240, "Moda Cad. 60"},
	{"Kadi Nimet Balikcilik", "seafood", []string{"seafood"}, "expensive", 4.3, 40.9886, 29.0268, "Serasker Cad. 10"},
	{"Fellini Pizza", "pizza", []string{"pizza", "italian"}, "moderate", 4.2, 40.9910, 29.0289, "Moda Cad. 120"},
	{"Sushico", "sushi", []string{"sushi", "japanese"}, "expensive", 4.0, 40.9922, 29.0312, "Bagdat Cad. 88"},
	{"Moda Kosk", "cafe", []string{"cafe", "breakfast"}, "moderate", 4.1, 40.9858, 29.0225, "Moda Sahili 5"},
	{"Walter's Coffee", "cafe", []string{"cafe"}, "moderate", 3.9, 40.9931, 29.0334, "Rasimpasa Mah. 18"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	query := `
		INSERT INTO restaurants (name, cuisine_type, cuisine_types, price_range, rating, latitude, longitude, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, r := range seedData {
		if _, err := db.Exec(query, r.name, r.cuisineType, pq.Array(r.cuisineTypes), r.priceRange, r.rating, r.latitude, r.longitude, r.address); err != nil {
			log.Fatalf("failed to seed %s: %v", r.name, err)
		}
	}

	fmt.Printf("Seeded %d restaurants.\n", len(seedData))
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
