package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/farmfresh/inventory-api/internal/pricing"
)

type seedProduct struct {
	productID   string
	productName string
	category    string
	quantity    int
	rate        float64
	location    string
}

var samples = []seedProduct{
	{"P1001", "Apples", "Fruits", 40, 3.5, "A1"},
	{"P1002", "Bananas", "Fruits", 60, 1.2, "A2"},
	{"P1003", "Carrots", "Vegetables", 80, 0.9, "B1"},
	{"P1004", "Spinach", "Vegetables", 25, 2.1, "B2"},
	{"P1005", "Rice 5kg", "Grocery", 30, 12.0, "C1"},
	{"P1006", "Olive Oil", "Grocery", 18, 9.75, "C2"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seeded := 0
	for _, p := range samples {
		// Derived fields go through the same calculator the API uses.
		q := pricing.Compute(p.rate, p.quantity, pricing.DiscountPercent(p.category))
		res, err := db.Exec(`
			INSERT INTO products (product_id, product_name, category, quantity, rate, location, price, total_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (product_id) DO NOTHING`,
			p.productID, p.productName, p.category, p.quantity, p.rate, p.location, q.Price, q.TotalAmount,
		)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", p.productID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
		}
	}

	log.Printf("Seeding completed: %d of %d products inserted", seeded, len(samples))
}
