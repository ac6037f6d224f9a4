// Command main seeds the database with development data.
package main

import (
	"flag"
	"log"

	"foodbridge/internal/config"
	"foodbridge/internal/database"
	"foodbridge/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "number of users to create")
	numDonations := flag.Int("donations", 100, "number of donations to create")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		NumDonations: *numDonations,
		ShouldClean:  *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
