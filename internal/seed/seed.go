// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"foodbridge/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumDonations int
	ShouldClean  bool
}

var foodTypes = []string{
	"Bread and pastries", "Fresh vegetables", "Fresh fruit", "Cooked meals",
	"Canned goods", "Dairy products", "Rice and grains", "Soup",
	"Sandwiches", "Baked goods", "Pasta dishes", "Salads",
}

var quantities = []string{
	"5 loaves", "10 kg", "3 crates", "20 portions", "12 cans",
	"6 litres", "15 servings", "2 boxes", "8 trays",
}

var allergenSets = []string{
	"", "gluten", "dairy", "nuts", "gluten, dairy", "eggs", "soy",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d donations...", opts.NumUsers, opts.NumDonations)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, continuing anyway...")
		}
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	donations, err := seedDonations(db, users, opts.NumDonations)
	if err != nil {
		return fmt.Errorf("seeding donations: %w", err)
	}

	if err := seedRequests(db, users, donations); err != nil {
		return fmt.Errorf("seeding requests: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents
	if err := db.Exec("DELETE FROM pickup_requests").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM donations").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM users").Error
}

func seedUsers(db *gorm.DB, count int) ([]models.User, error) {
	// One shared hash keeps seeding fast; every seeded account logs in with
	// the same development password.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!Seed"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		if len(username) > 30 {
			username = username[:30]
		}
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
			Phone:    gofakeit.Phone(),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedDonations(db *gorm.DB, users []models.User, count int) ([]models.Donation, error) {
	if len(users) == 0 {
		return nil, nil
	}

	donations := make([]models.Donation, 0, count)
	for i := 0; i < count; i++ {
		donor := users[rand.Intn(len(users))]
		donation := models.Donation{
			FoodType:       foodTypes[rand.Intn(len(foodTypes))],
			Quantity:       quantities[rand.Intn(len(quantities))],
			Description:    gofakeit.Sentence(12),
			ExpiryDate:     time.Now().Add(time.Duration(rand.Intn(240)+12) * time.Hour),
			PickupLocation: gofakeit.Street() + ", " + gofakeit.City(),
			Allergens:      allergenSets[rand.Intn(len(allergenSets))],
			Status:         models.DonationStatusAvailable,
			DonorID:        donor.ID,
		}

		// A slice of history: some donations are already claimed or done
		if rand.Intn(4) == 0 {
			recipient := users[rand.Intn(len(users))]
			if recipient.ID != donor.ID {
				donation.RecipientID = &recipient.ID
				if rand.Intn(2) == 0 {
					donation.Status = models.DonationStatusClaimed
				} else {
					donation.Status = models.DonationStatusCompleted
				}
			}
		}

		if err := db.Create(&donation).Error; err != nil {
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, nil
}

func seedRequests(db *gorm.DB, users []models.User, donations []models.Donation) error {
	for i := range donations {
		if donations[i].Status != models.DonationStatusAvailable {
			continue
		}
		// About a third of the open donations get a pending request
		if rand.Intn(3) != 0 {
			continue
		}
		recipient := users[rand.Intn(len(users))]
		if recipient.ID == donations[i].DonorID {
			continue
		}
		request := models.PickupRequest{
			DonationID:  donations[i].ID,
			RecipientID: recipient.ID,
			Status:      models.PickupRequestStatusPending,
			Message:     gofakeit.Sentence(8),
		}
		if err := db.Create(&request).Error; err != nil {
			return err
		}
	}
	return nil
}
