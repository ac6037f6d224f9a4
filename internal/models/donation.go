package models

import "time"

// DonationStatus represents the lifecycle state of a donation.
type DonationStatus string

const (
	// DonationStatusAvailable indicates the donation is listed and unassigned.
	DonationStatusAvailable DonationStatus = "available"
	// DonationStatusClaimed indicates a recipient took the donation directly.
	DonationStatusClaimed DonationStatus = "claimed"
	// DonationStatusReserved indicates the donation is held for an approved pickup request.
	DonationStatusReserved DonationStatus = "reserved"
	// DonationStatusCompleted indicates the food was picked up.
	DonationStatusCompleted DonationStatus = "completed"
	// DonationStatusCancelled indicates the donor withdrew the listing.
	DonationStatusCancelled DonationStatus = "cancelled"
)

// donationTransitions is the set of legal status moves. completed is terminal;
// cancelled donations can be relisted.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusAvailable: {DonationStatusClaimed, DonationStatusReserved, DonationStatusCancelled},
	DonationStatusClaimed:   {DonationStatusCompleted, DonationStatusCancelled, DonationStatusAvailable},
	DonationStatusReserved:  {DonationStatusCompleted, DonationStatusCancelled, DonationStatusAvailable},
	DonationStatusCancelled: {DonationStatusAvailable},
	DonationStatusCompleted: {},
}

// ParseDonationStatus converts a raw string into a DonationStatus.
// The second return value is false for any string outside the enum.
func ParseDonationStatus(s string) (DonationStatus, bool) {
	status := DonationStatus(s)
	if _, ok := donationTransitions[status]; !ok {
		return "", false
	}
	return status, true
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Donation is a listed unit of surplus food offered by a donor.
type Donation struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FoodType       string         `gorm:"size:120;not null" json:"food_type"`
	Quantity       string         `gorm:"size:120;not null" json:"quantity"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	ExpiryDate     time.Time      `gorm:"not null" json:"expiry_date"`
	PickupLocation string         `gorm:"size:255;not null" json:"pickup_location"`
	Allergens      string         `gorm:"size:255" json:"allergens,omitempty"`
	Images         []string       `gorm:"serializer:json" json:"images"`
	Status         DonationStatus `gorm:"type:varchar(20);not null;default:'available';index:idx_donations_status" json:"status"`
	DonorID        uint           `gorm:"not null;index" json:"donor_id"`
	RecipientID    *uint          `gorm:"index" json:"recipient_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Relationships
	Donor     User  `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (Donation) TableName() string {
	return "donations"
}
