package models

import "time"

// PickupRequestStatus defines lifecycle states for pickup requests.
type PickupRequestStatus string

const (
	// PickupRequestStatusPending indicates the request is awaiting the donor's review.
	PickupRequestStatusPending PickupRequestStatus = "pending"
	// PickupRequestStatusApproved indicates the donor accepted the request.
	PickupRequestStatusApproved PickupRequestStatus = "approved"
	// PickupRequestStatusRejected indicates the donor declined the request.
	PickupRequestStatusRejected PickupRequestStatus = "rejected"
	// PickupRequestStatusCompleted indicates the pickup happened.
	PickupRequestStatusCompleted PickupRequestStatus = "completed"
)

// PickupRequest is a recipient's expressed interest in a specific donation.
type PickupRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	DonationID  uint                `gorm:"not null;index" json:"donation_id"`
	RecipientID uint                `gorm:"not null;index" json:"recipient_id"`
	Status      PickupRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Message     string              `gorm:"type:text" json:"message"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relationships
	Donation  Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	Recipient User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (PickupRequest) TableName() string {
	return "pickup_requests"
}
