package service

import (
	"context"
	"strings"
	"time"

	"foodbridge/internal/models"
	"foodbridge/internal/observability"
	"foodbridge/internal/repository"
)

// DonationService provides donation listing and lifecycle business logic.
type DonationService struct {
	donationRepo repository.DonationRepository
	requestRepo  repository.RequestRepository
	events       EventPublisher
}

// NewDonationService returns a new DonationService.
func NewDonationService(
	donationRepo repository.DonationRepository,
	requestRepo repository.RequestRepository,
	events EventPublisher,
) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		events:       events,
	}
}

// CreateDonationInput carries the fields a donor submits when listing surplus food.
type CreateDonationInput struct {
	FoodType       string    `json:"food_type"`
	Quantity       string    `json:"quantity"`
	Description    string    `json:"description"`
	ExpiryDate     time.Time `json:"expiry_date"`
	PickupLocation string    `json:"pickup_location"`
	Allergens      string    `json:"allergens"`
	Images         []string  `json:"images"`
}

func (in *CreateDonationInput) validate() error {
	if strings.TrimSpace(in.FoodType) == "" {
		return models.NewValidationError("Food type is required")
	}
	if strings.TrimSpace(in.Quantity) == "" {
		return models.NewValidationError("Quantity is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return models.NewValidationError("Description is required")
	}
	if in.ExpiryDate.IsZero() {
		return models.NewValidationError("Expiry date is required")
	}
	if strings.TrimSpace(in.PickupLocation) == "" {
		return models.NewValidationError("Pickup location is required")
	}
	return nil
}

// CreateDonation lists a new donation for the donor. New donations always
// start available.
func (s *DonationService) CreateDonation(ctx context.Context, donorID uint, input CreateDonationInput) (*models.Donation, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	donation := &models.Donation{
		FoodType:       strings.TrimSpace(input.FoodType),
		Quantity:       strings.TrimSpace(input.Quantity),
		Description:    strings.TrimSpace(input.Description),
		ExpiryDate:     input.ExpiryDate,
		PickupLocation: strings.TrimSpace(input.PickupLocation),
		Allergens:      strings.TrimSpace(input.Allergens),
		Images:         input.Images,
		Status:         models.DonationStatusAvailable,
		DonorID:        donorID,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	observability.DonationsCreated.Inc()

	return s.donationRepo.GetByID(ctx, donation.ID)
}

// GetDonation returns a single donation with donor and recipient loaded.
func (s *DonationService) GetDonation(ctx context.Context, id uint) (*models.Donation, error) {
	return s.donationRepo.GetByID(ctx, id)
}

// ListAvailable returns the newest available donations.
func (s *DonationService) ListAvailable(ctx context.Context, limit, offset int) ([]models.Donation, error) {
	return s.donationRepo.ListAvailable(ctx, limit, offset)
}

// ListByDonor returns every donation the donor has listed, any status.
func (s *DonationService) ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error) {
	return s.donationRepo.ListByDonor(ctx, donorID)
}

// ListClaims returns donations where the user is the assigned recipient.
func (s *DonationService) ListClaims(ctx context.Context, recipientID uint) ([]models.Donation, error) {
	return s.donationRepo.ListByRecipient(ctx, recipientID)
}

// ClaimDonation lets a recipient claim an available donation directly. The
// claim is a compare-and-set against the available status, so two concurrent
// claimers cannot both win. Pending pickup requests from other recipients are
// rejected as part of the claim.
func (s *DonationService) ClaimDonation(ctx context.Context, id, recipientID uint) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if donation.DonorID == recipientID {
		return nil, models.NewValidationError("You cannot claim your own donation")
	}
	if donation.Status != models.DonationStatusAvailable {
		observability.ClaimConflicts.Inc()
		return nil, models.NewConflictError("Donation is no longer available")
	}

	claimed, err := s.donationRepo.ClaimAvailable(ctx, id, recipientID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Someone else won the race between our read and the update.
		observability.ClaimConflicts.Inc()
		return nil, models.NewConflictError("Donation is no longer available")
	}

	observability.DonationsClaimed.Inc()

	s.rejectPendingRequests(ctx, id, 0)

	result, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.PublishToUser(ctx, donation.DonorID, EventDonationClaimed, result)

	return result, nil
}

// UpdateStatus moves a donation through its lifecycle. The donor and the
// assigned recipient may both perform any legal transition, so a recipient
// can back out of a claim by relisting or cancelling. Illegal transitions
// are conflicts, unknown statuses are validation errors.
func (s *DonationService) UpdateStatus(ctx context.Context, id, actorID uint, statusStr string) (*models.Donation, error) {
	next, ok := models.ParseDonationStatus(statusStr)
	if !ok {
		return nil, models.NewValidationError("Unknown donation status: " + statusStr)
	}

	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isDonor := donation.DonorID == actorID
	isRecipient := donation.RecipientID != nil && *donation.RecipientID == actorID

	if !isDonor && !isRecipient {
		return nil, models.NewForbiddenError("You are not a party to this donation")
	}

	if !donation.Status.CanTransitionTo(next) {
		return nil, models.NewConflictError(
			"Cannot change status from " + string(donation.Status) + " to " + string(next))
	}

	switch next {
	case models.DonationStatusAvailable:
		// Relisting clears the recipient assignment
		if err := s.donationRepo.Relist(ctx, id); err != nil {
			return nil, err
		}
	case models.DonationStatusClaimed, models.DonationStatusReserved:
		// The transition table permits available->claimed/reserved, but those
		// moves assign a recipient and must go through the claim or request
		// approval flows.
		return nil, models.NewConflictError("Use the claim or request approval endpoints to assign a recipient")
	default:
		if err := s.donationRepo.UpdateStatus(ctx, id, next); err != nil {
			return nil, err
		}
	}

	switch next {
	case models.DonationStatusCompleted:
		if err := s.requestRepo.CompleteApproved(ctx, id); err != nil {
			return nil, err
		}
		s.rejectPendingRequests(ctx, id, 0)
	case models.DonationStatusCancelled:
		s.rejectPendingRequests(ctx, id, 0)
	}

	observability.DonationStatusChanges.WithLabelValues(string(next)).Inc()

	result, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Tell the other party about the change
	if isDonor {
		if donation.RecipientID != nil {
			s.events.PublishToUser(ctx, *donation.RecipientID, EventDonationStatusChanged, result)
		}
	} else {
		s.events.PublishToUser(ctx, donation.DonorID, EventDonationStatusChanged, result)
	}

	return result, nil
}

// DeleteDonation removes a donation listing. Only the donor may delete, and
// any open pickup requests are rejected. An assigned recipient is notified
// that the donation is gone.
func (s *DonationService) DeleteDonation(ctx context.Context, id, donorID uint) error {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if donation.DonorID != donorID {
		return models.NewForbiddenError("You can only delete your own donations")
	}

	s.rejectPendingRequests(ctx, id, 0)

	if err := s.donationRepo.Delete(ctx, id); err != nil {
		return err
	}

	if donation.RecipientID != nil {
		s.events.PublishToUser(ctx, *donation.RecipientID, EventDonationDeleted, donation)
	}

	return nil
}

// rejectPendingRequests rejects pending requests (except exceptID, 0 for all)
// and notifies their recipients. Failures here are logged by the repository
// layer but do not abort the caller's operation.
func (s *DonationService) rejectPendingRequests(ctx context.Context, donationID, exceptID uint) {
	pending, err := s.requestRepo.ListPendingForDonation(ctx, donationID)
	if err != nil {
		return
	}
	if err := s.requestRepo.RejectPendingExcept(ctx, donationID, exceptID); err != nil {
		return
	}
	for i := range pending {
		if pending[i].ID == exceptID {
			continue
		}
		observability.RequestsResolved.WithLabelValues("rejected").Inc()
		s.events.PublishToUser(ctx, pending[i].RecipientID, EventRequestRejected, pending[i])
	}
}
