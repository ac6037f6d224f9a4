package service

import (
	"context"
	"strings"

	"foodbridge/internal/models"
	"foodbridge/internal/observability"
	"foodbridge/internal/repository"
)

// RequestService provides pickup request business logic.
type RequestService struct {
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	events       EventPublisher
}

// NewRequestService returns a new RequestService.
func NewRequestService(
	requestRepo repository.RequestRepository,
	donationRepo repository.DonationRepository,
	events EventPublisher,
) *RequestService {
	return &RequestService{
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
		events:       events,
	}
}

// CreateRequest submits a pickup request for a donation. The donation's
// current status does not gate creation; availability is enforced when the
// donor approves, where the reservation compare-and-set settles it.
func (s *RequestService) CreateRequest(ctx context.Context, recipientID, donationID uint, message string) (*models.PickupRequest, error) {
	donation, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID == recipientID {
		return nil, models.NewValidationError("You cannot request your own donation")
	}

	exists, err := s.requestRepo.HasPending(ctx, donationID, recipientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You already have a pending request for this donation")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = "I'm interested in picking this up."
	}

	request := &models.PickupRequest{
		DonationID:  donationID,
		RecipientID: recipientID,
		Status:      models.PickupRequestStatusPending,
		Message:     message,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	observability.RequestsCreated.Inc()

	result, err := s.requestRepo.GetByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	s.events.PublishToUser(ctx, donation.DonorID, EventRequestReceived, result)

	return result, nil
}

// ListMine returns the user's own pickup requests, newest first.
func (s *RequestService) ListMine(ctx context.Context, recipientID uint) ([]models.PickupRequest, error) {
	return s.requestRepo.ListByRecipient(ctx, recipientID)
}

// ListIncoming returns requests against the donor's donations.
func (s *RequestService) ListIncoming(ctx context.Context, donorID uint) ([]models.PickupRequest, error) {
	return s.requestRepo.ListIncoming(ctx, donorID)
}

// ApproveRequest lets the donor approve a pending request. Approval reserves
// the donation for the requester via compare-and-set and rejects all other
// pending requests for it.
func (s *RequestService) ApproveRequest(ctx context.Context, requestID, donorID uint) (*models.PickupRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Donation.DonorID != donorID {
		return nil, models.NewForbiddenError("You can only approve requests for your own donations")
	}
	if request.Status != models.PickupRequestStatusPending {
		return nil, models.NewConflictError("Request is not pending")
	}

	reserved, err := s.donationRepo.ReserveAvailable(ctx, request.DonationID, request.RecipientID)
	if err != nil {
		return nil, err
	}
	if !reserved {
		// Donation was claimed, cancelled or deleted since the request was made.
		return nil, models.NewConflictError("Donation is no longer available")
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, models.PickupRequestStatusApproved); err != nil {
		return nil, err
	}

	observability.RequestsResolved.WithLabelValues("approved").Inc()

	s.rejectCompetingRequests(ctx, request.DonationID, requestID)

	result, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.events.PublishToUser(ctx, request.RecipientID, EventRequestApproved, result)

	return result, nil
}

// RejectRequest lets the donor reject a pending request.
func (s *RequestService) RejectRequest(ctx context.Context, requestID, donorID uint) (*models.PickupRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Donation.DonorID != donorID {
		return nil, models.NewForbiddenError("You can only reject requests for your own donations")
	}
	if request.Status != models.PickupRequestStatusPending {
		return nil, models.NewConflictError("Request is not pending")
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, models.PickupRequestStatusRejected); err != nil {
		return nil, err
	}

	observability.RequestsResolved.WithLabelValues("rejected").Inc()

	result, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.events.PublishToUser(ctx, request.RecipientID, EventRequestRejected, result)

	return result, nil
}

// DeleteRequest lets a recipient withdraw their own request. Approved
// requests cannot be withdrawn since the donation is already reserved; the
// donor resolves those by relisting or completing the donation.
func (s *RequestService) DeleteRequest(ctx context.Context, requestID, recipientID uint) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.RecipientID != recipientID {
		return models.NewForbiddenError("You can only delete your own requests")
	}
	if request.Status == models.PickupRequestStatusApproved {
		return models.NewConflictError("Approved requests cannot be withdrawn")
	}

	return s.requestRepo.Delete(ctx, requestID)
}

// rejectCompetingRequests rejects the other pending requests for a donation
// and notifies their recipients.
func (s *RequestService) rejectCompetingRequests(ctx context.Context, donationID, approvedID uint) {
	pending, err := s.requestRepo.ListPendingForDonation(ctx, donationID)
	if err != nil {
		return
	}
	if err := s.requestRepo.RejectPendingExcept(ctx, donationID, approvedID); err != nil {
		return
	}
	for i := range pending {
		if pending[i].ID == approvedID {
			continue
		}
		observability.RequestsResolved.WithLabelValues("rejected").Inc()
		s.events.PublishToUser(ctx, pending[i].RecipientID, EventRequestRejected, pending[i])
	}
}
