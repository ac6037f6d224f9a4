package service

import (
	"context"
	"sync"

	"foodbridge/internal/models"
)

type donationRepoStub struct {
	createFn           func(context.Context, *models.Donation) error
	getByIDFn          func(context.Context, uint) (*models.Donation, error)
	listAvailableFn    func(context.Context, int, int) ([]models.Donation, error)
	listByDonorFn      func(context.Context, uint) ([]models.Donation, error)
	listByRecipientFn  func(context.Context, uint) ([]models.Donation, error)
	claimAvailableFn   func(context.Context, uint, uint) (bool, error)
	reserveAvailableFn func(context.Context, uint, uint) (bool, error)
	updateStatusFn     func(context.Context, uint, models.DonationStatus) error
	relistFn           func(context.Context, uint) error
	deleteFn           func(context.Context, uint) error
	countFn            func(context.Context) (int64, error)
}

func (s *donationRepoStub) Create(ctx context.Context, d *models.Donation) error {
	return s.createFn(ctx, d)
}
func (s *donationRepoStub) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	return s.getByIDFn(ctx, id)
}
func (s *donationRepoStub) ListAvailable(ctx context.Context, limit, offset int) ([]models.Donation, error) {
	return s.listAvailableFn(ctx, limit, offset)
}
func (s *donationRepoStub) ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error) {
	return s.listByDonorFn(ctx, donorID)
}
func (s *donationRepoStub) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Donation, error) {
	return s.listByRecipientFn(ctx, recipientID)
}
func (s *donationRepoStub) ClaimAvailable(ctx context.Context, id, recipientID uint) (bool, error) {
	return s.claimAvailableFn(ctx, id, recipientID)
}
func (s *donationRepoStub) ReserveAvailable(ctx context.Context, id, recipientID uint) (bool, error) {
	return s.reserveAvailableFn(ctx, id, recipientID)
}
func (s *donationRepoStub) UpdateStatus(ctx context.Context, id uint, status models.DonationStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *donationRepoStub) Relist(ctx context.Context, id uint) error {
	return s.relistFn(ctx, id)
}
func (s *donationRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *donationRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

type requestRepoStub struct {
	createFn                 func(context.Context, *models.PickupRequest) error
	getByIDFn                func(context.Context, uint) (*models.PickupRequest, error)
	listByRecipientFn        func(context.Context, uint) ([]models.PickupRequest, error)
	listIncomingFn           func(context.Context, uint) ([]models.PickupRequest, error)
	listPendingForDonationFn func(context.Context, uint) ([]models.PickupRequest, error)
	hasPendingFn             func(context.Context, uint, uint) (bool, error)
	updateStatusFn           func(context.Context, uint, models.PickupRequestStatus) error
	rejectPendingExceptFn    func(context.Context, uint, uint) error
	completeApprovedFn       func(context.Context, uint) error
	deleteFn                 func(context.Context, uint) error
	countFn                  func(context.Context) (int64, error)
}

func (s *requestRepoStub) Create(ctx context.Context, r *models.PickupRequest) error {
	return s.createFn(ctx, r)
}
func (s *requestRepoStub) GetByID(ctx context.Context, id uint) (*models.PickupRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *requestRepoStub) ListByRecipient(ctx context.Context, recipientID uint) ([]models.PickupRequest, error) {
	return s.listByRecipientFn(ctx, recipientID)
}
func (s *requestRepoStub) ListIncoming(ctx context.Context, donorID uint) ([]models.PickupRequest, error) {
	return s.listIncomingFn(ctx, donorID)
}
func (s *requestRepoStub) ListPendingForDonation(ctx context.Context, donationID uint) ([]models.PickupRequest, error) {
	return s.listPendingForDonationFn(ctx, donationID)
}
func (s *requestRepoStub) HasPending(ctx context.Context, donationID, recipientID uint) (bool, error) {
	return s.hasPendingFn(ctx, donationID, recipientID)
}
func (s *requestRepoStub) UpdateStatus(ctx context.Context, id uint, status models.PickupRequestStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *requestRepoStub) RejectPendingExcept(ctx context.Context, donationID, exceptID uint) error {
	return s.rejectPendingExceptFn(ctx, donationID, exceptID)
}
func (s *requestRepoStub) CompleteApproved(ctx context.Context, donationID uint) error {
	return s.completeApprovedFn(ctx, donationID)
}
func (s *requestRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *requestRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopDonationRepo() *donationRepoStub {
	return &donationRepoStub{
		createFn:           func(context.Context, *models.Donation) error { return nil },
		getByIDFn:          func(context.Context, uint) (*models.Donation, error) { return &models.Donation{}, nil },
		listAvailableFn:    func(context.Context, int, int) ([]models.Donation, error) { return nil, nil },
		listByDonorFn:      func(context.Context, uint) ([]models.Donation, error) { return nil, nil },
		listByRecipientFn:  func(context.Context, uint) ([]models.Donation, error) { return nil, nil },
		claimAvailableFn:   func(context.Context, uint, uint) (bool, error) { return true, nil },
		reserveAvailableFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
		updateStatusFn:     func(context.Context, uint, models.DonationStatus) error { return nil },
		relistFn:           func(context.Context, uint) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		countFn:            func(context.Context) (int64, error) { return 0, nil },
	}
}

func noopRequestRepo() *requestRepoStub {
	return &requestRepoStub{
		createFn:                 func(context.Context, *models.PickupRequest) error { return nil },
		getByIDFn:                func(context.Context, uint) (*models.PickupRequest, error) { return &models.PickupRequest{}, nil },
		listByRecipientFn:        func(context.Context, uint) ([]models.PickupRequest, error) { return nil, nil },
		listIncomingFn:           func(context.Context, uint) ([]models.PickupRequest, error) { return nil, nil },
		listPendingForDonationFn: func(context.Context, uint) ([]models.PickupRequest, error) { return nil, nil },
		hasPendingFn:             func(context.Context, uint, uint) (bool, error) { return false, nil },
		updateStatusFn:           func(context.Context, uint, models.PickupRequestStatus) error { return nil },
		rejectPendingExceptFn:    func(context.Context, uint, uint) error { return nil },
		completeApprovedFn:       func(context.Context, uint) error { return nil },
		deleteFn:                 func(context.Context, uint) error { return nil },
		countFn:                  func(context.Context) (int64, error) { return 0, nil },
	}
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	UserID    uint
	EventType string
	Payload   interface{}
}

func (p *recordingPublisher) PublishToUser(_ context.Context, userID uint, eventType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{UserID: userID, EventType: eventType, Payload: payload})
}

func (p *recordingPublisher) eventsFor(eventType string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}
