package repository

import (
	"context"
	"errors"

	"foodbridge/internal/models"

	"gorm.io/gorm"
)

// RequestRepository defines the interface for pickup request data operations
type RequestRepository interface {
	Create(ctx context.Context, request *models.PickupRequest) error
	GetByID(ctx context.Context, id uint) (*models.PickupRequest, error)
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.PickupRequest, error)
	ListIncoming(ctx context.Context, donorID uint) ([]models.PickupRequest, error)
	ListPendingForDonation(ctx context.Context, donationID uint) ([]models.PickupRequest, error)
	HasPending(ctx context.Context, donationID, recipientID uint) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status models.PickupRequestStatus) error
	RejectPendingExcept(ctx context.Context, donationID, exceptID uint) error
	CompleteApproved(ctx context.Context, donationID uint) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// requestRepository implements RequestRepository
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new pickup request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.PickupRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.PickupRequest, error) {
	var request models.PickupRequest
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Donor").
		Preload("Recipient").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pickup request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *requestRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.PickupRequest, error) {
	var requests []models.PickupRequest
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Preload("Donation").
		Preload("Donation.Donor").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// ListIncoming returns requests against any of the donor's donations.
func (r *requestRepository) ListIncoming(ctx context.Context, donorID uint) ([]models.PickupRequest, error) {
	var requests []models.PickupRequest
	if err := r.db.WithContext(ctx).
		Joins("JOIN donations ON donations.id = pickup_requests.donation_id").
		Where("donations.donor_id = ?", donorID).
		Preload("Donation").
		Preload("Recipient").
		Order("pickup_requests.created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *requestRepository) ListPendingForDonation(ctx context.Context, donationID uint) ([]models.PickupRequest, error) {
	var requests []models.PickupRequest
	if err := r.db.WithContext(ctx).
		Where("donation_id = ? AND status = ?", donationID, models.PickupRequestStatusPending).
		Preload("Recipient").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *requestRepository) HasPending(ctx context.Context, donationID, recipientID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("donation_id = ? AND recipient_id = ? AND status = ?",
			donationID, recipientID, models.PickupRequestStatusPending).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id uint, status models.PickupRequestStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RejectPendingExcept rejects every pending request for a donation other than
// the given one. Pass exceptID 0 to reject all pending requests.
func (r *requestRepository) RejectPendingExcept(ctx context.Context, donationID, exceptID uint) error {
	query := r.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("donation_id = ? AND status = ?", donationID, models.PickupRequestStatusPending)
	if exceptID != 0 {
		query = query.Where("id != ?", exceptID)
	}
	if err := query.Update("status", models.PickupRequestStatusRejected).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CompleteApproved marks the approved request for a donation as completed.
func (r *requestRepository) CompleteApproved(ctx context.Context, donationID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.PickupRequest{}).
		Where("donation_id = ? AND status = ?", donationID, models.PickupRequestStatusApproved).
		Update("status", models.PickupRequestStatusCompleted).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.PickupRequest{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *requestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PickupRequest{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
