package repository

import (
	"context"
	"errors"

	"foodbridge/internal/models"

	"gorm.io/gorm"
)

// DonationRepository defines the interface for donation data operations
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	GetByID(ctx context.Context, id uint) (*models.Donation, error)
	ListAvailable(ctx context.Context, limit, offset int) ([]models.Donation, error)
	ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error)
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.Donation, error)
	ClaimAvailable(ctx context.Context, id, recipientID uint) (bool, error)
	ReserveAvailable(ctx context.Context, id, recipientID uint) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status models.DonationStatus) error
	Relist(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// donationRepository implements DonationRepository
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	if err := r.db.WithContext(ctx).Create(donation).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	var donation models.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Recipient").
		First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Donation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &donation, nil
}

func (r *donationRepository) ListAvailable(ctx context.Context, limit, offset int) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.DonationStatusAvailable).
		Preload("Donor").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&donations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return donations, nil
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID uint) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Preload("Recipient").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return donations, nil
}

func (r *donationRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Preload("Donor").
		Order("updated_at DESC").
		Find(&donations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return donations, nil
}

// ClaimAvailable atomically moves an available donation to claimed and assigns
// the recipient. The status guard in the WHERE clause is what makes concurrent
// claims safe: only one UPDATE can match the available row.
func (r *donationRepository) ClaimAvailable(ctx context.Context, id, recipientID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.DonationStatusAvailable).
		Updates(map[string]interface{}{
			"status":       models.DonationStatusClaimed,
			"recipient_id": recipientID,
		})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ReserveAvailable atomically moves an available donation to reserved for the
// recipient of an approved pickup request. Same compare-and-set shape as
// ClaimAvailable.
func (r *donationRepository) ReserveAvailable(ctx context.Context, id, recipientID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.DonationStatusAvailable).
		Updates(map[string]interface{}{
			"status":       models.DonationStatusReserved,
			"recipient_id": recipientID,
		})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *donationRepository) UpdateStatus(ctx context.Context, id uint, status models.DonationStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Relist returns a donation to the available pool and clears its recipient.
func (r *donationRepository) Relist(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Donation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.DonationStatusAvailable,
			"recipient_id": nil,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *donationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Donation{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *donationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Donation{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
