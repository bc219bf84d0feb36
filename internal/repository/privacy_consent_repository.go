package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// PrivacyConsentRepository defines privacy consent persistence operations.
type PrivacyConsentRepository interface {
	Create(ctx context.Context, consent *model.UserPrivacyConsent) error
	Update(ctx context.Context, consent *model.UserPrivacyConsent) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPrivacyConsent, error)
}

type privacyConsentRepository struct {
	db *gorm.DB
}

// NewPrivacyConsentRepository creates a new privacy consent repository.
func NewPrivacyConsentRepository(db *gorm.DB) PrivacyConsentRepository {
	return &privacyConsentRepository{db: db}
}

// Create creates a new consent record.
func (r *privacyConsentRepository) Create(ctx context.Context, consent *model.UserPrivacyConsent) error {
	return r.db.WithContext(ctx).Create(consent).Error
}

// Update updates an existing consent record.
func (r *privacyConsentRepository) Update(ctx context.Context, consent *model.UserPrivacyConsent) error {
	return r.db.WithContext(ctx).Save(consent).Error
}

// FindByUserID finds the consent record belonging to a user.
func (r *privacyConsentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPrivacyConsent, error) {
	var consent model.UserPrivacyConsent
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&consent).Error; err != nil {
		return nil, err
	}
	return &consent, nil
}
