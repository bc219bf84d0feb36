package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// UserLocationRepository defines location persistence operations.
type UserLocationRepository interface {
	Create(ctx context.Context, location *model.UserLocation) error
	Update(ctx context.Context, location *model.UserLocation) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserLocation, error)
}

type userLocationRepository struct {
	db *gorm.DB
}

// NewUserLocationRepository creates a new location repository.
func NewUserLocationRepository(db *gorm.DB) UserLocationRepository {
	return &userLocationRepository{db: db}
}

// Create creates a new location record.
func (r *userLocationRepository) Create(ctx context.Context, location *model.UserLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

// Update updates an existing location record.
func (r *userLocationRepository) Update(ctx context.Context, location *model.UserLocation) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// FindByUserID finds the location record belonging to a user.
func (r *userLocationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserLocation, error) {
	var location model.UserLocation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
