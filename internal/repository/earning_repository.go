package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// EarningRepository defines earning persistence operations.
type EarningRepository interface {
	Create(ctx context.Context, earning *model.UserEarning) error
	Update(ctx context.Context, earning *model.UserEarning) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserEarning, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserEarning, error)
	List(ctx context.Context, offset, limit int) ([]model.UserEarning, error)
}

type earningRepository struct {
	db *gorm.DB
}

// NewEarningRepository creates a new earning repository.
func NewEarningRepository(db *gorm.DB) EarningRepository {
	return &earningRepository{db: db}
}

// Create creates a new earning record.
func (r *earningRepository) Create(ctx context.Context, earning *model.UserEarning) error {
	return r.db.WithContext(ctx).Create(earning).Error
}

// Update updates an existing earning record.
func (r *earningRepository) Update(ctx context.Context, earning *model.UserEarning) error {
	return r.db.WithContext(ctx).Save(earning).Error
}

// FindByID finds an earning record by ID.
func (r *earningRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserEarning, error) {
	var earning model.UserEarning
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&earning).Error; err != nil {
		return nil, err
	}
	return &earning, nil
}

// FindByUserID finds the earning record belonging to a user.
func (r *earningRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserEarning, error) {
	var earning model.UserEarning
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&earning).Error; err != nil {
		return nil, err
	}
	return &earning, nil
}

// List returns a page of earning records, most recently modified first.
func (r *earningRepository) List(ctx context.Context, offset, limit int) ([]model.UserEarning, error) {
	var earnings []model.UserEarning
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Offset(offset).Limit(limit).Find(&earnings).Error; err != nil {
		return nil, err
	}
	return earnings, nil
}
