package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// UserFollowRepository defines follow-edge persistence operations.
type UserFollowRepository interface {
	Create(ctx context.Context, follow *model.UserFollow) error
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.UserFollow, error)
	ListFollowing(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.UserFollow, error)
}

type userFollowRepository struct {
	db *gorm.DB
}

// NewUserFollowRepository creates a new follow repository.
func NewUserFollowRepository(db *gorm.DB) UserFollowRepository {
	return &userFollowRepository{db: db}
}

// Create creates a follow edge.
func (r *userFollowRepository) Create(ctx context.Context, follow *model.UserFollow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// Delete removes a follow edge.
func (r *userFollowRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.UserFollow{}).Error
}

// Exists reports whether a follow edge is present.
func (r *userFollowRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowers returns the users following userID.
func (r *userFollowRepository) ListFollowers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.UserFollow, error) {
	var follows []model.UserFollow
	err := r.db.WithContext(ctx).Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&follows).Error
	return follows, err
}

// ListFollowing returns the users userID follows.
func (r *userFollowRepository) ListFollowing(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.UserFollow, error) {
	var follows []model.UserFollow
	err := r.db.WithContext(ctx).Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&follows).Error
	return follows, err
}
