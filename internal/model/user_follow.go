package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFollow is a directed follow edge between two users.
type UserFollow struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FollowerID  uuid.UUID `json:"follower_id" gorm:"type:char(36);not null;uniqueIndex:idx_follower_following"`
	FollowingID uuid.UUID `json:"following_id" gorm:"type:char(36);not null;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Follower  User `json:"-" gorm:"foreignKey:FollowerID"`
	Following User `json:"-" gorm:"foreignKey:FollowingID"`
}

// BeforeCreate sets UUID before creating the record.
func (f *UserFollow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
