package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender choices for Profile.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderNone   = "B"
)

// Profile stores presentation information about a user.
// One per user, created by the account provisioner.
type Profile struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	Image       string         `json:"image" gorm:"size:500"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	Bio         string         `json:"bio" gorm:"type:text"`
	Gender      string         `json:"gender" gorm:"size:3;default:'B'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
