package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity anchor of the platform. Every user owns exactly one
// Profile, UserPrivacyConsent, UserLocation, UserBankAccount and UserEarning,
// created by the account provisioner right after registration.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Name         string         `json:"name" gorm:"size:255"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Verified     bool           `json:"verified" gorm:"default:false;index"`
	UserIP       string         `json:"-" gorm:"size:45"`
	IsStaff      bool           `json:"is_staff" gorm:"default:false;index"`
	IsSuperuser  bool           `json:"-" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
