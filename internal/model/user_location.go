package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLocation stores the last known location of a user.
// One per user, created by the account provisioner.
type UserLocation struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	Town      string         `json:"town" gorm:"size:50"`
	State     string         `json:"state" gorm:"size:50"`
	Country   string         `json:"country" gorm:"size:50"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// FullAddress combines town, state and country into a single address line.
func (l *UserLocation) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Town, l.State, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// BeforeCreate sets UUID before creating the record.
func (l *UserLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
