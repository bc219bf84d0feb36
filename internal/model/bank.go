package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bank is static reference data describing a supported bank, mirrored from
// the Paystack bank list. Read-only outside of the seeding/sync path.
type Bank struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string         `json:"name" gorm:"uniqueIndex;size:500;not null"`
	Slug       string         `json:"slug" gorm:"uniqueIndex;size:500;not null"`
	LCode      string         `json:"lcode" gorm:"size:25;index"`
	Code       string         `json:"code" gorm:"size:10;index"`
	CountryISO string         `json:"country_iso" gorm:"size:10"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Bank) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
