package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPrivacyConsent tracks the consents a user has given.
// One per user, created by the account provisioner.
type UserPrivacyConsent struct {
	ID                 uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID             uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	OfLegalAge         bool           `json:"of_legal_age" gorm:"default:true"`
	IPAddress          string         `json:"ip_address" gorm:"size:45"`
	UserAgent          string         `json:"user_agent" gorm:"type:text"`
	DataCollection     bool           `json:"data_collection" gorm:"default:false"`
	MarketingEmails    bool           `json:"marketing_emails" gorm:"default:false"`
	ThirdPartyServices bool           `json:"third_party_services" gorm:"default:false"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *UserPrivacyConsent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
