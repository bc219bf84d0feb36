package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBankAccount holds the claimed bank account of a user. Provisioned as an
// empty placeholder (NULL account number, no bank) and filled in through the
// verification flow. The account number is globally unique across all users;
// NULL placeholders do not collide under the unique index.
type UserBankAccount struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;uniqueIndex"`
	BankID        *uuid.UUID     `json:"bank_id" gorm:"type:char(36);index"`
	Verified      bool           `json:"verified" gorm:"default:false"`
	AccountName   string         `json:"account_name" gorm:"size:255"`
	AccountNumber *string        `json:"account_number" gorm:"size:16;uniqueIndex"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User  `json:"-" gorm:"foreignKey:UserID"`
	Bank *Bank `json:"bank,omitempty" gorm:"foreignKey:BankID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *UserBankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
