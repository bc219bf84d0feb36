package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// BankAccountRepository defines bank account persistence operations.
type BankAccountRepository interface {
	Create(ctx context.Context, account *model.UserBankAccount) error
	Update(ctx context.Context, account *model.UserBankAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserBankAccount, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserBankAccount, error)
	List(ctx context.Context, offset, limit int) ([]model.UserBankAccount, error)
}

type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository.
func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return &bankAccountRepository{db: db}
}

// Create creates a new bank account.
func (r *bankAccountRepository) Create(ctx context.Context, account *model.UserBankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// Update updates an existing bank account.
func (r *bankAccountRepository) Update(ctx context.Context, account *model.UserBankAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// FindByID finds a bank account by ID.
func (r *bankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserBankAccount, error) {
	var account model.UserBankAccount
	if err := r.db.WithContext(ctx).Preload("Bank").Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUserID finds the bank account belonging to a user.
func (r *bankAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserBankAccount, error) {
	var account model.UserBankAccount
	if err := r.db.WithContext(ctx).Preload("Bank").Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns a page of bank accounts, newest first.
func (r *bankAccountRepository) List(ctx context.Context, offset, limit int) ([]model.UserBankAccount, error) {
	var accounts []model.UserBankAccount
	if err := r.db.WithContext(ctx).Preload("Bank").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
