package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/model"
)

// BankRepository defines bank reference-data persistence operations.
type BankRepository interface {
	Create(ctx context.Context, bank *model.Bank) error
	Update(ctx context.Context, bank *model.Bank) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bank, error)
	FindByCode(ctx context.Context, code string) (*model.Bank, error)
	FindBySlug(ctx context.Context, slug string) (*model.Bank, error)
	List(ctx context.Context, offset, limit int) ([]model.Bank, error)
}

type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository.
func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

// Create creates a new bank.
func (r *bankRepository) Create(ctx context.Context, bank *model.Bank) error {
	return r.db.WithContext(ctx).Create(bank).Error
}

// Update updates an existing bank.
func (r *bankRepository) Update(ctx context.Context, bank *model.Bank) error {
	return r.db.WithContext(ctx).Save(bank).Error
}

// FindByID finds a bank by ID.
func (r *bankRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bank, error) {
	var bank model.Bank
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// FindByCode finds a bank by its clearing code.
func (r *bankRepository) FindByCode(ctx context.Context, code string) (*model.Bank, error) {
	var bank model.Bank
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// FindBySlug finds a bank by slug.
func (r *bankRepository) FindBySlug(ctx context.Context, slug string) (*model.Bank, error) {
	var bank model.Bank
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// List returns a page of banks ordered by name.
func (r *bankRepository) List(ctx context.Context, offset, limit int) ([]model.Bank, error) {
	var banks []model.Bank
	if err := r.db.WithContext(ctx).Order("name ASC").Offset(offset).Limit(limit).Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}
