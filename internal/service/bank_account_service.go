package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/repository"
)

// BankAccountUpdate is the partial update accepted by the verification flow.
// BankCode is transient; only the resolved bank reference is persisted.
type BankAccountUpdate struct {
	AccountNumber string
	BankCode      string
	AccountName   string
}

// BankAccountService handles bank account reads and the verified update flow.
type BankAccountService interface {
	GetOwn(ctx context.Context, userID uuid.UUID) (*model.UserBankAccount, error)
	List(ctx context.Context, requesterID uuid.UUID, staff bool, offset, limit int) ([]model.UserBankAccount, error)
	Update(ctx context.Context, requesterID uuid.UUID, staff bool, accountID uuid.UUID, upd BankAccountUpdate) (*model.UserBankAccount, error)
}

type bankAccountService struct {
	accounts repository.BankAccountRepository
	banks    repository.BankRepository
	verifier BankVerifier
}

// NewBankAccountService creates a new bank account service.
func NewBankAccountService(
	accounts repository.BankAccountRepository,
	banks repository.BankRepository,
	verifier BankVerifier,
) BankAccountService {
	return &bankAccountService{
		accounts: accounts,
		banks:    banks,
		verifier: verifier,
	}
}

// GetOwn retrieves the caller's own bank account.
func (s *bankAccountService) GetOwn(ctx context.Context, userID uuid.UUID) (*model.UserBankAccount, error) {
	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// List returns bank accounts: staff see every account, others only their own.
func (s *bankAccountService) List(ctx context.Context, requesterID uuid.UUID, staff bool, offset, limit int) ([]model.UserBankAccount, error) {
	if staff {
		return s.accounts.List(ctx, offset, limit)
	}
	account, err := s.GetOwn(ctx, requesterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBankAccountNotFound) {
			return []model.UserBankAccount{}, nil
		}
		return nil, err
	}
	return []model.UserBankAccount{*account}, nil
}

// Update runs the claimed account through the external verification flow and,
// on success, persists the resolved holder name with verified=true. Only the
// owner or staff may update an account.
func (s *bankAccountService) Update(ctx context.Context, requesterID uuid.UUID, staff bool, accountID uuid.UUID, upd BankAccountUpdate) (*model.UserBankAccount, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankAccountNotFound
		}
		return nil, err
	}

	if account.UserID != requesterID && !staff {
		return nil, apperrors.ErrForbidden
	}

	resolvedName, err := s.verifier.VerifyAndResolve(ctx, upd.AccountNumber, upd.BankCode, upd.AccountName)
	if err != nil {
		return nil, err
	}

	// The bank reference is looked up from the transient code; a code the
	// local reference data does not know yet leaves the link unchanged.
	if bank, err := s.banks.FindByCode(ctx, upd.BankCode); err == nil {
		account.BankID = &bank.ID
		account.Bank = bank
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find bank: %w", err)
	}

	accountNumber := upd.AccountNumber
	account.AccountNumber = &accountNumber
	account.AccountName = resolvedName
	account.Verified = true

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update bank account: %w", err)
	}
	return account, nil
}
