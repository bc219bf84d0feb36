package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/repository"
)

// EarningService handles earnings balance reads and owner-or-staff updates.
type EarningService interface {
	Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	GetOwn(ctx context.Context, userID uuid.UUID) (*model.UserEarning, error)
	List(ctx context.Context, requesterID uuid.UUID, staff bool, offset, limit int) ([]model.UserEarning, error)
	UpdateBalance(ctx context.Context, requesterID uuid.UUID, staff bool, earningID uuid.UUID, balance decimal.Decimal) (*model.UserEarning, error)
}

type earningService struct {
	earnings repository.EarningRepository
}

// NewEarningService creates a new earning service.
func NewEarningService(earnings repository.EarningRepository) EarningService {
	return &earningService{earnings: earnings}
}

// Balance retrieves the caller's own earnings balance.
func (s *earningService) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	earning, err := s.GetOwn(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return earning.Balance, nil
}

// GetOwn retrieves the caller's own earning record.
func (s *earningService) GetOwn(ctx context.Context, userID uuid.UUID) (*model.UserEarning, error) {
	earning, err := s.earnings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEarningNotFound
		}
		return nil, err
	}
	return earning, nil
}

// List returns earning records: staff see all, others only their own.
func (s *earningService) List(ctx context.Context, requesterID uuid.UUID, staff bool, offset, limit int) ([]model.UserEarning, error) {
	if staff {
		return s.earnings.List(ctx, offset, limit)
	}
	earning, err := s.GetOwn(ctx, requesterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEarningNotFound) {
			return []model.UserEarning{}, nil
		}
		return nil, err
	}
	return []model.UserEarning{*earning}, nil
}

// UpdateBalance sets a new balance on an earning record. Only the owner or
// staff may write, and the balance must stay non-negative.
func (s *earningService) UpdateBalance(ctx context.Context, requesterID uuid.UUID, staff bool, earningID uuid.UUID, balance decimal.Decimal) (*model.UserEarning, error) {
	earning, err := s.earnings.FindByID(ctx, earningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEarningNotFound
		}
		return nil, err
	}

	if earning.UserID != requesterID && !staff {
		return nil, apperrors.ErrForbidden
	}

	if balance.IsNegative() {
		return nil, apperrors.ErrNegativeBalance
	}

	earning.Balance = balance
	if err := s.earnings.Update(ctx, earning); err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}
	return earning, nil
}
