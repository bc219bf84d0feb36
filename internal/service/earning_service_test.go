package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
)

func TestEarningService_UpdateBalance(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	earningID := uuid.New()

	tests := []struct {
		name          string
		requesterID   uuid.UUID
		staff         bool
		balance       decimal.Decimal
		setupMock     func(*MockEarningRepository)
		expectedError error
	}{
		{
			name:        "owner may update",
			requesterID: ownerID,
			balance:     decimal.NewFromInt(250),
			setupMock: func(m *MockEarningRepository) {
				m.On("FindByID", mock.Anything, earningID).Return(&model.UserEarning{ID: earningID, UserID: ownerID}, nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(e *model.UserEarning) bool {
					return e.Balance.Equal(decimal.NewFromInt(250))
				})).Return(nil)
			},
		},
		{
			name:        "staff may update someone else's record",
			requesterID: strangerID,
			staff:       true,
			balance:     decimal.NewFromInt(100),
			setupMock: func(m *MockEarningRepository) {
				m.On("FindByID", mock.Anything, earningID).Return(&model.UserEarning{ID: earningID, UserID: ownerID}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.UserEarning")).Return(nil)
			},
		},
		{
			name:        "non-owner non-staff is forbidden",
			requesterID: strangerID,
			balance:     decimal.NewFromInt(100),
			setupMock: func(m *MockEarningRepository) {
				m.On("FindByID", mock.Anything, earningID).Return(&model.UserEarning{ID: earningID, UserID: ownerID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:        "negative balance is rejected",
			requesterID: ownerID,
			balance:     decimal.NewFromInt(-5),
			setupMock: func(m *MockEarningRepository) {
				m.On("FindByID", mock.Anything, earningID).Return(&model.UserEarning{ID: earningID, UserID: ownerID}, nil)
			},
			expectedError: apperrors.ErrNegativeBalance,
		},
		{
			name:        "missing record",
			requesterID: ownerID,
			balance:     decimal.NewFromInt(100),
			setupMock: func(m *MockEarningRepository) {
				m.On("FindByID", mock.Anything, earningID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEarningNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEarningRepository)
			tt.setupMock(mockRepo)

			svc := NewEarningService(mockRepo)
			earning, err := svc.UpdateBalance(context.Background(), tt.requesterID, tt.staff, earningID, tt.balance)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, earning)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, earning)
				assert.True(t, earning.Balance.Equal(tt.balance))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestEarningService_Balance(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns the stored balance", func(t *testing.T) {
		mockRepo := new(MockEarningRepository)
		mockRepo.On("FindByUserID", mock.Anything, ownerID).Return(&model.UserEarning{
			UserID:  ownerID,
			Balance: decimal.NewFromFloat(12.50),
		}, nil)

		svc := NewEarningService(mockRepo)
		balance, err := svc.Balance(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("missing record", func(t *testing.T) {
		mockRepo := new(MockEarningRepository)
		mockRepo.On("FindByUserID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEarningService(mockRepo)
		_, err := svc.Balance(context.Background(), ownerID)

		assert.ErrorIs(t, err, apperrors.ErrEarningNotFound)
	})
}
