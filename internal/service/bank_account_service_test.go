package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
)

func TestBankAccountService_Update(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	accountID := uuid.New()
	bankID := uuid.New()

	upd := BankAccountUpdate{
		AccountNumber: "0123456789",
		BankCode:      "058",
		AccountName:   "John Okafor",
	}

	tests := []struct {
		name          string
		requesterID   uuid.UUID
		staff         bool
		setupMocks    func(*MockBankAccountRepository, *MockBankRepository, *MockBankVerifier)
		expectedError error
	}{
		{
			name:        "owner update persists resolved name and verified flag",
			requesterID: ownerID,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(&model.UserBankAccount{ID: accountID, UserID: ownerID}, nil)
				verifier.On("VerifyAndResolve", mock.Anything, "0123456789", "058", "John Okafor").Return("John Adeyemi Okafor", nil)
				banks.On("FindByCode", mock.Anything, "058").Return(&model.Bank{ID: bankID, Code: "058"}, nil)
				accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *model.UserBankAccount) bool {
					return a.Verified &&
						a.AccountName == "John Adeyemi Okafor" &&
						a.AccountNumber != nil && *a.AccountNumber == "0123456789" &&
						a.BankID != nil && *a.BankID == bankID
				})).Return(nil)
			},
		},
		{
			name:        "staff may update someone else's account",
			requesterID: strangerID,
			staff:       true,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(&model.UserBankAccount{ID: accountID, UserID: ownerID}, nil)
				verifier.On("VerifyAndResolve", mock.Anything, "0123456789", "058", "John Okafor").Return("John Adeyemi Okafor", nil)
				banks.On("FindByCode", mock.Anything, "058").Return(&model.Bank{ID: bankID, Code: "058"}, nil)
				accounts.On("Update", mock.Anything, mock.AnythingOfType("*model.UserBankAccount")).Return(nil)
			},
		},
		{
			name:        "non-owner non-staff is forbidden",
			requesterID: strangerID,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(&model.UserBankAccount{ID: accountID, UserID: ownerID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:        "missing account",
			requesterID: ownerID,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrBankAccountNotFound,
		},
		{
			name:        "verification failure leaves the account untouched",
			requesterID: ownerID,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(&model.UserBankAccount{ID: accountID, UserID: ownerID}, nil)
				verifier.On("VerifyAndResolve", mock.Anything, "0123456789", "058", "John Okafor").Return("", apperrors.ErrNameMismatch)
			},
			expectedError: apperrors.ErrNameMismatch,
		},
		{
			name:        "unknown bank code leaves the bank link unchanged",
			requesterID: ownerID,
			setupMocks: func(accounts *MockBankAccountRepository, banks *MockBankRepository, verifier *MockBankVerifier) {
				accounts.On("FindByID", mock.Anything, accountID).Return(&model.UserBankAccount{ID: accountID, UserID: ownerID}, nil)
				verifier.On("VerifyAndResolve", mock.Anything, "0123456789", "058", "John Okafor").Return("John Adeyemi Okafor", nil)
				banks.On("FindByCode", mock.Anything, "058").Return(nil, gorm.ErrRecordNotFound)
				accounts.On("Update", mock.Anything, mock.MatchedBy(func(a *model.UserBankAccount) bool {
					return a.BankID == nil && a.Verified
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := new(MockBankAccountRepository)
			banks := new(MockBankRepository)
			verifier := new(MockBankVerifier)
			tt.setupMocks(accounts, banks, verifier)

			svc := NewBankAccountService(accounts, banks, verifier)
			account, err := svc.Update(context.Background(), tt.requesterID, tt.staff, accountID, upd)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, account)
				assert.True(t, account.Verified)
				assert.Equal(t, "John Adeyemi Okafor", account.AccountName)
			}

			accounts.AssertExpectations(t)
			banks.AssertExpectations(t)
			verifier.AssertExpectations(t)
		})
	}
}

func TestBankAccountService_List(t *testing.T) {
	ownerID := uuid.New()

	t.Run("staff see every account", func(t *testing.T) {
		accounts := new(MockBankAccountRepository)
		accounts.On("List", mock.Anything, 0, 10).Return([]model.UserBankAccount{{}, {}}, nil)

		svc := NewBankAccountService(accounts, new(MockBankRepository), new(MockBankVerifier))
		got, err := svc.List(context.Background(), ownerID, true, 0, 10)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		accounts.AssertExpectations(t)
	})

	t.Run("non-staff see only their own", func(t *testing.T) {
		accounts := new(MockBankAccountRepository)
		accounts.On("FindByUserID", mock.Anything, ownerID).Return(&model.UserBankAccount{UserID: ownerID}, nil)

		svc := NewBankAccountService(accounts, new(MockBankRepository), new(MockBankVerifier))
		got, err := svc.List(context.Background(), ownerID, false, 0, 10)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, ownerID, got[0].UserID)
		accounts.AssertExpectations(t)
	})

	t.Run("non-staff with no account get an empty page", func(t *testing.T) {
		accounts := new(MockBankAccountRepository)
		accounts.On("FindByUserID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewBankAccountService(accounts, new(MockBankRepository), new(MockBankVerifier))
		got, err := svc.List(context.Background(), ownerID, false, 0, 10)

		assert.NoError(t, err)
		assert.Empty(t, got)
		accounts.AssertExpectations(t)
	})
}
