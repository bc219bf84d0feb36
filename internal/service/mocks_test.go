package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/paystack"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateIP(ctx context.Context, id uuid.UUID, ip string) error {
	args := m.Called(ctx, id, ip)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockPrivacyConsentRepository is a mock implementation of repository.PrivacyConsentRepository.
type MockPrivacyConsentRepository struct {
	mock.Mock
}

func (m *MockPrivacyConsentRepository) Create(ctx context.Context, consent *model.UserPrivacyConsent) error {
	args := m.Called(ctx, consent)
	return args.Error(0)
}

func (m *MockPrivacyConsentRepository) Update(ctx context.Context, consent *model.UserPrivacyConsent) error {
	args := m.Called(ctx, consent)
	return args.Error(0)
}

func (m *MockPrivacyConsentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserPrivacyConsent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserPrivacyConsent), args.Error(1)
}

// MockUserLocationRepository is a mock implementation of repository.UserLocationRepository.
type MockUserLocationRepository struct {
	mock.Mock
}

func (m *MockUserLocationRepository) Create(ctx context.Context, location *model.UserLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockUserLocationRepository) Update(ctx context.Context, location *model.UserLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockUserLocationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserLocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserLocation), args.Error(1)
}

// MockBankAccountRepository is a mock implementation of repository.BankAccountRepository.
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *model.UserBankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Update(ctx context.Context, account *model.UserBankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserBankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserBankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserBankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserBankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) List(ctx context.Context, offset, limit int) ([]model.UserBankAccount, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserBankAccount), args.Error(1)
}

// MockEarningRepository is a mock implementation of repository.EarningRepository.
type MockEarningRepository struct {
	mock.Mock
}

func (m *MockEarningRepository) Create(ctx context.Context, earning *model.UserEarning) error {
	args := m.Called(ctx, earning)
	return args.Error(0)
}

func (m *MockEarningRepository) Update(ctx context.Context, earning *model.UserEarning) error {
	args := m.Called(ctx, earning)
	return args.Error(0)
}

func (m *MockEarningRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserEarning, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEarning), args.Error(1)
}

func (m *MockEarningRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.UserEarning, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEarning), args.Error(1)
}

func (m *MockEarningRepository) List(ctx context.Context, offset, limit int) ([]model.UserEarning, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserEarning), args.Error(1)
}

// MockBankRepository is a mock implementation of repository.BankRepository.
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) Create(ctx context.Context, bank *model.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) Update(ctx context.Context, bank *model.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bank), args.Error(1)
}

func (m *MockBankRepository) FindByCode(ctx context.Context, code string) (*model.Bank, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bank), args.Error(1)
}

func (m *MockBankRepository) FindBySlug(ctx context.Context, slug string) (*model.Bank, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bank), args.Error(1)
}

func (m *MockBankRepository) List(ctx context.Context, offset, limit int) ([]model.Bank, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bank), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) StoreEmailConfirmToken(ctx context.Context, token string, userID uuid.UUID) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockTokenStore) ConsumeEmailConfirmToken(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenStore) StorePasswordResetToken(ctx context.Context, token string, userID uuid.UUID) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockTokenStore) ConsumePasswordResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmailConfirmation(ctx context.Context, email, confirmURL string) error {
	args := m.Called(ctx, email, confirmURL)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	args := m.Called(ctx, email, resetURL)
	return args.Error(0)
}

func (m *MockMailer) SendNewIPNotice(ctx context.Context, email, username, oldIP, newIP string) error {
	args := m.Called(ctx, email, username, oldIP, newIP)
	return args.Error(0)
}

// MockPaystackClient is a mock implementation of paystack.Client.
type MockPaystackClient struct {
	mock.Mock
}

func (m *MockPaystackClient) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*paystack.ResolveResponse, error) {
	args := m.Called(ctx, accountNumber, bankCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.ResolveResponse), args.Error(1)
}

func (m *MockPaystackClient) ListBanks(ctx context.Context, country string) ([]paystack.BankData, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]paystack.BankData), args.Error(1)
}

// MockBankVerifier is a mock implementation of BankVerifier.
type MockBankVerifier struct {
	mock.Mock
}

func (m *MockBankVerifier) VerifyAndResolve(ctx context.Context, accountNumber, bankCode, claimedName string) (string, error) {
	args := m.Called(ctx, accountNumber, bankCode, claimedName)
	return args.String(0), args.Error(1)
}
