package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/auth"
	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
)

// MockProvisioner is a mock implementation of Provisioner.
type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) ProvisionUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

const testBaseURL = "http://localhost:8080"

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		displayName   string
		setupMocks    func(*MockUserRepository, *MockProvisioner, *MockTokenStore, *MockMailer)
		expectedError error
	}{
		{
			name:        "successful registration provisions and mails",
			email:       "test@example.com",
			username:    "testuser",
			password:    "password123",
			displayName: "Test User",
			setupMocks: func(users *MockUserRepository, prov *MockProvisioner, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				prov.On("ProvisionUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				tokens.On("StoreEmailConfirmToken", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("uuid.UUID")).Return(nil)
				mail.On("SendEmailConfirmation", mock.Anything, "test@example.com", mock.AnythingOfType("string")).Return(nil)
			},
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			username: "existing",
			password: "password123",
			setupMocks: func(users *MockUserRepository, prov *MockProvisioner, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:     "provisioning failure aborts registration",
			email:    "test@example.com",
			username: "testuser",
			password: "password123",
			setupMocks: func(users *MockUserRepository, prov *MockProvisioner, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				prov.On("ProvisionUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(assert.AnError).Once()
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			prov := new(MockProvisioner)
			tokens := new(MockTokenStore)
			mail := new(MockMailer)
			tt.setupMocks(users, prov, tokens, mail)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(users, prov, jwtService, tokens, mail, testBaseURL, zerolog.Nop())

			user, err := svc.Register(context.Background(), tt.email, tt.username, tt.password, tt.displayName)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			users.AssertExpectations(t)
			prov.AssertExpectations(t)
			tokens.AssertExpectations(t)
			mail.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		clientIP      string
		setupMocks    func(*MockUserRepository, *MockTokenStore, *MockMailer)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			clientIP: "10.0.0.1",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					Username:     "testuser",
					PasswordHash: string(hashedPassword),
					UserIP:       "10.0.0.1",
				}, nil)
				tokens.On("StoreRefreshToken", mock.Anything, mock.Anything, userID, "test@example.com", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "changed IP sends a notice and is recorded",
			email:    "test@example.com",
			password: "password123",
			clientIP: "192.168.1.9",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					Username:     "testuser",
					PasswordHash: string(hashedPassword),
					UserIP:       "10.0.0.1",
				}, nil)
				mail.On("SendNewIPNotice", mock.Anything, "test@example.com", "testuser", "10.0.0.1", "192.168.1.9").Return(nil).Once()
				users.On("UpdateIP", mock.Anything, userID, "192.168.1.9").Return(nil).Once()
				tokens.On("StoreRefreshToken", mock.Anything, mock.Anything, userID, "test@example.com", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "first login records the IP without a notice",
			email:    "test@example.com",
			password: "password123",
			clientIP: "10.0.0.1",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					Username:     "testuser",
					PasswordHash: string(hashedPassword),
				}, nil)
				users.On("UpdateIP", mock.Anything, userID, "10.0.0.1").Return(nil).Once()
				tokens.On("StoreRefreshToken", mock.Anything, mock.Anything, userID, "test@example.com", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(users *MockUserRepository, tokens *MockTokenStore, mail *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tokens := new(MockTokenStore)
			mail := new(MockMailer)
			tt.setupMocks(users, tokens, mail)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(users, new(MockProvisioner), jwtService, tokens, mail, testBaseURL, zerolog.Nop())

			accessToken, refreshToken, user, err := svc.Login(context.Background(), tt.email, tt.password, tt.clientIP)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.clientIP, user.UserIP)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
			mail.AssertExpectations(t)
		})
	}
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token verifies the user", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenStore)
		tokens.On("ConsumeEmailConfirmToken", mock.Anything, "good-token").Return(userID, nil)
		users.On("SetVerified", mock.Anything, userID, true).Return(nil)

		svc := NewAuthService(users, new(MockProvisioner), auth.NewJWTService("test-secret"), tokens, new(MockMailer), testBaseURL, zerolog.Nop())
		err := svc.ConfirmEmail(context.Background(), "good-token")

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		tokens := new(MockTokenStore)
		tokens.On("ConsumeEmailConfirmToken", mock.Anything, "bad-token").Return(uuid.Nil, assert.AnError)

		svc := NewAuthService(new(MockUserRepository), new(MockProvisioner), auth.NewJWTService("test-secret"), tokens, new(MockMailer), testBaseURL, zerolog.Nop())
		err := svc.ConfirmEmail(context.Background(), "bad-token")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", false)
		assert.NoError(t, err)

		tokens := new(MockTokenStore)
		tokens.On("GetRefreshToken", mock.Anything, tokenID).Return(userID, "test@example.com", nil)

		svc := NewAuthService(new(MockUserRepository), new(MockProvisioner), jwtService, tokens, new(MockMailer), testBaseURL, zerolog.Nop())
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("revoked refresh token is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", false)
		assert.NoError(t, err)

		tokens := new(MockTokenStore)
		tokens.On("GetRefreshToken", mock.Anything, tokenID).Return(uuid.Nil, "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), new(MockProvisioner), jwtService, tokens, new(MockMailer), testBaseURL, zerolog.Nop())
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), new(MockProvisioner), jwtService, new(MockTokenStore), new(MockMailer), testBaseURL, zerolog.Nop())
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	userID := uuid.New()

	t.Run("known address gets a reset mail", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenStore)
		mail := new(MockMailer)
		users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: userID, Email: "test@example.com"}, nil)
		tokens.On("StorePasswordResetToken", mock.Anything, mock.AnythingOfType("string"), userID).Return(nil)
		mail.On("SendPasswordReset", mock.Anything, "test@example.com", mock.AnythingOfType("string")).Return(nil)

		svc := NewAuthService(users, new(MockProvisioner), auth.NewJWTService("test-secret"), tokens, mail, testBaseURL, zerolog.Nop())
		err := svc.RequestPasswordReset(context.Background(), "test@example.com")

		assert.NoError(t, err)
		mail.AssertExpectations(t)
	})

	t.Run("unknown address is silently ignored", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(users, new(MockProvisioner), auth.NewJWTService("test-secret"), new(MockTokenStore), new(MockMailer), testBaseURL, zerolog.Nop())
		err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")

		assert.NoError(t, err)
	})

	t.Run("confirm sets a new password hash", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenStore)
		tokens.On("ConsumePasswordResetToken", mock.Anything, "reset-token").Return(userID, nil)
		users.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword1")) == nil
		})).Return(nil)

		svc := NewAuthService(users, new(MockProvisioner), auth.NewJWTService("test-secret"), tokens, new(MockMailer), testBaseURL, zerolog.Nop())
		err := svc.ConfirmPasswordReset(context.Background(), "reset-token", "newpassword1")

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})
}
