package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/auth"
	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/mailer"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and the token-based email flows.
type AuthService interface {
	Register(ctx context.Context, email, username, password, name string) (*model.User, error)
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password, clientIP string) (accessToken, refreshToken string, user *model.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type authService struct {
	users       repository.UserRepository
	provisioner Provisioner
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
	mail        mailer.Mailer
	baseURL     string
	log         zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	provisioner Provisioner,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mail mailer.Mailer,
	baseURL string,
	log zerolog.Logger,
) AuthService {
	return &authService{
		users:       users,
		provisioner: provisioner,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
		mail:        mail,
		baseURL:     baseURL,
		log:         log,
	}
}

// Register creates a new user with a hashed password, provisions the
// dependent records and sends a confirmation mail.
func (s *authService) Register(ctx context.Context, email, username, password, name string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Explicit, synchronous, exactly-once provisioning of dependent rows.
	if err := s.provisioner.ProvisionUser(ctx, user); err != nil {
		return nil, fmt.Errorf("provision user: %w", err)
	}

	token := uuid.New().String()
	if err := s.tokenStore.StoreEmailConfirmToken(ctx, token, user.ID); err != nil {
		return nil, fmt.Errorf("store confirmation token: %w", err)
	}
	confirmURL := fmt.Sprintf("%s/api/auth/confirm-email/%s", s.baseURL, token)
	if err := s.mail.SendEmailConfirmation(ctx, user.Email, confirmURL); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("confirmation mail not sent")
	}

	return user, nil
}

// ConfirmEmail marks the token's user as verified and burns the token.
func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := s.tokenStore.ConsumeEmailConfirmToken(ctx, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	return s.users.SetVerified(ctx, userID, true)
}

// Login authenticates a user, records the client IP and returns access and
// refresh tokens. A changed IP triggers a notification mail.
func (s *authService) Login(ctx context.Context, email, password, clientIP string) (accessToken, refreshToken string, user *model.User, err error) {
	user, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, apperrors.ErrInvalidCredentials
	}

	if clientIP != "" && clientIP != user.UserIP {
		if user.UserIP != "" {
			if mailErr := s.mail.SendNewIPNotice(ctx, user.Email, user.Username, user.UserIP, clientIP); mailErr != nil {
				s.log.Warn().Err(mailErr).Str("email", user.Email).Msg("new IP notice not sent")
			}
		}
		if err := s.users.UpdateIP(ctx, user.ID, clientIP); err != nil {
			return "", "", nil, fmt.Errorf("update user ip: %w", err)
		}
		user.UserIP = clientIP
	}

	accessToken, err = s.jwtService.GenerateAccessToken(user.ID, user.Email, user.IsStaff)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, user.IsStaff)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	if storedUserID.String() != claims.UserID || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(storedUserID, claims.Email, claims.Staff)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// RequestPasswordReset issues a reset token for the given address. Unknown
// addresses are ignored so the endpoint leaks no account information.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token := uuid.New().String()
	if err := s.tokenStore.StorePasswordResetToken(ctx, token, user.ID); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	resetURL := fmt.Sprintf("%s/api/auth/password/reset/%s", s.baseURL, token)
	if err := s.mail.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("password reset mail not sent")
	}
	return nil
}

// ConfirmPasswordReset sets a new password for the token's user.
func (s *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokenStore.ConsumePasswordResetToken(ctx, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hashedPassword))
}
