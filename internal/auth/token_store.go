package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/david-jerry/iwitness/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	emailConfirmKeyPrefix = "email_confirm:"
	passwordResetKeyPrefix = "password_reset:"
)

const (
	// EmailConfirmTTL bounds how long an email confirmation link stays valid.
	EmailConfirmTTL = 3 * 24 * time.Hour
	// PasswordResetTTL bounds how long a password reset link stays valid.
	PasswordResetTTL = 1 * time.Hour
)

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uuid.UUID, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error

	StoreEmailConfirmToken(ctx context.Context, token string, userID uuid.UUID) error
	ConsumeEmailConfirmToken(ctx context.Context, token string) (uuid.UUID, error)

	StorePasswordResetToken(ctx context.Context, token string, userID uuid.UUID) error
	ConsumePasswordResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

// TokenStore handles storage and retrieval of tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	data := map[string]interface{}{
		"user_id": userID.String(),
		"email":   email,
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}

	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, payload, ttl)
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID uuid.UUID, email string, err error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return uuid.Nil, "", fmt.Errorf("refresh token not found")
	}

	var tokenData map[string]string
	if err := json.Unmarshal(data, &tokenData); err != nil {
		return uuid.Nil, "", fmt.Errorf("unmarshal token data: %w", err)
	}

	userID, err = uuid.Parse(tokenData["user_id"])
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid user_id in token data")
	}

	email, ok := tokenData["email"]
	if !ok {
		return uuid.Nil, "", fmt.Errorf("invalid email in token data")
	}

	return userID, email, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Delete(ctx, key)
}

// StoreEmailConfirmToken stores an email confirmation token.
func (s *TokenStore) StoreEmailConfirmToken(ctx context.Context, token string, userID uuid.UUID) error {
	key := emailConfirmKeyPrefix + token
	return s.cache.Set(ctx, key, []byte(userID.String()), EmailConfirmTTL)
}

// ConsumeEmailConfirmToken resolves and deletes an email confirmation token.
func (s *TokenStore) ConsumeEmailConfirmToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.consume(ctx, emailConfirmKeyPrefix+token)
}

// StorePasswordResetToken stores a password reset token.
func (s *TokenStore) StorePasswordResetToken(ctx context.Context, token string, userID uuid.UUID) error {
	key := passwordResetKeyPrefix + token
	return s.cache.Set(ctx, key, []byte(userID.String()), PasswordResetTTL)
}

// ConsumePasswordResetToken resolves and deletes a password reset token.
func (s *TokenStore) ConsumePasswordResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.consume(ctx, passwordResetKeyPrefix+token)
}

func (s *TokenStore) consume(ctx context.Context, key string) (uuid.UUID, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return uuid.Nil, fmt.Errorf("token not found")
	}
	userID, err := uuid.Parse(string(data))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token payload")
	}
	_ = s.cache.Delete(ctx, key)
	return userID, nil
}
