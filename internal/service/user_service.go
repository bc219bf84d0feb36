package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/cache"
	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Image       string
	DateOfBirth *time.Time
	Bio         string
	Gender      string
}

// ConsentUpdate carries the editable privacy consent fields.
type ConsentUpdate struct {
	OfLegalAge         bool
	IPAddress          string
	UserAgent          string
	DataCollection     bool
	MarketingEmails    bool
	ThirdPartyServices bool
}

// LocationUpdate carries the editable location fields.
type LocationUpdate struct {
	Town    string
	State   string
	Country string
}

// UserService exposes user reads, owned-record updates and the follow graph.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*model.Profile, error)
	UpdateConsent(ctx context.Context, userID uuid.UUID, upd ConsentUpdate) (*model.UserPrivacyConsent, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, upd LocationUpdate) (*model.UserLocation, error)

	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.User, error)
	Following(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.User, error)
}

type userService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	consents  repository.PrivacyConsentRepository
	locations repository.UserLocationRepository
	follows   repository.UserFollowRepository
	cache     *cache.Client
}

// NewUserService builds a UserService over the user-owned repositories.
func NewUserService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	consents repository.PrivacyConsentRepository,
	locations repository.UserLocationRepository,
	follows repository.UserFollowRepository,
	cache *cache.Client,
) UserService {
	return &userService{
		users:     users,
		profiles:  profiles,
		consents:  consents,
		locations: locations,
		follows:   follows,
		cache:     cache,
	}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// ListUsers returns a page of users.
func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	return s.users.List(ctx, offset, limit)
}

// GetProfile retrieves the profile owned by userID.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile updates the caller's own profile.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*model.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Image != "" {
		profile.Image = upd.Image
	}
	if upd.DateOfBirth != nil {
		profile.DateOfBirth = upd.DateOfBirth
	}
	if upd.Bio != "" {
		profile.Bio = upd.Bio
	}
	if upd.Gender != "" {
		profile.Gender = upd.Gender
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// UpdateConsent replaces the caller's privacy consent flags.
func (s *userService) UpdateConsent(ctx context.Context, userID uuid.UUID, upd ConsentUpdate) (*model.UserPrivacyConsent, error) {
	consent, err := s.consents.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	consent.OfLegalAge = upd.OfLegalAge
	consent.IPAddress = upd.IPAddress
	consent.UserAgent = upd.UserAgent
	consent.DataCollection = upd.DataCollection
	consent.MarketingEmails = upd.MarketingEmails
	consent.ThirdPartyServices = upd.ThirdPartyServices

	if err := s.consents.Update(ctx, consent); err != nil {
		return nil, fmt.Errorf("update consent: %w", err)
	}
	return consent, nil
}

// UpdateLocation updates the caller's own location record.
func (s *userService) UpdateLocation(ctx context.Context, userID uuid.UUID, upd LocationUpdate) (*model.UserLocation, error) {
	location, err := s.locations.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	location.Town = upd.Town
	location.State = upd.State
	location.Country = upd.Country

	if err := s.locations.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	return location, nil
}

// Follow adds a follow edge from followerID to followingID.
func (s *userService) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return apperrors.ErrSelfFollow
	}

	if _, err := s.GetUser(ctx, followingID); err != nil {
		return err
	}

	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrAlreadyFollowing
	}

	return s.follows.Create(ctx, &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	})
}

// Unfollow removes the follow edge from followerID to followingID.
func (s *userService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.follows.Delete(ctx, followerID, followingID)
}

// Followers returns the users following userID.
func (s *userService) Followers(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.User, error) {
	edges, err := s.follows.ListFollowers(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(edges))
	for _, edge := range edges {
		users = append(users, edge.Follower)
	}
	return users, nil
}

// Following returns the users userID follows.
func (s *userService) Following(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.User, error) {
	edges, err := s.follows.ListFollowing(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(edges))
	for _, edge := range edges {
		users = append(users, edge.Following)
	}
	return users, nil
}
