package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/service"
)

// UserHandler bundles user, profile, consent, location and follow endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ProfileUpdateRequest represents a profile update.
type ProfileUpdateRequest struct {
	Image       string     `json:"image"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Bio         string     `json:"bio"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=M F B"`
}

// ConsentUpdateRequest represents a privacy consent update.
type ConsentUpdateRequest struct {
	OfLegalAge         bool `json:"of_legal_age"`
	DataCollection     bool `json:"data_collection"`
	MarketingEmails    bool `json:"marketing_emails"`
	ThirdPartyServices bool `json:"third_party_services"`
}

// LocationUpdateRequest represents a location update.
type LocationUpdateRequest struct {
	Town    string `json:"town" validate:"max=50"`
	State   string `json:"state" validate:"max=50"`
	Country string `json:"country" validate:"max=50"`
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit := pageParams(c)
	users, err := h.svc.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.svc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.svc.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdate{
		Image:       req.Image,
		DateOfBirth: req.DateOfBirth,
		Bio:         req.Bio,
		Gender:      req.Gender,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateConsent godoc
// @Summary Update the authenticated user's privacy consents
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConsentUpdateRequest true "Consent flags"
// @Success 200 {object} model.UserPrivacyConsent
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/consent [put]
func (h *UserHandler) UpdateConsent(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ConsentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	consent, err := h.svc.UpdateConsent(c.Request().Context(), userID, service.ConsentUpdate{
		OfLegalAge:         req.OfLegalAge,
		IPAddress:          c.RealIP(),
		UserAgent:          c.Request().UserAgent(),
		DataCollection:     req.DataCollection,
		MarketingEmails:    req.MarketingEmails,
		ThirdPartyServices: req.ThirdPartyServices,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, consent)
}

// UpdateLocation godoc
// @Summary Update the authenticated user's location
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LocationUpdateRequest true "Location fields"
// @Success 200 {object} model.UserLocation
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/location [put]
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	location, err := h.svc.UpdateLocation(c.Request().Context(), userID, service.LocationUpdate{
		Town:    req.Town,
		State:   req.State,
		Country: req.Country,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, location)
}

// Follow godoc
// @Summary Follow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID to follow"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id}/follow [post]
func (h *UserHandler) Follow(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	if err := h.svc.Follow(c.Request().Context(), userID, targetID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "now following"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID to unfollow"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id}/follow [delete]
func (h *UserHandler) Unfollow(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	if err := h.svc.Unfollow(c.Request().Context(), userID, targetID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "unfollowed"})
}

// Followers godoc
// @Summary List a user's followers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id}/followers [get]
func (h *UserHandler) Followers(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	offset, limit := pageParams(c)

	users, err := h.svc.Followers(c.Request().Context(), targetID, offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// Following godoc
// @Summary List the users a user follows
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id}/following [get]
func (h *UserHandler) Following(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}
	offset, limit := pageParams(c)

	users, err := h.svc.Following(c.Request().Context(), targetID, offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
