package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/service"
)

// EarningHandler exposes the earnings endpoints.
type EarningHandler struct {
	svc service.EarningService
}

// NewEarningHandler creates a new earning handler.
func NewEarningHandler(svc service.EarningService) *EarningHandler {
	return &EarningHandler{svc: svc}
}

// EarningUpdateRequest carries a replacement balance.
type EarningUpdateRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// BalanceResponse reports the caller's earnings balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// Balance godoc
// @Summary Get the authenticated user's earnings balance
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /earnings/balance [get]
func (h *EarningHandler) Balance(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	balance, err := h.svc.Balance(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

// GetOwn godoc
// @Summary Get the authenticated user's earning record
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEarning
// @Failure 404 {object} errors.ErrorResponse
// @Router /earnings/me [get]
func (h *EarningHandler) GetOwn(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	earning, err := h.svc.GetOwn(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, earning)
}

// List godoc
// @Summary List earning records visible to the caller
// @Description Staff see every record; other callers see only their own.
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} model.UserEarning
// @Router /earnings [get]
func (h *EarningHandler) List(c echo.Context) error {
	userID, staff, err := currentUserID(c)
	if err != nil {
		return err
	}
	offset, limit := pageParams(c)

	earnings, err := h.svc.List(c.Request().Context(), userID, staff, offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, earnings)
}

// Update godoc
// @Summary Update an earning balance
// @Tags earnings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Earning ID"
// @Param request body EarningUpdateRequest true "New balance"
// @Success 200 {object} model.UserEarning
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /earnings/{id} [put]
func (h *EarningHandler) Update(c echo.Context) error {
	userID, staff, err := currentUserID(c)
	if err != nil {
		return err
	}
	earningID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid earning ID")
	}

	var req EarningUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	earning, err := h.svc.UpdateBalance(c.Request().Context(), userID, staff, earningID, req.Balance)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, earning)
}
