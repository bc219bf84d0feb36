package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/service"
)

// BankHandler exposes the bank reference data endpoints.
type BankHandler struct {
	svc service.BankService
}

// NewBankHandler creates a new bank handler.
func NewBankHandler(svc service.BankService) *BankHandler {
	return &BankHandler{svc: svc}
}

// BankSyncRequest selects the country whose bank list is synced.
type BankSyncRequest struct {
	Country string `json:"country" validate:"required,len=2"`
}

// ListBanks godoc
// @Summary List supported banks
// @Tags banks
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} model.Bank
// @Router /banks [get]
func (h *BankHandler) ListBanks(c echo.Context) error {
	offset, limit := pageParams(c)
	banks, err := h.svc.ListBanks(c.Request().Context(), offset, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, banks)
}

// GetBank godoc
// @Summary Get a bank by id
// @Tags banks
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} model.Bank
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /banks/{id} [get]
func (h *BankHandler) GetBank(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bank ID")
	}
	bank, err := h.svc.GetBank(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bank)
}

// SyncBanks godoc
// @Summary Sync the bank list from the payment provider
// @Tags banks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BankSyncRequest true "Country code"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /banks/sync [post]
func (h *BankHandler) SyncBanks(c echo.Context) error {
	_, staff, err := currentUserID(c)
	if err != nil {
		return err
	}
	if !staff {
		httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req BankSyncRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, updated, err := h.svc.SyncBanks(c.Request().Context(), req.Country)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]int{
		"created": created,
		"updated": updated,
	})
}
