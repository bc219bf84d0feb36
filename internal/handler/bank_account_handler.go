package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/service"
)

// BankAccountHandler exposes the bank account endpoints.
type BankAccountHandler struct {
	svc service.BankAccountService
}

// NewBankAccountHandler creates a new bank account handler.
func NewBankAccountHandler(svc service.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{svc: svc}
}

// BankAccountUpdateRequest carries the claimed account details to verify.
type BankAccountUpdateRequest struct {
	AccountNumber string `json:"account_number" validate:"required,numeric,min=10,max=16"`
	BankCode      string `json:"bank_code" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
}

// GetOwn godoc
// @Summary Get the authenticated user's bank account
// @Tags bank-accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserBankAccount
// @Failure 404 {object} errors.ErrorResponse
// @Router /bank-accounts/me [get]
func (h *BankAccountHandler) GetOwn(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	account, err := h.svc.GetOwn(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, account)
}

// List godoc
// @Summary List bank accounts visible to the caller
// @Description Staff see every account; other callers see only their own.
// @Tags bank-accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} model.UserBankAccount
// @Router /bank-accounts [get]
func (h *BankAccountHandler) List(c echo.Context) error {
	userID, staff, err := currentUserID(c)
	if err != nil {
		return err
	}
	offset, limit := pageParams(c)

	accounts, err := h.svc.List(c.Request().Context(), userID, staff, offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, accounts)
}

// Update godoc
// @Summary Verify and update a bank account
// @Description Resolves the claimed account against the payment provider and
// @Description persists the resolved holder name on success.
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bank account ID"
// @Param request body BankAccountUpdateRequest true "Claimed account details"
// @Success 200 {object} model.UserBankAccount
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /bank-accounts/{id} [put]
func (h *BankAccountHandler) Update(c echo.Context) error {
	userID, staff, err := currentUserID(c)
	if err != nil {
		return err
	}
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bank account ID")
	}

	var req BankAccountUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.svc.Update(c.Request().Context(), userID, staff, accountID, service.BankAccountUpdate{
		AccountNumber: req.AccountNumber,
		BankCode:      req.BankCode,
		AccountName:   req.AccountName,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, account)
}
