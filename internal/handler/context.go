package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/david-jerry/iwitness/internal/auth"
)

// currentClaims extracts the authenticated caller's claims from the context.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// currentUserID extracts the authenticated caller's user ID and staff flag.
func currentUserID(c echo.Context) (uuid.UUID, bool, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, false, err
	}
	userID, parseErr := claims.SubjectID()
	if parseErr != nil {
		return uuid.Nil, false, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return userID, claims.Staff, nil
}
