package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for expired or unknown tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrBankNotFound is returned when a bank is not found.
	ErrBankNotFound = errors.New("bank not found")
	// ErrBankAccountNotFound is returned when a bank account is not found.
	ErrBankAccountNotFound = errors.New("bank account not found")
	// ErrEarningNotFound is returned when an earning record is not found.
	ErrEarningNotFound = errors.New("earning record not found")

	// ErrForbidden is returned when a caller is neither the owner nor staff.
	ErrForbidden = errors.New("you do not have permission to access this resource")

	// ErrExternalService is returned when the bank resolution service cannot be
	// reached or answers with a non-2xx status. Retryable.
	ErrExternalService = errors.New("error connecting to the bank resolution service")
	// ErrResolutionFailed is returned when the service could not resolve the
	// account number. Not retryable without changing the input.
	ErrResolutionFailed = errors.New("bank account verification failed")
	// ErrNameMismatch is returned when the resolved holder name is not similar
	// enough to the claimed name.
	ErrNameMismatch = errors.New("account name does not match the resolved account holder")

	// ErrNegativeBalance is returned when an earning update would go below zero.
	ErrNegativeBalance = errors.New("earning balance cannot be negative")
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrAlreadyFollowing is returned when a follow edge already exists.
	ErrAlreadyFollowing = errors.New("already following this user")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBankNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BANK_NOT_FOUND")
	case errors.Is(err, ErrBankAccountNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BANK_ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrEarningNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EARNING_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrExternalService):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "EXTERNAL_SERVICE_ERROR")
	case errors.Is(err, ErrResolutionFailed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RESOLUTION_FAILED")
	case errors.Is(err, ErrNameMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NAME_MISMATCH")
	case errors.Is(err, ErrNegativeBalance):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_BALANCE")
	case errors.Is(err, ErrSelfFollow):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_FOLLOW")
	case errors.Is(err, ErrAlreadyFollowing):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_FOLLOWING")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
