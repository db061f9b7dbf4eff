package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthenticated is returned when no valid token accompanies a request.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrForbidden is returned when a valid token carries a non-admin subject.
	ErrForbidden = errors.New("not enough permissions")
	// ErrStoreUnavailable is returned when the feedback store cannot be reached.
	ErrStoreUnavailable = errors.New("feedback store unavailable")
	// ErrCancelled is returned when the caller abandoned the request.
	ErrCancelled = errors.New("request cancelled")
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
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "STORE_UNAVAILABLE")
	case errors.Is(err, ErrCancelled):
		return NewHTTPError(http.StatusRequestTimeout, err.Error(), "REQUEST_CANCELLED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
