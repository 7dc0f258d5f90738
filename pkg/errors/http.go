package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows how it should be rendered to an HTTP client.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// NewBadRequest creates a 400 HTTPError.
func NewBadRequest(code, message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, code, message)
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal_error", "Вътрешна грешка. Моля, опитайте отново.")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", "Твърде много заявки. Моля, опитайте отново след няколко минути.")
	ErrForbiddenOrigin     = NewHTTPError(http.StatusForbidden, "origin_not_allowed", "Origin not allowed by CORS policy")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not_found", "Endpoint not found")
)
