package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows the status code it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewBadRequest formats a 400 HTTPError.
func NewBadRequest(format string, args ...any) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Processing failure")
)

// AsHTTPError reports whether err is (or wraps) an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
