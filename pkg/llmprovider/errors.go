package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	// ErrEmptyResponse is returned when a provider answers without any content.
	ErrEmptyResponse = errors.New("empty response")
)

// ProviderError is a failure attributed to one provider.
type ProviderError struct {
	Provider   string
	StatusCode int // 0 when the failure happened before a response was received
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the same request may succeed.
// Client errors other than 408 and 429 are permanent.
func (e *ProviderError) Retryable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= http.StatusInternalServerError
	}
}

// isRetryable treats errors without provider attribution as transient.
func isRetryable(err error) bool {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr.Retryable()
	}
	return true
}
