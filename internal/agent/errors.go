package agent

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid agent input")
	ErrThreadNotFound      = errors.New("thread not found")
	ErrValidationExhausted = errors.New("failed to generate valid output after retries")
	ErrProviderFailed      = errors.New("model or embedding provider failed")
	ErrPersistenceFailed   = errors.New("failed to persist agent run")
)
