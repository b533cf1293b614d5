package profile

import "errors"

var (
	ErrProfileNotFound  = errors.New("prompt profile not found")
	ErrDuplicateProfile = errors.New("prompt profile already exists")
	ErrInvalidPayload   = errors.New("invalid payload")
)
