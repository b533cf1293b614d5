package http

import (
	"errors"
	"net/http"

	"memory-agent/internal/profile"
	pkgErrors "memory-agent/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Unknown errors are
// returned unchanged and rendered as processing failures.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "prompt profile not found")
	case errors.Is(err, profile.ErrDuplicateProfile):
		return pkgErrors.NewHTTPError(http.StatusConflict, "prompt profile already exists")
	case errors.Is(err, profile.ErrInvalidPayload):
		return pkgErrors.NewBadRequest("agentType and template are required")
	default:
		return err
	}
}
