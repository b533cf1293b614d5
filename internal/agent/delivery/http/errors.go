package http

import (
	"errors"
	"net/http"

	"memory-agent/internal/agent"
	pkgErrors "memory-agent/pkg/errors"
)

// mapError translates use-case errors into HTTP errors. Anything not
// listed is a processing failure.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrInvalidInput):
		return pkgErrors.NewBadRequest("%v", err)
	case errors.Is(err, agent.ErrThreadNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "thread not found")
	default:
		return err
	}
}
