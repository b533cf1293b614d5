package http

import (
	"errors"
	"net/http"

	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, orchestration.ErrInvalidInput), errors.Is(err, agent.ErrInvalidInput):
		return pkgErrors.NewBadRequest("%v", err)
	case errors.Is(err, agent.ErrThreadNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "thread not found")
	default:
		return err
	}
}
