package http

import (
	"errors"
	"net/http"

	"memory-agent/internal/project"
	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrProjectNameRequired):
		return pkgErrors.NewBadRequest("Project name is required.")
	case errors.Is(err, project.ErrProjectIDRequired):
		return pkgErrors.NewBadRequest("ProjectId is required.")
	case errors.Is(err, project.ErrProjectNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case errors.Is(err, project.ErrThreadNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "thread not found")
	default:
		return err
	}
}
