package http

import (
	"memory-agent/internal/orchestration"
	"memory-agent/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          orchestration.UseCase
	showDetails bool
}

// New creates a new HTTP handler for the orchestration domain.
func New(l log.Logger, uc orchestration.UseCase, showDetails bool) *handler {
	return &handler{l: l, uc: uc, showDetails: showDetails}
}
