package http

import (
	"memory-agent/internal/agent"
	"memory-agent/pkg/log"
)

// maxImageBytes bounds uploaded images.
const maxImageBytes = 20 << 20

type handler struct {
	l           log.Logger
	uc          agent.UseCase
	showDetails bool
}

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc agent.UseCase, showDetails bool) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		showDetails: showDetails,
	}
}
