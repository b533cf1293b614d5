package http

import (
	"memory-agent/internal/profile"
	"memory-agent/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          profile.UseCase
	showDetails bool
}

// New creates a new HTTP handler for the profile domain. showDetails
// exposes internal error text and is meant for development only.
func New(l log.Logger, uc profile.UseCase, showDetails bool) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		showDetails: showDetails,
	}
}
