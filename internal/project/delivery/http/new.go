package http

import (
	"memory-agent/internal/model"
	"memory-agent/internal/project"
	"memory-agent/pkg/hateoas"
	"memory-agent/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          project.UseCase
	showDetails bool

	projectLinks *hateoas.Registry[model.Project]
	threadLinks  *hateoas.Registry[model.Thread]
}

// New creates a new HTTP handler for projects and threads. basePath is the
// API prefix used in generated links, e.g. "/api/v1".
func New(l log.Logger, uc project.UseCase, basePath string, showDetails bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		showDetails:  showDetails,
		projectLinks: newProjectLinks(basePath),
		threadLinks:  newThreadLinks(basePath),
	}
}

func newProjectLinks(base string) *hateoas.Registry[model.Project] {
	return hateoas.New(base,
		hateoas.Self(func(p model.Project) string { return "/projects/" + p.ID }),
		hateoas.To("threads", "GET", func(p model.Project) string { return "/threads/project/" + p.ID }),
	)
}

func newThreadLinks(base string) *hateoas.Registry[model.Thread] {
	return hateoas.New(base,
		hateoas.Self(func(t model.Thread) string { return "/threads/" + t.ID }),
		hateoas.To("project", "GET", func(t model.Thread) string { return "/projects/" + t.ProjectID }),
	)
}
