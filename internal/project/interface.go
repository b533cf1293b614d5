package project

import (
	"context"

	"memory-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)

	CreateThread(ctx context.Context, input CreateThreadInput) (model.Thread, error)
	ListThreads(ctx context.Context, projectID string) ([]model.Thread, error)
	DetailThread(ctx context.Context, id string) (model.Thread, error)

	// SeedDefaults creates the default project and its first thread when no
	// project with the default name exists. It reports whether anything was created.
	SeedDefaults(ctx context.Context) (bool, error)
}
