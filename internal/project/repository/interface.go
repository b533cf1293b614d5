package repository

import (
	"context"

	"memory-agent/internal/model"
)

// Repository is the data store of projects and their threads.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	// GetProject returns a zero-value project (ID == "") when not found.
	GetProject(ctx context.Context, id string) (model.Project, error)
	// FindProjectByName returns the oldest project with that exact name, or a zero value.
	FindProjectByName(ctx context.Context, name string) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)

	CreateThread(ctx context.Context, opt CreateThreadOptions) (model.Thread, error)
	// GetThread returns a zero-value thread when not found.
	GetThread(ctx context.Context, id string) (model.Thread, error)
	ListThreads(ctx context.Context, opt ListThreadsOptions) ([]model.Thread, error)
}
