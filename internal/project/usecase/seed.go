package usecase

import (
	"context"

	"memory-agent/internal/project"
)

// SeedDefaults is a no-op once a project with the default name exists.
func (uc *implUseCase) SeedDefaults(ctx context.Context) (bool, error) {
	existing, err := uc.repo.FindProjectByName(ctx, project.DefaultProjectName)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SeedDefaults FindProjectByName: %v", err)
		return false, err
	}
	if existing.ID != "" {
		return false, nil
	}

	p, err := uc.CreateProject(ctx, project.CreateProjectInput{Name: project.DefaultProjectName})
	if err != nil {
		return false, err
	}
	t, err := uc.CreateThread(ctx, project.CreateThreadInput{ProjectID: p.ID, Name: project.DefaultThreadName})
	if err != nil {
		return false, err
	}

	uc.l.Infof(ctx, "uc.SeedDefaults: created project %s with thread %s", p.ID, t.ID)
	return true, nil
}
