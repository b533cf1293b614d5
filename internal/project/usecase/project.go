package usecase

import (
	"context"
	"strings"

	"memory-agent/internal/model"
	"memory-agent/internal/project"
	repo "memory-agent/internal/project/repository"
)

func (uc *implUseCase) CreateProject(ctx context.Context, input project.CreateProjectInput) (model.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Project{}, project.ErrProjectNameRequired
	}

	p, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateProject: %v", err)
		return model.Project{}, err
	}
	return p, nil
}

func (uc *implUseCase) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProjects: %v", err)
		return nil, err
	}
	return projects, nil
}
