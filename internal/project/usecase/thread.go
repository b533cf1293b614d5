package usecase

import (
	"context"
	"errors"
	"strings"

	"memory-agent/internal/model"
	"memory-agent/internal/project"
	repo "memory-agent/internal/project/repository"
)

// CreateThread opens a thread under an existing project.
func (uc *implUseCase) CreateThread(ctx context.Context, input project.CreateThreadInput) (model.Thread, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return model.Thread{}, project.ErrProjectIDRequired
	}

	p, err := uc.repo.GetProject(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateThread GetProject: %v", err)
		return model.Thread{}, err
	}
	if p.ID == "" {
		return model.Thread{}, project.ErrProjectNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = project.UntitledThreadName
	}

	t, err := uc.repo.CreateThread(ctx, repo.CreateThreadOptions{ProjectID: p.ID, Name: name})
	if errors.Is(err, repo.ErrUnknownProject) {
		// project removed between the lookup and the insert
		return model.Thread{}, project.ErrProjectNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateThread CreateThread: %v", err)
		return model.Thread{}, err
	}
	return t, nil
}

func (uc *implUseCase) ListThreads(ctx context.Context, projectID string) ([]model.Thread, error) {
	threads, err := uc.repo.ListThreads(ctx, repo.ListThreadsOptions{ProjectID: projectID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListThreads: %v", err)
		return nil, err
	}
	return threads, nil
}

func (uc *implUseCase) DetailThread(ctx context.Context, id string) (model.Thread, error) {
	t, err := uc.repo.GetThread(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailThread: %v", err)
		return model.Thread{}, err
	}
	if t.ID == "" {
		return model.Thread{}, project.ErrThreadNotFound
	}
	return t, nil
}
