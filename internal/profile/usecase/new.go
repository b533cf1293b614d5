package usecase

import (
	"memory-agent/internal/profile/repository"
	"memory-agent/pkg/log"
)

// implUseCase is the private implementation of profile.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
