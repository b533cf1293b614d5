package usecase

import (
	"memory-agent/internal/orchestration"
	"memory-agent/internal/profile"
	"memory-agent/pkg/log"
)

// implUseCase is the private implementation of orchestration.UseCase.
type implUseCase struct {
	l        log.Logger
	runner   orchestration.Runner
	profiles profile.TemplateProvider
	plan     orchestration.Plan
}

// New creates a new orchestration UseCase for plan.
func New(l log.Logger, runner orchestration.Runner, profiles profile.TemplateProvider, plan orchestration.Plan) *implUseCase {
	return &implUseCase{
		l:        l,
		runner:   runner,
		profiles: profiles,
		plan:     plan,
	}
}
