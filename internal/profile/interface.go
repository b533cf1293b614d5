package profile

import (
	"context"

	"memory-agent/internal/model"
)

// TemplateProvider resolves the prompt template registered for an agent type.
type TemplateProvider interface {
	// GetTemplate matches agentType case-insensitively and reports false
	// when no profile is registered.
	GetTemplate(ctx context.Context, agentType string) (string, bool, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	TemplateProvider

	// Profile CRUD, keyed by agent type
	Create(ctx context.Context, input CreateInput) (model.PromptProfile, error)
	List(ctx context.Context) ([]model.PromptProfile, error)
	Detail(ctx context.Context, agentType string) (model.PromptProfile, error)
	Update(ctx context.Context, input UpdateInput) (model.PromptProfile, error)
	Delete(ctx context.Context, agentType string) error

	// SeedDefaults creates the built-in profiles that are missing and
	// returns how many were created.
	SeedDefaults(ctx context.Context) (int, error)
}
