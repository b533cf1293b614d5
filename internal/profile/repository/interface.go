package repository

import (
	"context"

	"memory-agent/internal/model"
)

// Repository is the data store of prompt profiles. Agent types are passed
// already normalized.
type Repository interface {
	CreateProfile(ctx context.Context, opt CreateProfileOptions) (model.PromptProfile, error)
	// GetProfile returns a zero-value profile (ID == "") when not found.
	GetProfile(ctx context.Context, agentType string) (model.PromptProfile, error)
	ListProfiles(ctx context.Context) ([]model.PromptProfile, error)
	// UpdateProfile returns a zero-value profile when not found.
	UpdateProfile(ctx context.Context, opt UpdateProfileOptions) (model.PromptProfile, error)
	// DeleteProfile reports whether a row was removed.
	DeleteProfile(ctx context.Context, agentType string) (bool, error)
}
