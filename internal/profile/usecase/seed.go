package usecase

import (
	"context"
	"errors"

	"memory-agent/internal/profile"
)

// SeedDefaults installs the built-in profiles that are not registered yet.
// Existing profiles are left untouched.
func (uc *implUseCase) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	for _, d := range profile.Defaults() {
		_, err := uc.Create(ctx, profile.CreateInput{AgentType: d.AgentType, Template: d.Template})
		if errors.Is(err, profile.ErrDuplicateProfile) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		uc.l.Infof(ctx, "uc.SeedDefaults: created %d prompt profiles", created)
	}
	return created, nil
}
