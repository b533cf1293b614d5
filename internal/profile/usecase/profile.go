package usecase

import (
	"context"
	"errors"
	"strings"

	"memory-agent/internal/model"
	"memory-agent/internal/profile"
	repo "memory-agent/internal/profile/repository"
)

// Create registers a template for a new agent type.
func (uc *implUseCase) Create(ctx context.Context, input profile.CreateInput) (model.PromptProfile, error) {
	agentType := profile.NormalizeAgentType(input.AgentType)
	if agentType == "" || strings.TrimSpace(input.Template) == "" {
		return model.PromptProfile{}, profile.ErrInvalidPayload
	}

	existing, err := uc.repo.GetProfile(ctx, agentType)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetProfile: %v", err)
		return model.PromptProfile{}, err
	}
	if existing.ID != "" {
		return model.PromptProfile{}, profile.ErrDuplicateProfile
	}

	p, err := uc.repo.CreateProfile(ctx, repo.CreateProfileOptions{AgentType: agentType, Template: input.Template})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.PromptProfile{}, profile.ErrDuplicateProfile
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProfile: %v", err)
		return model.PromptProfile{}, err
	}
	return p, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.PromptProfile, error) {
	profiles, err := uc.repo.ListProfiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProfiles: %v", err)
		return nil, err
	}
	return profiles, nil
}

func (uc *implUseCase) Detail(ctx context.Context, agentType string) (model.PromptProfile, error) {
	p, err := uc.repo.GetProfile(ctx, profile.NormalizeAgentType(agentType))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetProfile: %v", err)
		return model.PromptProfile{}, err
	}
	if p.ID == "" {
		return model.PromptProfile{}, profile.ErrProfileNotFound
	}
	return p, nil
}

func (uc *implUseCase) Update(ctx context.Context, input profile.UpdateInput) (model.PromptProfile, error) {
	if strings.TrimSpace(input.Template) == "" {
		return model.PromptProfile{}, profile.ErrInvalidPayload
	}

	p, err := uc.repo.UpdateProfile(ctx, repo.UpdateProfileOptions{
		AgentType: profile.NormalizeAgentType(input.AgentType),
		Template:  input.Template,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateProfile: %v", err)
		return model.PromptProfile{}, err
	}
	if p.ID == "" {
		return model.PromptProfile{}, profile.ErrProfileNotFound
	}
	return p, nil
}

func (uc *implUseCase) Delete(ctx context.Context, agentType string) error {
	deleted, err := uc.repo.DeleteProfile(ctx, profile.NormalizeAgentType(agentType))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProfile: %v", err)
		return err
	}
	if !deleted {
		return profile.ErrProfileNotFound
	}
	return nil
}

// GetTemplate looks the profile up by its normalized agent type.
func (uc *implUseCase) GetTemplate(ctx context.Context, agentType string) (string, bool, error) {
	p, err := uc.repo.GetProfile(ctx, profile.NormalizeAgentType(agentType))
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTemplate GetProfile: %v", err)
		return "", false, err
	}
	if p.ID == "" {
		return "", false, nil
	}
	return p.Template, true, nil
}
