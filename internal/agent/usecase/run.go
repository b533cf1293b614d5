package usecase

import (
	"context"
	"fmt"

	"memory-agent/internal/agent"
	"memory-agent/internal/agent/validation"
	"memory-agent/pkg/llmprovider"
)

// Run drives BuildPrompt → Invoke → Validate for at most MaxRetries
// attempts. An invalid answer turns the prompt into a feedback prompt for
// the next attempt. Provider errors are absorbed the same way except on
// the final attempt. Only the successful attempt's prompt and answer are
// persisted.
func (uc *implUseCase) Run(ctx context.Context, input agent.RunInput) (agent.RunOutput, error) {
	if err := validateRunInput(input); err != nil {
		return agent.RunOutput{}, err
	}
	if _, err := uc.loadThread(ctx, input.ThreadID); err != nil {
		return agent.RunOutput{}, err
	}

	maxRetries := uc.opts.MaxRetries
	currentPrompt := input.Prompt
	var (
		answer string
		valid  bool
	)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return agent.RunOutput{}, err
		}
		uc.l.Infof(ctx, "agent.usecase.Run: attempt %d/%d agentType=%s threadId=%s", attempt, maxRetries, input.AgentType, input.ThreadID)

		text, err := uc.attempt(ctx, input, currentPrompt)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return agent.RunOutput{}, ctxErr
			}
			if attempt == maxRetries {
				uc.l.Errorf(ctx, "agent.usecase.Run: attempt %d/%d failed: %v", attempt, maxRetries, err)
				return agent.RunOutput{}, err
			}
			uc.l.Warnf(ctx, "agent.usecase.Run: attempt %d/%d failed, retrying: %v", attempt, maxRetries, err)
			continue
		}

		result := uc.validator.Validate(text)
		if result.Valid {
			uc.l.Infof(ctx, "agent.usecase.Run: valid response on attempt %d, %d chars", attempt, len(text))
			answer, valid = text, true
			break
		}

		uc.l.Warnf(ctx, "agent.usecase.Run: attempt %d/%d: invalid output format %v", attempt, maxRetries, result.Diagnostics)
		currentPrompt = validation.BuildFeedbackPrompt(currentPrompt, text)
	}

	if !valid {
		uc.l.Errorf(ctx, "agent.usecase.Run: no valid output after %d attempts", maxRetries)
		return agent.RunOutput{}, fmt.Errorf("%w: %d attempts", agent.ErrValidationExhausted, maxRetries)
	}

	if err := uc.persist(ctx, turn{
		threadID:  input.ThreadID,
		user:      currentPrompt,
		assistant: answer,
	}); err != nil {
		return agent.RunOutput{}, err
	}

	return agent.RunOutput{Response: answer}, nil
}

// attempt performs one retrieval and one model call for prompt.
func (uc *implUseCase) attempt(ctx context.Context, input agent.RunInput, prompt string) (string, error) {
	memory, err := uc.retrieveMemory(ctx, input.ThreadID, prompt)
	if err != nil {
		return "", err
	}

	userPrompt, err := uc.composePrompt(ctx, input.AgentType, prompt, memory)
	if err != nil {
		return "", err
	}

	req := uc.buildRequest(input, llmprovider.NewTextMessage(llmprovider.RoleUser, userPrompt), uc.opts.Model, uc.opts.MaxTokens)
	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", agent.ErrProviderFailed, err)
	}
	return resp.Content.Text(), nil
}
