package usecase

import (
	"context"
	"fmt"
	"strings"

	"memory-agent/internal/agent"
	memRepo "memory-agent/internal/memory/repository"
	"memory-agent/internal/model"
	"memory-agent/pkg/embedding"
	"memory-agent/pkg/llmprovider"
)

const noMemoryFound = "No relevant memory found."

// retrieveMemory embeds text and renders the closest semantic entries of
// the thread as a bullet list.
func (uc *implUseCase) retrieveMemory(ctx context.Context, threadID, text string) (string, error) {
	query, err := embedding.EmbedOne(ctx, uc.embedder, text)
	if err != nil {
		return "", fmt.Errorf("%w: embed prompt: %w", agent.ErrProviderFailed, err)
	}

	found, err := uc.repo.SearchSimilar(ctx, memRepo.SearchSimilarOptions{
		ThreadID:  threadID,
		Embedding: query,
		TopN:      uc.opts.TopSimilarItems,
	})
	if err != nil {
		return "", fmt.Errorf("%w: search memory: %w", agent.ErrPersistenceFailed, err)
	}
	if len(found) == 0 {
		uc.l.Warnf(ctx, "agent.usecase: no memory entries found for thread %s", threadID)
	}
	return memoryBlock(found), nil
}

func memoryBlock(found []model.ScoredMemory) string {
	if len(found) == 0 {
		return noMemoryFound
	}
	lines := make([]string, len(found))
	for i, m := range found {
		lines[i] = "- " + m.Entry.Content
	}
	return strings.Join(lines, "\n")
}

// composePrompt fills the agent type's template, or falls back to a plain
// prompt plus memory layout when none is registered.
func (uc *implUseCase) composePrompt(ctx context.Context, agentType, prompt, memory string) (string, error) {
	template, ok, err := uc.profiles.GetTemplate(ctx, agentType)
	if err != nil {
		return "", fmt.Errorf("%w: load prompt profile: %w", agent.ErrPersistenceFailed, err)
	}
	if !ok || template == "" {
		return fmt.Sprintf("User prompt: %s\nRelevant memory:\n%s", prompt, memory), nil
	}
	// Single pass, so placeholders inside memory or prompt stay literal.
	return strings.NewReplacer("{memory}", memory, "{prompt}", prompt).Replace(template), nil
}

// buildRequest applies the per-run overrides on top of the defaults.
func (uc *implUseCase) buildRequest(input agent.RunInput, user llmprovider.Message, model string, maxTokens int) *llmprovider.Request {
	req := &llmprovider.Request{
		Messages:    []llmprovider.Message{user},
		Model:       model,
		Temperature: uc.opts.Temperature,
		MaxTokens:   maxTokens,
	}
	if input.Temperature != nil {
		req.Temperature = *input.Temperature
	}
	if input.Model != "" {
		req.Model = input.Model
	}
	if input.MaxTokens > 0 {
		req.MaxTokens = input.MaxTokens
	}
	if strings.TrimSpace(input.SystemMessage) != "" {
		sys := llmprovider.NewTextMessage(llmprovider.RoleSystem, input.SystemMessage)
		req.SystemInstruction = &sys
	}
	return req
}

func validateRunInput(input agent.RunInput) error {
	switch {
	case strings.TrimSpace(input.ThreadID) == "":
		return fmt.Errorf("%w: threadId is required", agent.ErrInvalidInput)
	case strings.TrimSpace(input.AgentType) == "":
		return fmt.Errorf("%w: agentType is required", agent.ErrInvalidInput)
	case strings.TrimSpace(input.Prompt) == "":
		return fmt.Errorf("%w: prompt is required", agent.ErrInvalidInput)
	}
	return nil
}

// loadThread fails with ErrThreadNotFound for unknown ids.
func (uc *implUseCase) loadThread(ctx context.Context, threadID string) (model.Thread, error) {
	thread, err := uc.repo.GetThread(ctx, threadID)
	if err != nil {
		return model.Thread{}, fmt.Errorf("%w: load thread: %w", agent.ErrPersistenceFailed, err)
	}
	if thread.ID == "" {
		return model.Thread{}, fmt.Errorf("%w: %s", agent.ErrThreadNotFound, threadID)
	}
	return thread, nil
}
