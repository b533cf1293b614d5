package usecase

import (
	"context"
	"fmt"

	"memory-agent/internal/agent"
	"memory-agent/pkg/llmprovider"
)

const imagePromptPrefix = "[Image + Prompt] "

// RunWithImage sends the prompt and the image in a single attempt. The
// answer is not format-validated.
func (uc *implUseCase) RunWithImage(ctx context.Context, input agent.RunImageInput) (agent.RunOutput, error) {
	if err := validateRunInput(input.RunInput); err != nil {
		return agent.RunOutput{}, err
	}
	if len(input.Image) == 0 {
		return agent.RunOutput{}, fmt.Errorf("%w: image is required", agent.ErrInvalidInput)
	}
	if _, err := uc.loadThread(ctx, input.ThreadID); err != nil {
		return agent.RunOutput{}, err
	}

	memory, err := uc.retrieveMemory(ctx, input.ThreadID, input.Prompt)
	if err != nil {
		return agent.RunOutput{}, err
	}
	userPrompt, err := uc.composePrompt(ctx, input.AgentType, input.Prompt, memory)
	if err != nil {
		return agent.RunOutput{}, err
	}

	user := llmprovider.Message{
		Role: llmprovider.RoleUser,
		Parts: []llmprovider.Part{
			{Text: userPrompt},
			{Image: &llmprovider.Image{MIMEType: input.MIMEType, Data: input.Image}},
		},
	}
	req := uc.buildRequest(input.RunInput, user, uc.opts.ImageModel, uc.opts.ImageMaxTokens)

	uc.l.Infof(ctx, "agent.usecase.RunWithImage: sending image prompt, model=%s threadId=%s", req.Model, input.ThreadID)
	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "agent.usecase.RunWithImage: %v", err)
		return agent.RunOutput{}, fmt.Errorf("%w: %w", agent.ErrProviderFailed, err)
	}
	text := resp.Content.Text()

	if err := uc.persist(ctx, turn{
		threadID:  input.ThreadID,
		user:      imagePromptPrefix + input.Prompt,
		assistant: text,
	}); err != nil {
		return agent.RunOutput{}, err
	}

	return agent.RunOutput{Response: text}, nil
}
