package usecase

import (
	"context"
	"fmt"
	"strings"

	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
)

// RunPlan chains the plan's steps, feeding each step's output into the
// next prompt. Steps without a registered profile are skipped. A failure
// inside an executed step aborts the whole plan.
func (uc *implUseCase) RunPlan(ctx context.Context, input orchestration.RunPlanInput) (orchestration.RunPlanOutput, error) {
	if strings.TrimSpace(input.ThreadID) == "" || strings.TrimSpace(input.Prompt) == "" {
		return orchestration.RunPlanOutput{}, fmt.Errorf("%w: threadId and prompt are required", orchestration.ErrInvalidInput)
	}
	if len(uc.plan.Steps) == 0 {
		return orchestration.RunPlanOutput{}, orchestration.ErrEmptyPlan
	}

	out := orchestration.RunPlanOutput{Tasks: []orchestration.TaskResult{}}
	previous := ""

	for i, step := range uc.plan.Steps {
		if err := ctx.Err(); err != nil {
			return orchestration.RunPlanOutput{}, err
		}

		_, ok, err := uc.profiles.GetTemplate(ctx, step.AgentType)
		if err != nil {
			return orchestration.RunPlanOutput{}, fmt.Errorf("%w: %s: %w", orchestration.ErrStepFailed, step.AgentType, err)
		}
		if !ok {
			uc.l.Warnf(ctx, "orchestration.usecase.RunPlan: no prompt profile for %s, skipping step %d/%d", step.AgentType, i+1, len(uc.plan.Steps))
			continue
		}

		uc.l.Infof(ctx, "orchestration.usecase.RunPlan: step %d/%d agentType=%s", i+1, len(uc.plan.Steps), step.AgentType)
		res, err := uc.runner.Run(ctx, agent.RunInput{
			ThreadID:      input.ThreadID,
			AgentType:     step.AgentType,
			Prompt:        step.Render(input.Prompt) + orchestration.PreviousResultLabel + previous,
			SystemMessage: input.SystemMessage,
			Model:         input.Model,
			Temperature:   input.Temperature,
			MaxTokens:     input.MaxTokens,
		})
		if err != nil {
			uc.l.Errorf(ctx, "orchestration.usecase.RunPlan: %s: %v", step.AgentType, err)
			return orchestration.RunPlanOutput{}, fmt.Errorf("%w: %s: %w", orchestration.ErrStepFailed, step.AgentType, err)
		}

		out.Tasks = append(out.Tasks, orchestration.TaskResult{AgentType: step.AgentType, Output: res.Response})
		previous = res.Response
	}

	if len(out.Tasks) == 0 {
		uc.l.Warnf(ctx, "orchestration.usecase.RunPlan: no step had a prompt profile")
	}
	out.FinalOutput = previous
	return out, nil
}
