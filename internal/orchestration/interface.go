package orchestration

import (
	"context"

	"memory-agent/internal/agent"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RunPlan executes every step of the plan in order against one thread.
	RunPlan(ctx context.Context, input RunPlanInput) (RunPlanOutput, error)
}

// Runner executes a single agent step.
type Runner interface {
	Run(ctx context.Context, input agent.RunInput) (agent.RunOutput, error)
}
