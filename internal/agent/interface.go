package agent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Run executes the retry/validation loop and persists the validated turn.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
	// RunWithImage makes a single multimodal attempt and persists it.
	RunWithImage(ctx context.Context, input RunImageInput) (RunOutput, error)
	// History returns one page of a thread's turns, newest first.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}
