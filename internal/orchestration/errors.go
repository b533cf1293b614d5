package orchestration

import "errors"

var (
	ErrInvalidInput = errors.New("invalid orchestration input")
	ErrEmptyPlan    = errors.New("orchestration plan has no steps")
	ErrStepFailed   = errors.New("orchestration step failed")
)
