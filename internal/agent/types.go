package agent

import "memory-agent/internal/model"

// --- UseCase Inputs ---

// RunInput is one agent invocation. Zero values of Model and MaxTokens,
// and a nil Temperature, fall back to the configured defaults.
type RunInput struct {
	ThreadID      string
	AgentType     string
	Prompt        string
	SystemMessage string
	Model         string
	Temperature   *float64
	MaxTokens     int
}

// RunImageInput is a RunInput with an attached image.
type RunImageInput struct {
	RunInput
	Image    []byte
	MIMEType string // sniffed from Image when empty
}

type HistoryInput struct {
	ThreadID string
	Page     int // 1-based, values below 1 mean 1
}

// --- UseCase Outputs ---

type RunOutput struct {
	Response string
}

type HistoryOutput struct {
	Messages []model.MemoryEntry
	Page     int
	PageSize int
}
