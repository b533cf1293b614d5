package model

import "time"

// PromptProfile binds an agent type to a template containing the
// {memory} and {prompt} placeholders. AgentType is stored lowercased.
type PromptProfile struct {
	ID        string
	AgentType string
	Template  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
