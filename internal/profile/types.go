package profile

import "strings"

// --- UseCase Inputs ---

type CreateInput struct {
	AgentType string
	Template  string
}

type UpdateInput struct {
	AgentType string
	Template  string
}

// NormalizeAgentType is the storage key of an agent type.
func NormalizeAgentType(agentType string) string {
	return strings.ToLower(strings.TrimSpace(agentType))
}
