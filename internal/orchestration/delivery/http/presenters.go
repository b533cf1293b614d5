package http

import "memory-agent/internal/orchestration"

// --- Request DTOs ---

type runPlanReq struct {
	ThreadID      string   `json:"threadId"      binding:"required"`
	AgentType     string   `json:"agentType"` // accepted for symmetry with agent/run, ignored
	Prompt        string   `json:"prompt"        binding:"required"`
	SystemMessage string   `json:"systemMessage"`
	Model         string   `json:"model"`
	Temperature   *float64 `json:"temperature"   binding:"omitempty,min=0,max=2"`
	MaxTokens     *int     `json:"maxTokens"     binding:"omitempty,min=100,max=8000"`
}

func (r runPlanReq) toInput() orchestration.RunPlanInput {
	in := orchestration.RunPlanInput{
		ThreadID:      r.ThreadID,
		Prompt:        r.Prompt,
		SystemMessage: r.SystemMessage,
		Model:         r.Model,
		Temperature:   r.Temperature,
	}
	if r.MaxTokens != nil {
		in.MaxTokens = *r.MaxTokens
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	AgentType string `json:"agentType"`
	Output    string `json:"output"`
}

type runPlanResp struct {
	FinalOutput string     `json:"finalOutput"`
	Tasks       []taskResp `json:"tasks"`
}

func (h *handler) newRunPlanResp(out orchestration.RunPlanOutput) runPlanResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = taskResp{AgentType: t.AgentType, Output: t.Output}
	}
	return runPlanResp{FinalOutput: out.FinalOutput, Tasks: tasks}
}
