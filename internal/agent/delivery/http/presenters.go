package http

import (
	"time"

	"memory-agent/internal/agent"
	"memory-agent/internal/model"
)

// --- Request DTOs ---

type runReq struct {
	ThreadID      string   `json:"threadId"      form:"threadId"      binding:"required"`
	AgentType     string   `json:"agentType"     form:"agentType"     binding:"required"`
	Prompt        string   `json:"prompt"        form:"prompt"        binding:"required"`
	SystemMessage string   `json:"systemMessage" form:"systemMessage"`
	Model         string   `json:"model"         form:"model"`
	Temperature   *float64 `json:"temperature"   form:"temperature"   binding:"omitempty,min=0,max=2"`
	MaxTokens     *int     `json:"maxTokens"     form:"maxTokens"     binding:"omitempty,min=100,max=8000"`
}

func (r runReq) toInput() agent.RunInput {
	in := agent.RunInput{
		ThreadID:      r.ThreadID,
		AgentType:     r.AgentType,
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

type historyReq struct {
	ThreadID string `form:"threadId" binding:"required"`
	Page     int    `form:"page"`
}

func (r historyReq) toInput() agent.HistoryInput {
	return agent.HistoryInput{ThreadID: r.ThreadID, Page: r.Page}
}

// --- Response DTOs ---

type runResp struct {
	Response string `json:"response"`
}

type messageResp struct {
	ID        int64     `json:"id"`
	ThreadID  string    `json:"threadId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func (h *handler) newHistoryResp(out agent.HistoryOutput) historyResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = newMessageResp(m)
	}
	return historyResp{Messages: msgs, Page: out.Page, PageSize: out.PageSize}
}

func newMessageResp(m model.MemoryEntry) messageResp {
	return messageResp{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
