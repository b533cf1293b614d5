package http

import (
	"errors"
	"strings"
	"time"

	"memory-agent/internal/model"
	"memory-agent/internal/profile"
)

// --- Request DTOs ---

type createReq struct {
	AgentType string `json:"agentType" binding:"required"`
	Template  string `json:"template"  binding:"required"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.AgentType) == "" {
		return errors.New("agentType is required")
	}
	return nil
}

func (r createReq) toInput() profile.CreateInput {
	return profile.CreateInput{AgentType: r.AgentType, Template: r.Template}
}

type updateReq struct {
	AgentType string `json:"-"` // populated from URI param
	Template  string `json:"template" binding:"required"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{AgentType: r.AgentType, Template: r.Template}
}

// --- Response DTOs ---

type profileResp struct {
	ID        string    `json:"id"`
	AgentType string    `json:"agentType"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newProfileResp(p model.PromptProfile) profileResp {
	return profileResp{
		ID:        p.ID,
		AgentType: p.AgentType,
		Template:  p.Template,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type listResp struct {
	Profiles []profileResp `json:"profiles"`
}

func (h *handler) newListResp(profiles []model.PromptProfile) listResp {
	out := make([]profileResp, len(profiles))
	for i, p := range profiles {
		out[i] = newProfileResp(p)
	}
	return listResp{Profiles: out}
}
