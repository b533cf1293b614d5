package http

import (
	"time"

	"memory-agent/internal/model"
	"memory-agent/internal/project"
	"memory-agent/pkg/hateoas"
)

// --- Request DTOs ---

type createProjectReq struct {
	Name string `json:"name"`
}

func (r createProjectReq) toInput() project.CreateProjectInput {
	return project.CreateProjectInput{Name: r.Name}
}

type createThreadReq struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

func (r createThreadReq) toInput() project.CreateThreadInput {
	return project.CreateThreadInput{ProjectID: r.ProjectID, Name: r.Name}
}

// --- Response DTOs ---

type projectResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

type projectLinkResp struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Links []hateoas.Link `json:"links"`
}

type threadResp struct {
	ID        string         `json:"id"`
	ProjectID string         `json:"projectId"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Links     []hateoas.Link `json:"links,omitempty"`
}

func newThreadResp(t model.Thread) threadResp {
	return threadResp{ID: t.ID, ProjectID: t.ProjectID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func (h *handler) newProjectListResp(projects []model.Project) []projectResp {
	out := make([]projectResp, len(projects))
	for i, p := range projects {
		out[i] = newProjectResp(p)
	}
	return out
}

func (h *handler) newProjectLinksResp(projects []model.Project) []projectLinkResp {
	out := make([]projectLinkResp, len(projects))
	for i, p := range projects {
		out[i] = projectLinkResp{ID: p.ID, Name: p.Name, Links: h.projectLinks.Links(p)}
	}
	return out
}

func (h *handler) newThreadListResp(threads []model.Thread) []threadResp {
	out := make([]threadResp, len(threads))
	for i, t := range threads {
		out[i] = newThreadResp(t)
	}
	return out
}

func (h *handler) newThreadDetailResp(t model.Thread) threadResp {
	resp := newThreadResp(t)
	resp.Links = h.threadLinks.Links(t)
	return resp
}
