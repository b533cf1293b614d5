package http

import (
	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// ListProjects returns every project.
// GET /api/v1/projects
func (h *handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.ListProjects(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newProjectListResp(projects))
}

// ListProjectsWithLinks returns every project with its navigation links.
// GET /api/v1/projects/hateoas
func (h *handler) ListProjectsWithLinks(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.uc.ListProjects(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListProjects: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newProjectLinksResp(projects))
}

// CreateProject
// POST /api/v1/projects
func (h *handler) CreateProject(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateProjectReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	p, err := h.uc.CreateProject(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateProject: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, newProjectResp(p))
}

// CreateThread
// POST /api/v1/threads
func (h *handler) CreateThread(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateThreadReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	t, err := h.uc.CreateThread(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateThread: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newThreadDetailResp(t))
}

// ListThreads
// GET /api/v1/threads/project/:projectId
func (h *handler) ListThreads(c *gin.Context) {
	ctx := c.Request.Context()

	threads, err := h.uc.ListThreads(ctx, c.Param("projectId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListThreads: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newThreadListResp(threads))
}

// DetailThread
// GET /api/v1/threads/:id
func (h *handler) DetailThread(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.DetailThread(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.DetailThread: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newThreadDetailResp(t))
}
