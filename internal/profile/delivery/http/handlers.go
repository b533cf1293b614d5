package http

import (
	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// Create registers a prompt profile.
// POST /api/v1/profiles
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	p, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, newProfileResp(p))
}

// List returns every registered profile.
// GET /api/v1/profiles
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	profiles, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newListResp(profiles))
}

// Detail returns one profile, matched case-insensitively.
// GET /api/v1/profiles/:agentType
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Detail(ctx, c.Param("agentType"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, newProfileResp(p))
}

// Update replaces a profile's template.
// PUT /api/v1/profiles/:agentType
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	p, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, newProfileResp(p))
}

// Delete removes a profile.
// DELETE /api/v1/profiles/:agentType
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("agentType")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, nil)
}
