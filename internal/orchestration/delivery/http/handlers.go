package http

import (
	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// RunPlan executes the configured multi-agent pipeline.
// POST /api/v1/orchestration/run-plan
func (h *handler) RunPlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunPlanReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	out, err := h.uc.RunPlan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RunPlan: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newRunPlanResp(out))
}
