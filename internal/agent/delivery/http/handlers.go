package http

import (
	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// Run sends a prompt to an agent with memory retrieval and output validation.
// POST /api/v1/agent/run
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	out, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, runResp{Response: out.Response})
}

// RunImage sends an image plus prompt in a single attempt.
// POST /api/v1/agent/run-image (multipart/form-data, file field "image")
func (h *handler) RunImage(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRunImageReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	out, err := h.uc.RunWithImage(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.RunWithImage: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, runResp{Response: out.Response})
}

// History returns one page of a thread's messages, newest first.
// GET /api/v1/agent/history?threadId=&page=
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Render(c, err, h.showDetails)
		return
	}

	out, err := h.uc.History(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.History: %v", err)
		response.Render(c, h.mapError(err), h.showDetails)
		return
	}

	response.OK(c, h.newHistoryResp(out))
}
