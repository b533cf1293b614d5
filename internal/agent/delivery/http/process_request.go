package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memory-agent/internal/agent"
	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("invalid request: %v", err)
	}
	if strings.TrimSpace(req.AgentType) == "" || strings.TrimSpace(req.Prompt) == "" {
		return req, pkgErrors.NewBadRequest("agentType and prompt are required")
	}
	return req, nil
}

// processRunImageReq binds the multipart form fields and reads the image part.
func (h *handler) processRunImageReq(c *gin.Context) (agent.RunImageInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes+1<<20)

	var req runReq
	if err := c.ShouldBind(&req); err != nil {
		return agent.RunImageInput{}, pkgErrors.NewBadRequest("request data is required: %v", err)
	}

	fh, err := c.FormFile("image")
	if err != nil || fh.Size == 0 {
		return agent.RunImageInput{}, pkgErrors.NewBadRequest("image is required")
	}
	if fh.Size > maxImageBytes {
		return agent.RunImageInput{}, pkgErrors.NewBadRequest("image exceeds %d bytes", maxImageBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return agent.RunImageInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return agent.RunImageInput{}, err
	}

	return agent.RunImageInput{
		RunInput: req.toInput(),
		Image:    data,
		MIMEType: fh.Header.Get("Content-Type"),
	}, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest("invalid threadId")
	}
	if _, err := uuid.Parse(req.ThreadID); err != nil {
		return req, pkgErrors.NewBadRequest("invalid threadId")
	}
	return req, nil
}
