package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) processRunPlanReq(c *gin.Context) (runPlanReq, error) {
	var req runPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("invalid request: %v", err)
	}
	return req, nil
}
