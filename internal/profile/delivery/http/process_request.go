package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("%v", err)
	}
	if err := req.validate(); err != nil {
		return req, pkgErrors.NewBadRequest("%v", err)
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("%v", err)
	}
	req.AgentType = c.Param("agentType")
	return req, nil
}
