package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "memory-agent/pkg/errors"
)

func (h *handler) processCreateProjectReq(c *gin.Context) (createProjectReq, error) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("%v", err)
	}
	return req, nil
}

func (h *handler) processCreateThreadReq(c *gin.Context) (createThreadReq, error) {
	var req createThreadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest("%v", err)
	}
	return req, nil
}
