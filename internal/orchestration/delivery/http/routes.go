package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.Group("/orchestration").POST("/run-plan", h.RunPlan)
}
