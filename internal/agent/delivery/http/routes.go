package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the agent endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	a := rg.Group("/agent")
	{
		a.POST("/run", h.Run)
		a.POST("/run-image", h.RunImage)
		a.GET("/history", h.History)
	}
}
