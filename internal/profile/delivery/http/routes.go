package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the profile endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.Create)
		profiles.GET("", h.List)
		profiles.GET("/:agentType", h.Detail)
		profiles.PUT("/:agentType", h.Update)
		profiles.DELETE("/:agentType", h.Delete)
	}
}
