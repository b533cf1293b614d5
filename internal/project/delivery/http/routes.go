package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the project and thread endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/hateoas", h.ListProjectsWithLinks)
	}

	threads := rg.Group("/threads")
	{
		threads.POST("", h.CreateThread)
		threads.GET("/project/:projectId", h.ListThreads)
		threads.GET("/:id", h.DetailThread)
	}
}
