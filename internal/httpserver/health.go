package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"memory-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "memory-agent"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the database answers a ping.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.db != nil {
		if err := srv.db.PingContext(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "database unavailable",
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
