package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "memory-agent/internal/agent/delivery/http"
	"memory-agent/internal/middleware"
	orchestrationHTTP "memory-agent/internal/orchestration/delivery/http"
	profileHTTP "memory-agent/internal/profile/delivery/http"
	projectHTTP "memory-agent/internal/project/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit, srv.showDetails)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(srv.gin.Group(apiBasePath, mw.RateLimit()))
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(mw.Recovery())

	ctx := context.Background()
	if srv.showDetails {
		srv.l.Infof(ctx, "Error details: exposed (%s)", srv.environment)
	} else {
		srv.l.Infof(ctx, "Error details: hidden (%s)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under api.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, details)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) registerDomainRoutes(api *gin.RouterGroup) error {
	ctx := context.Background()
	details := srv.showDetails

	agentHTTP.RegisterRoutes(api, agentHTTP.New(srv.l, srv.agentUC, details))
	orchestrationHTTP.RegisterRoutes(api, orchestrationHTTP.New(srv.l, srv.orchestrationUC, details))
	profileHTTP.RegisterRoutes(api, profileHTTP.New(srv.l, srv.profileUC, details))
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, srv.projectUC, apiBasePath, details))

	srv.l.Infof(ctx, "Domain routes registered under %s", apiBasePath)
	return nil
}
