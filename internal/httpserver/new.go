package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"memory-agent/config"
	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
	"memory-agent/internal/profile"
	"memory-agent/internal/project"
	"memory-agent/pkg/log"
)

const (
	apiBasePath     = "/api/v1"
	shutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	showDetails bool
	rateLimit   config.RateLimitConfig
	db          *sql.DB

	// Domains
	agentUC         agent.UseCase
	orchestrationUC orchestration.UseCase
	profileUC       profile.UseCase
	projectUC       project.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	// ShowDetails exposes internal error text in 500 responses.
	ShowDetails bool

	// DB backs the readiness probe.
	DB *sql.DB

	AgentUC         agent.UseCase
	OrchestrationUC orchestration.UseCase
	ProfileUC       profile.UseCase
	ProjectUC       project.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		showDetails:     cfg.ShowDetails,
		rateLimit:       cfg.RateLimit,
		db:              cfg.DB,
		agentUC:         cfg.AgentUC,
		orchestrationUC: cfg.OrchestrationUC,
		profileUC:       cfg.ProfileUC,
		projectUC:       cfg.ProjectUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentUC == nil || srv.orchestrationUC == nil || srv.profileUC == nil || srv.projectUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
