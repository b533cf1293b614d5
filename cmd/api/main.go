package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"memory-agent/config"
	"memory-agent/internal/app"
	"memory-agent/internal/httpserver"
	"memory-agent/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Memory Agent API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := app.OpenDB(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Domains
	a, err := app.New(ctx, cfg, db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize domains: ", err)
		return
	}

	if cfg.Database.SeedOnStart {
		profiles, projectCreated, err := a.Seed(ctx)
		if err != nil {
			logger.Error(ctx, "Failed to seed defaults: ", err)
			return
		}
		logger.Infof(ctx, "Seeded %d prompt profiles (default project created: %v)", profiles, projectCreated)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		ShowDetails:     cfg.Environment.IsDevelopment(),
		DB:              db,
		AgentUC:         a.Agent,
		OrchestrationUC: a.Orchestration,
		ProfileUC:       a.Profile,
		ProjectUC:       a.Project,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
