// Package app wires configuration into the storage, provider and domain
// layers shared by the API server and the CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"memory-agent/config"
	"memory-agent/internal/agent"
	agentUC "memory-agent/internal/agent/usecase"
	memRepo "memory-agent/internal/memory/repository"
	memSQLite "memory-agent/internal/memory/repository/sqlite"
	"memory-agent/internal/orchestration"
	orchestrationUC "memory-agent/internal/orchestration/usecase"
	"memory-agent/internal/profile"
	profileSQLite "memory-agent/internal/profile/repository/sqlite"
	profileUC "memory-agent/internal/profile/usecase"
	"memory-agent/internal/project"
	projectSQLite "memory-agent/internal/project/repository/sqlite"
	projectUC "memory-agent/internal/project/usecase"
	"memory-agent/pkg/embedding"
	"memory-agent/pkg/llmprovider"
	"memory-agent/pkg/log"
	pkgsqlite "memory-agent/pkg/sqlite"
)

// App holds the initialized dependencies.
type App struct {
	DB       *sql.DB
	Memory   memRepo.Repository
	Embedder embedding.Embedder

	Agent         agent.UseCase
	Orchestration orchestration.UseCase
	Profile       profile.UseCase
	Project       project.UseCase
}

// OpenDB connects to the configured database and applies the schema.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := pkgsqlite.Connect(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := pkgsqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// New builds every domain on top of db.
func New(ctx context.Context, cfg *config.Config, db *sql.DB, l log.Logger) (*App, error) {
	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm manager: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	for _, p := range providers {
		l.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	embedder, err := embedding.New(cfg.Embedding)
	if err != nil {
		return nil, err
	}

	memory := memSQLite.New(db, l)
	profiles := profileUC.New(profileSQLite.New(db, l), l)
	projects := projectUC.New(projectSQLite.New(db, l), l)

	agents := agentUC.New(l, memory, profiles, manager, embedder, nil, agentUC.Options{
		MaxRetries:      cfg.Agent.MaxRetries,
		TopSimilarItems: cfg.Agent.TopSimilarItems,
		PageSize:        cfg.Agent.PageSize,
		Temperature:     cfg.Agent.Temperature,
		MaxTokens:       cfg.Agent.MaxTokens,
		Model:           cfg.Agent.Model,
		ImageModel:      llmprovider.ResolveImageModel(cfg.Agent.ImageModel, providers),
		ImageMaxTokens:  cfg.Agent.ImageMaxTokens,
	})

	return &App{
		DB:            db,
		Memory:        memory,
		Embedder:      embedder,
		Agent:         agents,
		Orchestration: orchestrationUC.New(l, agents, profiles, PlanFromConfig(cfg.Orchestration)),
		Profile:       profiles,
		Project:       projects,
	}, nil
}

// PlanFromConfig converts the configured steps, falling back to the default plan.
func PlanFromConfig(cfg config.OrchestrationConfig) orchestration.Plan {
	if len(cfg.Steps) == 0 {
		return orchestration.DefaultPlan()
	}
	plan := orchestration.Plan{Steps: make([]orchestration.Step, len(cfg.Steps))}
	for i, s := range cfg.Steps {
		plan.Steps[i] = orchestration.Step{AgentType: s.AgentType, PromptTemplate: s.PromptTemplate}
	}
	return plan
}

// Seed installs the default prompt profiles and the default project.
func (a *App) Seed(ctx context.Context) (profiles int, projectCreated bool, err error) {
	profiles, err = a.Profile.SeedDefaults(ctx)
	if err != nil {
		return profiles, false, fmt.Errorf("seed profiles: %w", err)
	}
	projectCreated, err = a.Project.SeedDefaults(ctx)
	if err != nil {
		return profiles, false, fmt.Errorf("seed project: %w", err)
	}
	return profiles, projectCreated, nil
}
