package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memory-agent/config"
	"memory-agent/internal/app"
	"memory-agent/pkg/log"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           "agentctl",
		Short:         "Operate the memory agent: schema, seed data, re-embedding and ad-hoc runs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (defaults to $CONFIG_PATH or ./config/config.yaml)")
}

// env is the state shared by subcommands.
type env struct {
	cfg *config.Config
	l   log.Logger
	db  *sql.DB
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
}

// loadEnv reads the configuration and opens the migrated database.
func loadEnv(ctx context.Context) (*env, error) {
	if cfgFile != "" {
		if err := os.Setenv("CONFIG_PATH", cfgFile); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := app.OpenDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, l: l, db: db}, nil
}

// loadApp is loadEnv plus the provider-backed domains.
func loadApp(ctx context.Context) (*env, *app.App, error) {
	e, err := loadEnv(ctx)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, e.cfg, e.db, e.l)
	if err != nil {
		e.close()
		return nil, nil, err
	}
	return e, a, nil
}
