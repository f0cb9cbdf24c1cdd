// Package clienv loads configuration, installs the logger and opens the
// database for the CLI subcommands.
package clienv

import (
	"fmt"
	"os"

	"agroplan/internal/infrastructure/config"
	"agroplan/internal/infrastructure/database"
	"agroplan/internal/shared/logger"
)

// Setup loads the config for env (ENV overrides the flag), initializes the
// logger and opens the database. Callers close it with database.Close.
func Setup(env, configPath string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// GinMode maps an environment name to a gin mode.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
