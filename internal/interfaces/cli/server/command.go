package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"agroplan/internal/infrastructure/config"
	"agroplan/internal/infrastructure/database"
	"agroplan/internal/infrastructure/migration"
	httpRouter "agroplan/internal/interfaces/http"
	"agroplan/internal/interfaces/cli/clienv"
	"agroplan/internal/shared/logger"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the AgroPlan HTTP API with the given environment and configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := clienv.Setup(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate,
		"driver", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := handleMigrations(cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	container.SetupRoutes()
	container.StartBackground()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server listening",
			"address", cfg.Server.GetAddr(),
			"base_path", cfg.Server.BasePath,
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", "error", err)
		return err
	case <-quit:
	}

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	container.Shutdown(ctx)

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, log logger.Interface) error {
	db := database.Get()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production")
		}
		manager, err := migration.NewManager(env, cfg.Database.Driver)
		if err != nil {
			return err
		}
		if err := manager.Migrate(db); err != nil {
			return err
		}
		return migration.SeedJustifications(db)
	}

	goose, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		log.Warnw("skipping migration check", "error", err)
		return nil
	}
	version, err := goose.GetVersion(db)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}
