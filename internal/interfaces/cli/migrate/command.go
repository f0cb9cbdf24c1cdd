package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroplan/internal/infrastructure/database"
	"agroplan/internal/infrastructure/migration"
	"agroplan/internal/interfaces/cli/clienv"
	"agroplan/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned SQL migrations embedded in the binary.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*migration.GooseStrategy, logger.Interface, error) {
	cfg, log, err := clienv.Setup(env, configPath)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return strategy, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := migration.SeedJustifications(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("rolling back migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	log.Infow("rollback completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}
	log.Infow("current migration version", "version", version)

	return strategy.Status(database.Get())
}
