package user

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"agroplan/internal/application/user/usecases"
	"agroplan/internal/infrastructure/auth"
	"agroplan/internal/infrastructure/database"
	"agroplan/internal/infrastructure/repository"
	"agroplan/internal/interfaces/cli/clienv"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	var command usecases.CreateUserCommand

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  `Create a user with role admin, gestor or consultor. There is no self sign-up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, command)
		},
	}

	cmd.Flags().StringVar(&command.Email, "email", "", "Login email (required)")
	cmd.Flags().StringVar(&command.Name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&command.Role, "role", "consultor", "Role: admin, gestor or consultor")
	cmd.Flags().StringVar(&command.Password, "password", "", "Initial password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, command usecases.CreateUserCommand) error {
	cfg, log, err := clienv.Setup(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewCreateUserUseCase(
		repository.NewUserRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	created, err := uc.Execute(ctx, command)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", created.ID(), created.Email(), created.Role())
	return nil
}
