package main

import (
	"os"

	"github.com/spf13/cobra"

	"agroplan/internal/interfaces/cli/migrate"
	"agroplan/internal/interfaces/cli/server"
	"agroplan/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "agroplan",
		Short: "AgroPlan - season planning backend",
		Long:  `AgroPlan serves the season programming API: records, pesticide applications, catalogs and reports.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
