// @title CivicDesk API
// @version 1.0
// @description Municipal issue tracking: issues, departments, staff and dashboard analytics.
// @BasePath /api
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/interfaces/cli/migrate"
	"github.com/civicdesk/civicdesk/internal/interfaces/cli/seed"
	"github.com/civicdesk/civicdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "civicdesk",
		Short:        "CivicDesk - municipal issue tracking backend",
		Long:         `CivicDesk serves the dashboard API for citizen-reported issues and ships database migration and seeding tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
