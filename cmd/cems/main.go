package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
)

func main() {
	// Environment overrides may live in a local .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Could not load .env file")
	}

	root := &cobra.Command{
		Use:   "cems",
		Short: "Central examination management system",
		Long: `cems manages the administrative records of the college: departments,
users, courses, sections and examination rooms. Records are bulk-loaded
from the institutional Examination List Report and served over a JSON API.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newLoadUsersCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
