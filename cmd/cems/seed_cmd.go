package main

import (
	"github.com/spf13/cobra"

	"github.com/duhai-alshukaili/cems/internal/bootstrap"
	"github.com/duhai-alshukaili/cems/internal/db"
	"github.com/duhai-alshukaili/cems/internal/seed"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default departments and rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
			if err != nil {
				return err
			}

			database, err := db.NewPostgresDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := bootstrap.RunMigrations(database.Pool, lgr); err != nil {
				return err
			}

			return seed.CreateDefaultData(cmd.Context(), database.Pool, lgr)
		},
	}
}
