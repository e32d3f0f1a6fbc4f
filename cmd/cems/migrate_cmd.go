package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/duhai-alshukaili/cems/internal/bootstrap"
	"github.com/duhai-alshukaili/cems/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
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

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if err := database.Pool.Ping(ctx); err != nil {
				return err
			}

			return bootstrap.RunMigrations(database.Pool, lgr)
		},
	}
}
