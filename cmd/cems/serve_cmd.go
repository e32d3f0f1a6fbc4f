package main

import (
	"github.com/spf13/cobra"

	"github.com/duhai-alshukaili/cems/internal/pkg/logger"
	"github.com/duhai-alshukaili/cems/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer()
			if err != nil {
				logger.Error().Err(err).Msg("Failed to initialize server")
				return err
			}

			if err := srv.Run(); err != nil {
				logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
				return err
			}

			logger.Info().Msg("Application finished gracefully.")
			return nil
		},
	}
}
