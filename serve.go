package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-hotseat/internal"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the match over HTTP and websocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(*configPath)
			logger := initLogger(conf, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := application.RunApp(ctx, logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}
