package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/console"
)

func newPlayCmd(configPath *string) *cobra.Command {
	var playerX, playerO string

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat match in this terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(*configPath)
			if playerX != "" {
				conf.Players.X = playerX
			}
			if playerO != "" {
				conf.Players.O = playerO
			}

			// the board owns stdout
			logger := initLogger(conf, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := application.OpenStore(ctx, logger, conf)
			if err != nil {
				return fmt.Errorf("failed to open score store: %w", err)
			}
			defer func() { _ = store.Close() }()

			matchManager := application.NewMatchManager(ctx, logger, conf, store)

			return console.Run(ctx, matchManager, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	playCmd.Flags().StringVar(&playerX, "x", "", "name of the X player")
	playCmd.Flags().StringVar(&playerO, "o", "", "name of the O player")

	return playCmd
}
