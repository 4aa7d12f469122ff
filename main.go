package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
)

// main - is the entry point of the application. It dispatches to the serve, play and scores commands.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Hot-seat tic-tac-toe for two players on one device",
		Long: `Two players share one keyboard or one browser tab and take turns as X and O.
Scores survive restarts in the configured store (sqlite, redis or memory).

Examples:
  tictactoe serve                 # HTTP + websocket API on http-port
  tictactoe play --x Ann --o Bob  # play in this terminal
  tictactoe scores --reset        # zero the persisted tally`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.yml", "path to the yaml config file")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newPlayCmd(&configPath),
		newScoresCmd(&configPath),
	)

	return rootCmd
}

// initialize config.
func initConfig(path string) *config.Config {
	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
