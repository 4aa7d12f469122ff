package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/score"
)

func newScoresCmd(configPath *string) *cobra.Command {
	var resetScores, clearScores bool

	scoresCmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the persisted score tally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(*configPath)
			logger := initLogger(conf, os.Stderr)
			ctx := cmd.Context()

			store, err := application.OpenStore(ctx, logger, conf)
			if err != nil {
				return fmt.Errorf("failed to open score store: %w", err)
			}
			defer func() { _ = store.Close() }()

			tracker := score.NewTracker(logger, store, conf.Storage.Key)
			tracker.Load(ctx)

			switch {
			case resetScores:
				tracker.Reset(ctx)
			case clearScores:
				tracker.Clear(ctx)
			}

			record := tracker.Record()
			fmt.Fprintf(cmd.OutOrStdout(), "X: %d\nO: %d\ndraws: %d\n", record.WinsX, record.WinsO, record.Draws)

			return nil
		},
	}

	scoresCmd.Flags().BoolVar(&resetScores, "reset", false, "set every counter to zero and save")
	scoresCmd.Flags().BoolVar(&clearScores, "clear", false, "delete the stored tally")
	scoresCmd.MarkFlagsMutuallyExclusive("reset", "clear")

	return scoresCmd
}
