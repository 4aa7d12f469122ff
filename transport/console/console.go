// Package console runs a hot-seat match on a terminal: both players share one keyboard.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const help = "cells are numbered 1-9 left to right, top to bottom; r = new board, s = reset scores, q = quit"

type matchUseCase interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetMatch() usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

// Run reads commands from in until "q", EOF or ctx cancellation.
func Run(ctx context.Context, match matchUseCase, in io.Reader, out io.Writer) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines, readErr := readLines(readCtx, in)

	fmt.Fprintln(out, help)
	render(out, match.Snapshot())

	for {
		snapshot := match.Snapshot()
		if snapshot.Status == usecase.StatusActive {
			fmt.Fprintf(out, "%s (%s) > ", snapshot.Current.Name, snapshot.Current.Mark)
		} else {
			fmt.Fprint(out, "match over, r for a new board > ")
		}

		var text string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return readError(readErr)
			}
			text = line
		}

		switch input := strings.ToLower(strings.TrimSpace(text)); input {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "r", "reset":
			render(out, match.ResetMatch())
		case "s", "scores":
			render(out, match.ResetScores(ctx))
		case "h", "help", "?":
			fmt.Fprintln(out, help)
		default:
			playTurn(ctx, match, input, out)
		}
	}
}

// readLines scans in on its own goroutine so that a blocked read never delays cancellation.
// The error channel receives the scanner error once the input is exhausted.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func readError(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}

func playTurn(ctx context.Context, match matchUseCase, input string, out io.Writer) {
	number, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintf(out, "unknown command %q; %s\n", input, help)
		return
	}

	result := match.MakeTurn(ctx, number-1)

	switch result.Kind {
	case tictactoe.Rejected:
		fmt.Fprintln(out, rejectionText(result.Reason))
		return
	case tictactoe.Win:
		render(out, result.Match)
		fmt.Fprintf(out, "%s wins!\n", result.Outcome.Winner.Name)
	case tictactoe.Draw:
		render(out, result.Match)
		fmt.Fprintln(out, "draw!")
	default:
		render(out, result.Match)
	}
}

func rejectionText(reason error) string {
	switch {
	case errors.Is(reason, apperror.ErrCellOccupied):
		return "that cell is taken"
	case errors.Is(reason, apperror.ErrInvalidCell):
		return "pick a cell between 1 and 9"
	case errors.Is(reason, apperror.ErrMatchEnded):
		return "the match is over, press r for a new board"
	default:
		return reason.Error()
	}
}

func render(out io.Writer, snapshot usecase.Snapshot) {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			idx := row*3 + col
			cell := snapshot.Board[idx]
			if cell == "" {
				cell = strconv.Itoa(idx + 1)
			}

			if col > 0 {
				b.WriteString("|")
			}
			b.WriteString(" " + cell + " ")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s: %d  %s: %d  draws: %d\n",
		snapshot.Players.X.Name, snapshot.Scores.WinsX,
		snapshot.Players.O.Name, snapshot.Scores.WinsO,
		snapshot.Scores.Draws)

	_, _ = io.WriteString(out, b.String())
}
