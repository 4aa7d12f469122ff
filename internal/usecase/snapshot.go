package usecase

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// PlayerView is a player as shown to a UI.
type PlayerView struct {
	Mark  string `json:"mark"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type PlayersView struct {
	X PlayerView `json:"x"`
	O PlayerView `json:"o"`
}

// Snapshot is a read-only copy of a match taken between two commands.
type Snapshot struct {
	ID      string                   `json:"id"`
	Board   [entity.BoardSize]string `json:"board"`
	Status  string                   `json:"status"`
	Current PlayerView               `json:"current"`
	Players PlayersView              `json:"players"`
	Scores  entity.ScoreRecord       `json:"scores"`
}

// OutcomeView is a PlayTurn outcome as shown to a UI.
type OutcomeView struct {
	Kind   string      `json:"kind"`
	Error  string      `json:"error,omitempty"`
	Winner *PlayerView `json:"winner,omitempty"`
	Line   []int       `json:"line,omitempty"`
}

func newPlayerView(player *entity.Player) PlayerView {
	return PlayerView{
		Mark:  player.Mark.String(),
		Name:  player.Name,
		Score: player.Score,
	}
}

func newSnapshot(match *tictactoe.Match) Snapshot {
	status := StatusActive
	if !match.IsActive() {
		status = StatusEnded
	}

	return Snapshot{
		ID:      match.ID(),
		Board:   match.Board().Strings(),
		Status:  status,
		Current: newPlayerView(match.CurrentPlayer()),
		Players: PlayersView{
			X: newPlayerView(match.PlayerX()),
			O: newPlayerView(match.PlayerO()),
		},
		Scores: match.Scores(),
	}
}

func newOutcomeView(outcome tictactoe.Outcome) OutcomeView {
	view := OutcomeView{Kind: outcome.Kind.String()}

	switch outcome.Kind {
	case tictactoe.Rejected:
		view.Error = outcome.Reason.Error()
	case tictactoe.Win:
		winner := newPlayerView(outcome.Winner)
		view.Winner = &winner
		view.Line = outcome.Line[:]
	}

	return view
}
