package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/score"
)

// Match orchestrates turns on one board between two fixed players.
// It is not safe for concurrent use.
type Match struct {
	id string

	board   *entity.Board
	playerX *entity.Player
	playerO *entity.Player
	current *entity.Player
	active  bool

	scores *score.Tracker
}

type Option func(*Match)

func WithID(id string) Option {
	return func(m *Match) {
		m.id = id
	}
}

func WithPlayerNames(nameX, nameO string) Option {
	return func(m *Match) {
		m.SetPlayerNames(nameX, nameO)
	}
}

// NewMatch starts an active match with X to move. Player scores mirror the tracker's current record,
// so the tracker should already be loaded.
func NewMatch(scores *score.Tracker, opts ...Option) *Match {
	match := &Match{
		board:   &entity.Board{},
		playerX: entity.NewPlayer(entity.MarkX, ""),
		playerO: entity.NewPlayer(entity.MarkO, ""),
		active:  true,
		scores:  scores,
	}
	match.current = match.playerX

	for _, opt := range opts {
		opt(match)
	}

	match.syncScores()

	return match
}

// PlayTurn places the current player's mark at index and advances the match.
// A rejected turn changes nothing.
func (that *Match) PlayTurn(ctx context.Context, index int) Outcome {
	if !that.active {
		return rejected(apperror.ErrMatchEnded)
	}

	if err := that.board.PlaceMark(index, that.current.Mark); err != nil {
		return rejected(fmt.Errorf("invalid turn: %w", err))
	}

	result := Evaluate(that.board)
	switch result.Kind {
	case ResultWin:
		that.finish(ctx, result)
		return Outcome{Kind: Win, Winner: that.playerByMark(result.Mark), Line: result.Line}
	case ResultDraw:
		that.finish(ctx, result)
		return Outcome{Kind: Draw}
	default:
		that.switchPlayer()
		return Outcome{Kind: Continue}
	}
}

// ResetMatch clears the board and gives the first move to X. Scores are kept.
func (that *Match) ResetMatch() {
	that.board.Reset()
	that.current = that.playerX
	that.active = true
}

// ResetScores zeroes both players' scores and the draw count and persists them.
func (that *Match) ResetScores(ctx context.Context) {
	that.scores.Reset(ctx)
	that.syncScores()
}

func (that *Match) SetPlayerNames(nameX, nameO string) {
	that.playerX.SetName(nameX)
	that.playerO.SetName(nameO)
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Board() *entity.Board {
	return that.board
}

func (that *Match) CurrentPlayer() *entity.Player {
	return that.current
}

func (that *Match) PlayerX() *entity.Player {
	return that.playerX
}

func (that *Match) PlayerO() *entity.Player {
	return that.playerO
}

func (that *Match) IsActive() bool {
	return that.active
}

func (that *Match) Scores() entity.ScoreRecord {
	return that.scores.Record()
}

func (that *Match) finish(ctx context.Context, result Result) {
	that.active = false

	that.scores.Apply(result)
	that.syncScores()
	that.scores.Persist(ctx)
}

func (that *Match) switchPlayer() {
	if that.current == that.playerX {
		that.current = that.playerO
		return
	}

	that.current = that.playerX
}

func (that *Match) playerByMark(mark entity.Mark) *entity.Player {
	if mark == entity.MarkX {
		return that.playerX
	}

	return that.playerO
}

func (that *Match) syncScores() {
	record := that.scores.Record()
	that.playerX.Score = record.WinsX
	that.playerO.Score = record.WinsO
}
