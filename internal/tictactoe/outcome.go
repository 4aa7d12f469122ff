package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

type OutcomeKind uint8

const (
	Rejected OutcomeKind = iota
	Continue
	Win
	Draw
)

func (that OutcomeKind) String() string {
	switch that {
	case Rejected:
		return "rejected"
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single PlayTurn call.
// Reason is set for Rejected; Winner and Line are set for Win.
type Outcome struct {
	Kind   OutcomeKind
	Reason error
	Winner *entity.Player
	Line   entity.Line
}

func rejected(reason error) Outcome {
	return Outcome{Kind: Rejected, Reason: reason}
}
