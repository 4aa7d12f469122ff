package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

type ResultKind uint8

const (
	ResultNone ResultKind = iota
	ResultWin
	ResultDraw
)

// Result is the evaluation of a board. Mark and Line are set only for ResultWin.
type Result struct {
	Kind ResultKind
	Mark entity.Mark
	Line entity.Line
}

func (that Result) IsTerminal() bool {
	return that.Kind != ResultNone
}

func (that Result) IsDraw() bool {
	return that.Kind == ResultDraw
}

// Winner returns the winning mark, or Empty when nobody has won.
func (that Result) Winner() entity.Mark {
	if that.Kind != ResultWin {
		return entity.Empty
	}

	return that.Mark
}

// Evaluate reports the first uniformly marked line in WinLines order, a draw for a
// full board without one, and ResultNone otherwise.
func Evaluate(board *entity.Board) Result {
	for _, line := range entity.WinLines {
		a, b, c := board.Cell(line[0]), board.Cell(line[1]), board.Cell(line[2])
		if a != entity.Empty && a == b && b == c {
			return Result{Kind: ResultWin, Mark: a, Line: line}
		}
	}

	if board.IsFull() {
		return Result{Kind: ResultDraw}
	}

	return Result{Kind: ResultNone}
}
