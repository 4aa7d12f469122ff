package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const BoardSize = 9

// Line is a triple of board indexes that wins when uniformly marked.
type Line [3]int

// WinLines lists every winning line: rows, then columns, then diagonals.
// The order is the tie-break when a board satisfies more than one line.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major, indexes 0..8.
type Board struct {
	cells [BoardSize]Mark
}

// NewBoardFrom builds a board from a fixed set of cells.
func NewBoardFrom(cells [BoardSize]Mark) *Board {
	return &Board{cells: cells}
}

// PlaceMark puts mark into the cell at index. A failed placement leaves the board untouched.
func (that *Board) PlaceMark(index int, mark Mark) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that.cells[index] != Empty {
		return apperror.ErrCellOccupied
	}

	that.cells[index] = mark

	return nil
}

func (that *Board) Cell(index int) Mark {
	if index < 0 || index >= BoardSize {
		return Empty
	}

	return that.cells[index]
}

// Cells returns a copy of all nine cells.
func (that *Board) Cells() [BoardSize]Mark {
	return that.cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Mark{}
}

// Strings renders the board as "X", "O" and "" cells.
func (that *Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range that.cells {
		out[i] = cell.String()
	}

	return out
}
