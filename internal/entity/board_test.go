package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("Places mark into an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: X is placed in the center
		err := board.PlaceMark(4, MarkX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.Equal(t, MarkX, board.Cell(4))
	})

	t.Run("Fails on occupied cell without mutation", func(t *testing.T) {
		// Given: a board with X in cell 0
		board := &Board{}
		require.NoError(t, board.PlaceMark(0, MarkX))
		before := board.Cells()

		// When: both marks try the same cell again
		errO := board.PlaceMark(0, MarkO)
		errX := board.PlaceMark(0, MarkX)

		// Then: both fail with ErrCellOccupied and the board is unchanged
		require.ErrorIs(t, errO, apperror.ErrCellOccupied)
		require.ErrorIs(t, errX, apperror.ErrCellOccupied)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Rejects index out of range", func(t *testing.T) {
		board := &Board{}

		assert.ErrorIs(t, board.PlaceMark(-1, MarkX), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.PlaceMark(9, MarkX), apperror.ErrInvalidCell)
		assert.Equal(t, [BoardSize]Mark{}, board.Cells())
	})

	t.Run("Rejects empty mark", func(t *testing.T) {
		board := &Board{}

		err := board.PlaceMark(3, Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, Empty, board.Cell(3))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, (&Board{}).IsFull())
	})

	t.Run("Board with one empty cell is not full", func(t *testing.T) {
		board := NewBoardFrom([BoardSize]Mark{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, Empty,
		})

		assert.False(t, board.IsFull())
	})

	t.Run("Board without empty cells is full", func(t *testing.T) {
		board := NewBoardFrom([BoardSize]Mark{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		})

		assert.True(t, board.IsFull())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a partially filled board
	board := NewBoardFrom([BoardSize]Mark{MarkX, MarkO, MarkX})

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty
	for i := 0; i < BoardSize; i++ {
		assert.Equal(t, Empty, board.Cell(i))
	}
}

func TestBoard_CellsIsACopy(t *testing.T) {
	board := &Board{}
	cells := board.Cells()
	cells[0] = MarkO

	assert.Equal(t, Empty, board.Cell(0))
}

func TestBoard_Strings(t *testing.T) {
	board := NewBoardFrom([BoardSize]Mark{MarkX, Empty, MarkO})

	assert.Equal(t, [BoardSize]string{"X", "", "O", "", "", "", "", "", ""}, board.Strings())
}
