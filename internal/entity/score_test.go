package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRecord_EncodeDecode(t *testing.T) {
	t.Run("Round trip keeps every counter", func(t *testing.T) {
		// Given: a record with distinct counters
		record := ScoreRecord{WinsX: 3, WinsO: 1, Draws: 2}

		// When: it is encoded and decoded again
		raw, err := record.Encode()
		require.NoError(t, err)

		decoded, err := DecodeScoreRecord(raw)

		// Then: the decoded record is identical
		require.NoError(t, err)
		assert.Equal(t, record, decoded)
	})

	t.Run("Uses the x/o/draw field names", func(t *testing.T) {
		raw, err := ScoreRecord{WinsX: 1, WinsO: 2, Draws: 3}.Encode()

		require.NoError(t, err)
		assert.JSONEq(t, `{"x":1,"o":2,"draw":3}`, raw)
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		_, err := DecodeScoreRecord("{not json")

		require.Error(t, err)
	})

	t.Run("Rejects negative counters", func(t *testing.T) {
		_, err := DecodeScoreRecord(`{"x":-1,"o":0,"draw":0}`)

		require.ErrorIs(t, err, apperror.ErrNegativeScore)
	})
}

func TestScoreRecord_Wins(t *testing.T) {
	record := ScoreRecord{WinsX: 4, WinsO: 7}

	assert.Equal(t, 4, record.Wins(MarkX))
	assert.Equal(t, 7, record.Wins(MarkO))
	assert.Equal(t, 0, record.Wins(Empty))
}

func TestPlayer_SetName(t *testing.T) {
	t.Run("Defaults to Player <mark>", func(t *testing.T) {
		assert.Equal(t, "Player X", NewPlayer(MarkX, "").Name)
		assert.Equal(t, "Player O", NewPlayer(MarkO, "   ").Name)
	})

	t.Run("Keeps trimmed custom name", func(t *testing.T) {
		player := NewPlayer(MarkX, "")

		player.SetName("  Alice ")

		assert.Equal(t, "Alice", player.Name)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
