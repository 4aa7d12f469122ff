package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// ScoreRecord is the persisted tally of wins per mark and draws.
type ScoreRecord struct {
	WinsX int `json:"x"`
	WinsO int `json:"o"`
	Draws int `json:"draw"`
}

// Wins returns the win counter for mark.
func (that ScoreRecord) Wins(mark Mark) int {
	switch mark {
	case MarkX:
		return that.WinsX
	case MarkO:
		return that.WinsO
	default:
		return 0
	}
}

func (that ScoreRecord) Validate() error {
	if that.WinsX < 0 || that.WinsO < 0 || that.Draws < 0 {
		return fmt.Errorf("%w: %+v", apperror.ErrNegativeScore, that)
	}

	return nil
}

func (that ScoreRecord) Encode() (string, error) {
	data, err := json.Marshal(that)
	if err != nil {
		return "", fmt.Errorf("failed to marshal score record: %w", err)
	}

	return string(data), nil
}

// DecodeScoreRecord parses a stored record. Unknown fields are ignored, missing ones stay zero.
func DecodeScoreRecord(raw string) (ScoreRecord, error) {
	var record ScoreRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return ScoreRecord{}, fmt.Errorf("failed to unmarshal score record: %w", err)
	}

	if err := record.Validate(); err != nil {
		return ScoreRecord{}, err
	}

	return record, nil
}
