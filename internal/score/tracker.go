// Package score keeps the win/draw tally of a match session and mirrors it into a key-value store.
package score

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const DefaultKey = "ticTacToeScores"

// Store is the persistence collaborator. Get returns apperror.ErrNotFound for an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Result is a finished board evaluation as seen by the tracker.
type Result interface {
	IsDraw() bool
	Winner() entity.Mark
}

// Tracker owns the ScoreRecord of a session. Storage failures are logged and never returned.
type Tracker struct {
	logger *slog.Logger
	store  Store
	key    string

	record entity.ScoreRecord
}

func NewTracker(logger *slog.Logger, store Store, key string) *Tracker {
	if key == "" {
		key = DefaultKey
	}

	return &Tracker{
		logger: logger.With("component", "score", "key", key),
		store:  store,
		key:    key,
	}
}

// Load replaces the in-memory record with the stored one, or with a zero record when the
// stored value is absent or unreadable.
func (that *Tracker) Load(ctx context.Context) entity.ScoreRecord {
	log := that.logger.With("method", "Load")

	that.record = entity.ScoreRecord{}

	raw, err := that.store.Get(ctx, that.key)
	if errors.Is(err, apperror.ErrNotFound) {
		log.Debug("no stored scores, starting from zero")
		return that.record
	}

	if err != nil {
		log.Error("failed to read scores", "error", err)
		return that.record
	}

	record, err := entity.DecodeScoreRecord(raw)
	if err != nil {
		log.Warn("stored scores are corrupt, starting from zero", "error", err)
		return that.record
	}

	that.record = record

	return that.record
}

// Apply counts a terminal result. Results that are not a win or a draw are ignored.
func (that *Tracker) Apply(result Result) {
	switch {
	case result.IsDraw():
		that.record.Draws++
	case result.Winner() == entity.MarkX:
		that.record.WinsX++
	case result.Winner() == entity.MarkO:
		that.record.WinsO++
	}
}

func (that *Tracker) Persist(ctx context.Context) {
	log := that.logger.With("method", "Persist")

	raw, err := that.record.Encode()
	if err != nil {
		log.Error("failed to encode scores", "error", err)
		return
	}

	if err = that.store.Set(ctx, that.key, raw); err != nil {
		log.Error("failed to write scores", "error", err)
		return
	}

	log.Debug("scores saved", "x", that.record.WinsX, "o", that.record.WinsO, "draw", that.record.Draws)
}

// Reset zeroes every counter and persists the zero record.
func (that *Tracker) Reset(ctx context.Context) {
	that.record = entity.ScoreRecord{}
	that.Persist(ctx)
}

// Clear zeroes every counter and removes the key from the store.
func (that *Tracker) Clear(ctx context.Context) {
	that.record = entity.ScoreRecord{}

	if err := that.store.Delete(ctx, that.key); err != nil {
		that.logger.Error("failed to delete scores", "method", "Clear", "error", err)
	}
}

func (that *Tracker) Record() entity.ScoreRecord {
	return that.record
}
