package score

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store is down")

type mockStore struct {
	mock.Mock
}

func (that *mockStore) Get(ctx context.Context, key string) (string, error) {
	args := that.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (that *mockStore) Set(ctx context.Context, key, value string) error {
	return that.Called(ctx, key, value).Error(0)
}

func (that *mockStore) Delete(ctx context.Context, key string) error {
	return that.Called(ctx, key).Error(0)
}

type mapStore map[string]string

func (that mapStore) Get(_ context.Context, key string) (string, error) {
	value, ok := that[key]
	if !ok {
		return "", apperror.ErrNotFound
	}
	return value, nil
}

func (that mapStore) Set(_ context.Context, key, value string) error {
	that[key] = value
	return nil
}

func (that mapStore) Delete(_ context.Context, key string) error {
	delete(that, key)
	return nil
}

type result struct {
	draw   bool
	winner entity.Mark
}

func (that result) IsDraw() bool        { return that.draw }
func (that result) Winner() entity.Mark { return that.winner }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTracker_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns zero record when key is absent", func(t *testing.T) {
		// Given: an empty store
		tracker := NewTracker(discardLogger(), mapStore{}, "")

		// When: scores are loaded
		record := tracker.Load(ctx)

		// Then: the record is zeroed
		assert.Equal(t, entity.ScoreRecord{}, record)
	})

	t.Run("Returns stored record", func(t *testing.T) {
		store := mapStore{DefaultKey: `{"x":2,"o":5,"draw":1}`}
		tracker := NewTracker(discardLogger(), store, DefaultKey)

		record := tracker.Load(ctx)

		assert.Equal(t, entity.ScoreRecord{WinsX: 2, WinsO: 5, Draws: 1}, record)
		assert.Equal(t, record, tracker.Record())
	})

	t.Run("Falls back to zero on corrupt value", func(t *testing.T) {
		store := mapStore{DefaultKey: "garbage"}
		tracker := NewTracker(discardLogger(), store, DefaultKey)

		assert.Equal(t, entity.ScoreRecord{}, tracker.Load(ctx))
	})

	t.Run("Falls back to zero on negative counters", func(t *testing.T) {
		store := mapStore{DefaultKey: `{"x":-3,"o":1,"draw":0}`}
		tracker := NewTracker(discardLogger(), store, DefaultKey)

		assert.Equal(t, entity.ScoreRecord{}, tracker.Load(ctx))
	})

	t.Run("Falls back to zero when the store fails", func(t *testing.T) {
		// Given: a store that cannot be read
		store := &mockStore{}
		store.On("Get", mock.Anything, DefaultKey).Return("", errStoreDown).Once()
		tracker := NewTracker(discardLogger(), store, DefaultKey)

		// When: scores are loaded
		record := tracker.Load(ctx)

		// Then: no error escapes and the record is zeroed
		assert.Equal(t, entity.ScoreRecord{}, record)
		store.AssertExpectations(t)
	})
}

func TestTracker_Apply(t *testing.T) {
	tracker := NewTracker(discardLogger(), mapStore{}, "")

	tracker.Apply(result{winner: entity.MarkX})
	tracker.Apply(result{winner: entity.MarkX})
	tracker.Apply(result{winner: entity.MarkO})
	tracker.Apply(result{draw: true})
	tracker.Apply(result{})

	assert.Equal(t, entity.ScoreRecord{WinsX: 2, WinsO: 1, Draws: 1}, tracker.Record())
}

func TestTracker_Persist(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip through the same store", func(t *testing.T) {
		// Given: a tracker with some results
		store := mapStore{}
		tracker := NewTracker(discardLogger(), store, "custom")
		tracker.Apply(result{winner: entity.MarkO})
		tracker.Apply(result{draw: true})

		// When: it persists and a new tracker loads from the same store
		tracker.Persist(ctx)
		reloaded := NewTracker(discardLogger(), store, "custom").Load(ctx)

		// Then: the record is identical
		assert.Equal(t, tracker.Record(), reloaded)
	})

	t.Run("Write failure keeps in-memory state", func(t *testing.T) {
		// Given: a store that rejects writes
		store := &mockStore{}
		store.On("Set", mock.Anything, DefaultKey, mock.AnythingOfType("string")).Return(errStoreDown).Once()
		tracker := NewTracker(discardLogger(), store, DefaultKey)
		tracker.Apply(result{winner: entity.MarkX})

		// When: persisting
		tracker.Persist(ctx)

		// Then: the counter is still applied
		assert.Equal(t, 1, tracker.Record().WinsX)
		store.AssertExpectations(t)
	})
}

func TestTracker_ResetAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("Reset persists zero record", func(t *testing.T) {
		store := mapStore{DefaultKey: `{"x":1,"o":1,"draw":1}`}
		tracker := NewTracker(discardLogger(), store, DefaultKey)
		tracker.Load(ctx)

		tracker.Reset(ctx)

		assert.Equal(t, entity.ScoreRecord{}, tracker.Record())
		assert.JSONEq(t, `{"x":0,"o":0,"draw":0}`, store[DefaultKey])
	})

	t.Run("Clear removes the key", func(t *testing.T) {
		store := mapStore{DefaultKey: `{"x":1,"o":1,"draw":1}`}
		tracker := NewTracker(discardLogger(), store, DefaultKey)
		tracker.Load(ctx)

		tracker.Clear(ctx)

		require.NotContains(t, store, DefaultKey)
		assert.Equal(t, entity.ScoreRecord{}, tracker.Record())
	})
}
