package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/score"
	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyValueStore runs the shared contract against one implementation.
func testKeyValueStore(t *testing.T, ctx context.Context, store KeyValueStore) {
	t.Helper()

	t.Run("Get_NotFound", func(t *testing.T) {
		// When: Get is called with a key that was never set
		value, err := store.Get(ctx, "missing")

		// Then: ErrNotFound is returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Empty(t, value)
	})

	t.Run("Set_Get", func(t *testing.T) {
		// Given: a stored value
		require.NoError(t, store.Set(ctx, "scores", `{"x":1,"o":2,"draw":3}`))

		// When: Get is called
		value, err := store.Get(ctx, "scores")

		// Then: the same value comes back
		require.NoError(t, err)
		assert.Equal(t, `{"x":1,"o":2,"draw":3}`, value)
	})

	t.Run("Set_Overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "overwrite", "first"))
		require.NoError(t, store.Set(ctx, "overwrite", "second"))

		value, err := store.Get(ctx, "overwrite")

		require.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "value"))

		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-set"))
	})
}

func TestMemoryStore(t *testing.T) {
	testKeyValueStore(t, context.Background(), NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	db, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, db.Init(ctx))

	testKeyValueStore(t, ctx, NewSQLiteStore(db.Connection))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	// Given: a value written through one connection
	first, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Init(ctx))
	require.NoError(t, NewSQLiteStore(first.Connection).Set(ctx, "scores", "persisted"))
	require.NoError(t, first.Close())

	// When: the file is opened again
	second, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = second.Close()
	})
	require.NoError(t, second.Init(ctx))

	// Then: the value is still there
	value, err := NewSQLiteStore(second.Connection).Get(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, "persisted", value)
}

func TestRedisStore(t *testing.T) {
	ctx, st := suite.New(t)

	testKeyValueStore(t, ctx, NewRedisStore(st.Storage))

	t.Run("Scores_SurviveRestart", func(t *testing.T) {
		// Given: a tracker that recorded a win and a draw
		first := score.NewTracker(st.Logger, NewRedisStore(st.Storage), score.DefaultKey)
		first.Load(ctx)
		first.Apply(fakeResult{winner: entity.MarkO})
		first.Apply(fakeResult{draw: true})
		first.Persist(ctx)

		// When: a new tracker loads from the same redis
		second := score.NewTracker(st.Logger, NewRedisStore(st.Storage), score.DefaultKey)
		record := second.Load(ctx)

		// Then: the tally is identical and stored in the shared JSON format
		assert.Equal(t, entity.ScoreRecord{WinsO: 1, Draws: 1}, record)

		raw, err := st.Storage.Get(ctx, score.DefaultKey).Result()
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":0,"o":1,"draw":1}`, raw)
	})
}

type fakeResult struct {
	winner entity.Mark
	draw   bool
}

func (that fakeResult) IsDraw() bool {
	return that.draw
}

func (that fakeResult) Winner() entity.Mark {
	return that.winner
}
