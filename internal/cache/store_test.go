package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobuddy/ecobuddy/internal/cache"
	"github.com/ecobuddy/ecobuddy/internal/engine"
)

func newStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.NewStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	return store
}

func TestNewStore(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "cache")
		store, err := cache.NewStore(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, store.Dir())

		_, err = os.Stat(dir)
		require.NoError(t, err)
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		_, err := cache.NewStore("")
		require.Error(t, err)
	})
}

func TestStore_SessionRoundTrip(t *testing.T) {
	store := newStore(t)

	state := cache.SessionState{
		Index:          3,
		ShowingResults: false,
		Answers: []engine.Answer{
			{QuestionID: "car_usage", Value: "100", Emissions: 20},
			{QuestionID: "car_type", Value: "petrol", Emissions: 12},
		},
	}
	require.NoError(t, store.SaveSession(state))

	loaded, err := store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	store := newStore(t)

	snap := engine.Snapshot{
		Total: 2727,
		Level: engine.LevelModerate,
		CategoryData: []engine.CategoryTotal{
			{Name: "transportation", Value: 432, Percentage: 16},
			{Name: "home", Value: 45, Percentage: 2},
			{Name: "food", Value: 1650, Percentage: 61},
			{Name: "consumption", Value: 600, Percentage: 22},
		},
	}
	require.NoError(t, store.SaveSnapshot(snap))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestStore_MissingEntries(t *testing.T) {
	store := newStore(t)

	_, err := store.LoadSession()
	assert.ErrorIs(t, err, cache.ErrNotFound)

	_, err = store.LoadSnapshot()
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestStore_CorruptEntry(t *testing.T) {
	store := newStore(t)

	// Simulate a malformed cached snapshot left by an interrupted write or
	// external tampering.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "analytics.json"), []byte("{nope"), 0600))

	_, err := store.LoadSnapshot()
	assert.ErrorIs(t, err, cache.ErrCorrupt)
}

func TestStore_Clear(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.SaveSession(cache.SessionState{Index: 1}))
	require.NoError(t, store.SaveSnapshot(engine.Snapshot{Total: 1, Level: engine.LevelLow}))

	require.NoError(t, store.Clear())

	_, err := store.LoadSession()
	assert.ErrorIs(t, err, cache.ErrNotFound)
	_, err = store.LoadSnapshot()
	assert.ErrorIs(t, err, cache.ErrNotFound)

	// Clearing an already-empty cache is fine.
	require.NoError(t, store.Clear())
}
