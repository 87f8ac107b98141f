package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/games/tilefit"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tilefit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func cleared(level int, ms float64) tilefit.Event {
	return tilefit.Event{Kind: tilefit.EventLevelCleared, Pack: "test", Level: level, Name: "first", Elapsed: ms}
}

func started(level int) tilefit.Event {
	return tilefit.Event{Kind: tilefit.EventLevelStarted, Pack: "test", Level: level}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{1960 * time.Millisecond, "0:02.0"},
		{2*time.Minute + 5300*time.Millisecond, "2:05.3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.d))
		})
	}
}

func TestRecorderPersistsEvents(t *testing.T) {
	store := openStore(t)
	rec := NewRecorder(store, nil)

	rec.OnEvent(started(0))
	assert.Zero(t, rec.Best())

	rec.OnEvent(cleared(0, 4200))
	assert.Equal(t, "cleared in 0:04.2", rec.Status())
	assert.Equal(t, 4200*time.Millisecond, rec.Best())

	best, ok, err := store.BestTime("test", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4200*time.Millisecond, best)

	level, ok, err := store.Progress("test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, level)

	// Replaying the level loads the stored best.
	rec.OnEvent(started(0))
	assert.Empty(t, rec.Status())
	assert.Equal(t, 4200*time.Millisecond, rec.Best())

	rec.OnEvent(cleared(0, 3000))
	assert.Equal(t, "cleared in 0:03.0 (new best)", rec.Status())

	rec.OnEvent(cleared(0, 5000))
	assert.Equal(t, "cleared in 0:05.0", rec.Status())
	assert.Equal(t, 3000*time.Millisecond, rec.Best())

	rec.OnEvent(tilefit.Event{Kind: tilefit.EventPackFinished, Pack: "test"})
	assert.Equal(t, "pack finished", rec.Status())
	level, ok, err = store.Progress("test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, level)

	stats, err := store.LevelStats("test")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, "first", stats[0].LevelName)
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, nil)
	rec.OnEvent(started(0))
	rec.OnEvent(cleared(0, 1000))
	assert.Equal(t, "cleared in 0:01.0", rec.Status())
	rec.OnEvent(tilefit.Event{Kind: tilefit.EventPackFinished, Pack: "test"})
	assert.Equal(t, "pack finished", rec.Status())
}

func TestRecorderDrivenByEngine(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveCompletion(storage.Completion{PackID: levels.BuiltinID, Level: 2, Elapsed: 9 * time.Second})
	require.NoError(t, err)

	rec := NewRecorder(store, nil)
	_, err = tilefit.New(levels.Builtin(), tilefit.Options{StartLevel: 2, OnEvent: rec.OnEvent})
	require.NoError(t, err)
	assert.Equal(t, 9*time.Second, rec.Best())
}
