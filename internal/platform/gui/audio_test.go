package gui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	beepwav "github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

func nopLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSynthCues(t *testing.T) {
	cues := synthCues(22050)
	for _, cue := range tilefit.Cues() {
		assert.NotEmpty(t, cues[cue], "cue %s", cue)
	}
}

func writeWav(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	silence := generators.Silence(rate.N(d))
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	require.NoError(t, beepwav.Encode(f, silence, format))
}

func TestLoadCues(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "win.wav"), 22050, 100*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drag.wav"), []byte("not a wav"), 0o644))

	cues := synthCues(44100)
	drag := cues[tilefit.CueDragPickup]

	loaded, err := loadCues(dir, 44100, cues, nopLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{tilefit.CueWin}, loaded)
	assert.Equal(t, drag, cues[tilefit.CueDragPickup], "broken file keeps the synthesized cue")

	// Resampled to 44100Hz stereo 16-bit.
	assert.InDelta(t, 4*4410, len(cues[tilefit.CueWin]), 64)
}

func TestLoadCuesErrors(t *testing.T) {
	cues := synthCues(44100)

	loaded, err := loadCues("", 44100, cues, nopLogger())
	assert.NoError(t, err)
	assert.Empty(t, loaded)

	_, err = loadCues(filepath.Join(t.TempDir(), "missing"), 44100, cues, nopLogger())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = loadCues(file, 44100, cues, nopLogger())
	assert.Error(t, err)
}

func TestDecodeFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.ogg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := decodeFile(path, 44100)
	assert.ErrorContains(t, err, "unsupported")
}
