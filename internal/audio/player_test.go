package audio

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

func testPlayer(t *testing.T) *Player {
	t.Helper()
	cfg := config.DefaultTilefitConfig().Audio
	cfg.Enabled = true
	return NewPlayer(cfg, nil)
}

// drain pulls n samples through the mixer the way the speaker would.
func drain(p *Player, n int) {
	buf := make([][2]float64, 512)
	for n > 0 {
		k := min(n, len(buf))
		p.mixer.Stream(buf[:k])
		n -= k
	}
}

func TestSynthCuesCoverEveryCue(t *testing.T) {
	p := testPlayer(t)
	for _, cue := range tilefit.Cues() {
		buf, ok := p.cues[cue]
		require.True(t, ok, cue)
		assert.Positive(t, buf.Len(), cue)
	}
	assert.Nil(t, synthCue("nope", defaultSampleRate))
}

func TestToneStaysWithinAmplitude(t *testing.T) {
	s := newTone(defaultSampleRate, 440, 880, 50*time.Millisecond, 0.3, WaveSquare)
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, v := range buf[:n] {
			assert.LessOrEqual(t, v[0], 0.3)
			assert.GreaterOrEqual(t, v[0], -0.3)
			assert.Equal(t, v[0], v[1])
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, defaultSampleRate.N(50*time.Millisecond), total)
}

func TestPlayIgnoresUnknownAndSilent(t *testing.T) {
	p := testPlayer(t)
	p.Play("nope", false, 1)
	p.Play(tilefit.CueWin, false, 0)
	p.Play(tilefit.CueAmbientLoop, true, -1)
	assert.Equal(t, 0, p.Active())
}

func TestPlayDrainsEffects(t *testing.T) {
	p := testPlayer(t)
	p.Play(tilefit.CueDragPickup, false, 0.5)
	p.Play(tilefit.CueDropCommit, false, 0.5)
	assert.Equal(t, 2, p.Active())

	drain(p, p.rate.N(time.Second))
	assert.Equal(t, 0, p.Active())
}

func TestLoopReplacesPrevious(t *testing.T) {
	p := testPlayer(t)
	p.Play(tilefit.CueAmbientLoop, true, 0.1)
	first := p.music
	p.Play(tilefit.CueAmbientLoop, true, 0.1)
	require.NotSame(t, first, p.music)

	drain(p, 1024)
	assert.Equal(t, 1, p.Active(), "old loop leaves the mixer")

	drain(p, p.rate.N(10*time.Second))
	assert.Equal(t, 1, p.Active(), "loop never drains")
}

func TestMuteSkipsEffectsAndPausesLoop(t *testing.T) {
	p := testPlayer(t)
	p.Play(tilefit.CueAmbientLoop, true, 0.1)

	assert.True(t, p.ToggleMute())
	assert.True(t, p.Muted())
	assert.True(t, p.music.Paused)

	p.Play(tilefit.CueWin, false, 0.5)
	assert.Equal(t, 1, p.Active())

	assert.False(t, p.ToggleMute())
	assert.False(t, p.music.Paused)
}

func TestDisabledPlaysNothing(t *testing.T) {
	cfg := config.DefaultTilefitConfig().Audio
	cfg.Enabled = false
	p := NewPlayer(cfg, nil)

	require.NoError(t, p.Init())
	p.Play(tilefit.CueWin, false, 1)
	assert.Equal(t, 0, p.Active())
	p.Close()
}

func TestCloseWithoutInit(t *testing.T) {
	p := testPlayer(t)
	p.Play(tilefit.CueAmbientLoop, true, 0.1)
	p.Play(tilefit.CueWin, false, 0.5)

	assert.NotPanics(t, func() {
		p.Close()
		p.Close()
	})
	assert.Equal(t, 0, p.Active())
}

func TestLoadDecodesWav(t *testing.T) {
	dir := t.TempDir()
	rate := beep.SampleRate(22050)

	f, err := os.Create(filepath.Join(dir, "win.wav"))
	require.NoError(t, err)
	tone := newTone(rate, 440, 440, 100*time.Millisecond, 0.5, WaveSine)
	require.NoError(t, wav.Encode(f, tone, beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}))
	require.NoError(t, f.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "drag.wav"), []byte("not a wav"), 0o644))

	p := testPlayer(t)
	synthDrag := p.cues[tilefit.CueDragPickup]

	loaded, err := p.Load(dir)
	require.NoError(t, err)
	sort.Strings(loaded)
	assert.Equal(t, []string{tilefit.CueWin}, loaded)
	assert.Same(t, synthDrag, p.cues[tilefit.CueDragPickup], "broken file keeps the synthesized cue")

	// Resampled to the player rate.
	assert.InDelta(t, p.rate.N(100*time.Millisecond), p.cues[tilefit.CueWin].Len(), 64)
}

func TestLoadDirectoryErrors(t *testing.T) {
	p := testPlayer(t)

	loaded, err := p.Load("")
	assert.NoError(t, err)
	assert.Empty(t, loaded)

	_, err = p.Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = p.Load(file)
	assert.Error(t, err)
}

func TestSynthPCM(t *testing.T) {
	pcm := SynthPCM(tilefit.CueDragPickup, 44100)
	// 60ms of stereo 16-bit frames.
	assert.InDelta(t, 4*44100*60/1000, len(pcm), 8)
	assert.Zero(t, len(pcm)%4)

	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8))
		peak = max(peak, v, -v)
	}
	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, int(0.4*32767)+1)

	assert.Nil(t, SynthPCM("unknown", 44100))
}

func TestCueFiles(t *testing.T) {
	for _, cue := range tilefit.Cues() {
		assert.NotEmpty(t, CueFiles(cue), "cue %s", cue)
	}
	assert.Empty(t, CueFiles("unknown"))
}
