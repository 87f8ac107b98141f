package gui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	eba "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tilefit/internal/audio"
	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

const defaultSampleRate = 44100

// synthCues renders every cue at rate.
func synthCues(rate int) map[string][]byte {
	cues := make(map[string][]byte)
	for _, cue := range tilefit.Cues() {
		cues[cue] = audio.SynthPCM(cue, rate)
	}
	return cues
}

// loadCues decodes cue files from dir into cues. Cues whose files are
// missing or broken keep their previous data. It returns the cues loaded.
func loadCues(dir string, rate int, cues map[string][]byte, logger *log.Logger) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot read audio dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("gui: audio path %s is not a directory", dir)
	}

	var loaded []string
	for _, cue := range tilefit.Cues() {
		for _, name := range audio.CueFiles(cue) {
			path := filepath.Join(dir, name)
			pcm, err := decodeFile(path, rate)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				logger.Warn("could not decode cue", "cue", cue, "file", path, "error", err)
				continue
			}
			cues[cue] = pcm
			loaded = append(loaded, cue)
			break
		}
	}
	return loaded, nil
}

// decodeFile decodes a wav or mp3 file to 16-bit stereo PCM at rate.
func decodeFile(path string, rate int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, f)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, f)
	default:
		return nil, fmt.Errorf("unsupported audio format %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// AudioPlayer plays cues through the Ebitengine audio context.
// It implements tilefit.Audio. All methods are safe for concurrent use.
type AudioPlayer struct {
	mu      sync.Mutex
	ctx     *eba.Context
	cues    map[string][]byte
	music   *eba.Player
	effects []*eba.Player
	enabled bool
	muted   bool
	logger  *log.Logger
}

// NewAudioPlayer creates a player over the process audio context and
// loads cue files from cfg.Dir over the synthesized cues.
func NewAudioPlayer(cfg config.AudioConfig, logger *log.Logger) *AudioPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = defaultSampleRate
	}

	ctx := eba.CurrentContext()
	if ctx == nil {
		ctx = eba.NewContext(rate)
	}

	p := &AudioPlayer{
		ctx:     ctx,
		cues:    synthCues(ctx.SampleRate()),
		enabled: cfg.Enabled,
		logger:  logger,
	}
	if loaded, err := loadCues(cfg.Dir, ctx.SampleRate(), p.cues, logger); err != nil {
		logger.Warn("using synthesized audio", "error", err)
	} else if len(loaded) > 0 {
		logger.Debug("loaded audio cues", "cues", loaded)
	}
	return p
}

// Play starts a cue. A looping cue replaces the current music.
func (p *AudioPlayer) Play(cue string, loop bool, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pcm, ok := p.cues[cue]
	if !ok || len(pcm) == 0 || !p.enabled || volume <= 0 {
		return
	}

	if loop {
		if p.music != nil {
			p.music.Close()
		}
		player, err := p.ctx.NewPlayer(eba.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
		if err != nil {
			p.logger.Warn("could not start music", "cue", cue, "error", err)
			p.music = nil
			return
		}
		player.SetVolume(volume)
		p.music = player
		if !p.muted {
			player.Play()
		}
		return
	}

	if p.muted {
		return
	}
	p.prune()
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	p.effects = append(p.effects, player)
}

// prune closes finished effect players.
func (p *AudioPlayer) prune() {
	live := p.effects[:0]
	for _, e := range p.effects {
		if e.IsPlaying() {
			live = append(live, e)
		} else {
			e.Close()
		}
	}
	clear(p.effects[len(live):])
	p.effects = live
}

// ToggleMute flips the mute state and reports whether audio is now muted.
// Muting pauses the music and silences new effects.
func (p *AudioPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.music != nil {
		if p.muted {
			p.music.Pause()
		} else {
			p.music.Play()
		}
	}
	return p.muted
}

// Close stops every player.
func (p *AudioPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		p.music.Close()
		p.music = nil
	}
	for _, e := range p.effects {
		e.Close()
	}
	p.effects = nil
}

var _ tilefit.Audio = (*AudioPlayer)(nil)
