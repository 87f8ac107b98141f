// Package audio plays tilefit cues through the system speaker with gopxl/beep.
// Cues are decoded from a directory of wav/mp3 files when present and
// synthesized otherwise.
package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

const defaultSampleRate = beep.SampleRate(44100)

// cueFiles lists the file names tried for each cue, in order.
var cueFiles = map[string][]string{
	tilefit.CueDragPickup:  {"drag.wav", "drag.mp3"},
	tilefit.CueDropCancel:  {"drop.wav", "drop.mp3"},
	tilefit.CueDropCommit:  {"drop2.wav", "drop2.mp3"},
	tilefit.CueWin:         {"win.wav", "win.mp3"},
	tilefit.CueAmbientLoop: {"song.mp3", "song.wav"},
}

// CueFiles returns the file names tried for cue, in order.
func CueFiles(cue string) []string {
	return cueFiles[cue]
}

// Player is a fire-and-forget cue player. It implements tilefit.Audio.
// All methods are safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	cues    map[string]*beep.Buffer
	music   *beep.Ctrl
	enabled bool
	muted   bool
	live    bool // speaker initialized and streaming the mixer
	logger  *log.Logger
}

// NewPlayer creates a player with synthesized cues. Call Load to replace
// them with files and Init to start the speaker.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Player{
		rate:    rate,
		mixer:   &beep.Mixer{},
		cues:    make(map[string]*beep.Buffer, len(cueFiles)),
		enabled: cfg.Enabled,
		logger:  logger,
	}
	for _, cue := range tilefit.Cues() {
		if s := synthCue(cue, rate); s != nil {
			p.cues[cue] = p.buffer(s)
		}
	}
	return p
}

// Init starts the speaker. It is a no-op when audio is disabled or already
// running. Failing to open a device is returned so hosts can warn and
// continue silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live || !p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Load decodes cue files from dir. Cues without a file keep their
// synthesized sound. It returns the cues that were loaded from disk.
func (p *Player) Load(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot read cue directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("audio: %s is not a directory", dir)
	}

	loaded := make(map[string]*beep.Buffer)
	for cue, names := range cueFiles {
		for _, name := range names {
			buf, err := p.decodeFile(filepath.Join(dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				p.logger.Warn("skipping cue file", "cue", cue, "file", name, "err", err)
				continue
			}
			loaded[cue] = buf
			break
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(loaded))
	for cue, buf := range loaded {
		p.cues[cue] = buf
		names = append(names, cue)
	}
	return names, nil
}

// decodeFile reads a wav or mp3 file into a buffer at the player rate.
func (p *Player) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}
	buf := p.buffer(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// buffer renders a finite streamer into memory.
func (p *Player) buffer(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// Play starts a cue. A looping cue replaces the current loop; only one
// loop plays at a time. Unknown cues and non-positive volumes are ignored.
func (p *Player) Play(cue string, loop bool, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.cues[cue]
	if !ok || !p.enabled || volume <= 0 || buf.Len() == 0 {
		return
	}
	if !loop && p.muted {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	v := &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(volume, 1))}

	p.lock()
	defer p.unlock()
	if !loop {
		p.mixer.Add(v)
		return
	}
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music = &beep.Ctrl{Streamer: v, Paused: p.muted}
	p.mixer.Add(p.music)
}

// SetMuted silences effects and pauses the loop.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if p.music != nil {
		p.lock()
		p.music.Paused = muted
		p.unlock()
	}
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	muted := !p.muted
	p.mu.Unlock()
	p.SetMuted(muted)
	return muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Active returns the number of streams currently in the mixer.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close stops every stream and detaches the mixer from the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	p.unlock()

	if p.live {
		speaker.Clear()
		p.live = false
	}
}

// lock guards the mixer against the speaker goroutine.
func (p *Player) lock() {
	if p.live {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.live {
		speaker.Unlock()
	}
}

var _ tilefit.Audio = (*Player)(nil)
