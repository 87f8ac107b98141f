package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
)

// tone is a single oscillator note with a linear frequency glide and a
// short attack/release envelope.
type tone struct {
	rate     beep.SampleRate
	from, to float64
	amp      float64
	wave     WaveType
	phase    float64
	position int
	duration int
	edge     int // envelope ramp length in samples
}

// newTone creates a note gliding from one frequency to another over d.
func newTone(rate beep.SampleRate, from, to float64, d time.Duration, amp float64, wave WaveType) beep.Streamer {
	n := rate.N(d)
	return &tone{
		rate:     rate,
		from:     from,
		to:       to,
		amp:      amp,
		wave:     wave,
		duration: n,
		edge:     max(1, min(rate.N(5*time.Millisecond), n/2)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.duration)
		freq := t.from + (t.to-t.from)*progress

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		}

		env := 1.0
		if t.position < t.edge {
			env = float64(t.position) / float64(t.edge)
		}
		if rest := t.duration - t.position; rest < t.edge {
			env = min(env, float64(rest)/float64(t.edge))
		}
		val *= t.amp * env

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// note frequencies used by the synthesized cues
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// synthCue renders the fallback sound for a cue.
// It returns nil for unknown cues.
func synthCue(cue string, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	switch cue {
	case tilefit.CueDragPickup:
		return newTone(rate, noteE5, noteG5, ms(60), 0.4, WaveSine)
	case tilefit.CueDropCancel:
		return newTone(rate, noteA4, noteE4, ms(90), 0.4, WaveTriangle)
	case tilefit.CueDropCommit:
		return beep.Seq(
			newTone(rate, noteC5, noteC5, ms(60), 0.25, WaveSquare),
			newTone(rate, noteG5, noteG5, ms(90), 0.25, WaveSquare),
		)
	case tilefit.CueWin:
		return beep.Seq(
			newTone(rate, noteC5, noteC5, ms(120), 0.35, WaveTriangle),
			newTone(rate, noteE5, noteE5, ms(120), 0.35, WaveTriangle),
			newTone(rate, noteG5, noteG5, ms(120), 0.35, WaveTriangle),
			newTone(rate, noteC6, noteC6, ms(300), 0.35, WaveTriangle),
		)
	case tilefit.CueAmbientLoop:
		var bar []beep.Streamer
		for _, f := range []float64{noteC4, noteE4, noteG4, noteE4, noteA4, noteG4, noteE4, noteG4} {
			bar = append(bar, newTone(rate, f, f, ms(500), 0.3, WaveSine))
		}
		return beep.Seq(bar...)
	}
	return nil
}

// SynthPCM renders the synthesized cue as signed 16-bit little-endian
// stereo PCM at rate, the format Ebitengine audio players read.
// It returns nil for unknown cues.
func SynthPCM(cue string, rate int) []byte {
	s := synthCue(cue, beep.SampleRate(rate))
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				sample := int16(core.Clamp(v, -1, 1) * math.MaxInt16)
				out = binary.LittleEndian.AppendUint16(out, uint16(sample))
			}
		}
		if !ok {
			break
		}
	}
	return out
}
