package tilefit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
)

const tick = 1000.0 / 60

// recordingAudio remembers every cue played.
type recordingAudio struct {
	cues  []string
	loops []bool
}

func (a *recordingAudio) Play(cue string, loop bool, _ float64) {
	a.cues = append(a.cues, cue)
	a.loops = append(a.loops, loop)
}

func (a *recordingAudio) count(cue string) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T, grids ...string) (*Engine, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	e, err := New(levels.NewPack("test", "Test", grids...), Options{Seed: 7, Audio: audio})
	require.NoError(t, err)
	return e, audio
}

// norm converts a logical point to the normalized input space.
func norm(p core.Point) core.Point {
	return core.Pt(p.X/core.LogicalW, p.Y/core.LogicalH)
}

func move(e *Engine, p core.Point) { e.Tracker().OnMove(norm(p)) }
func press(e *Engine, p core.Point) { e.Tracker().OnDown(norm(p)) }
func lift(e *Engine, p core.Point) { e.Tracker().OnUp(norm(p)) }

// runFor ticks the engine for at least ms milliseconds.
func runFor(e *Engine, ms float64) {
	for elapsed := 0.0; elapsed < ms; elapsed += tick {
		e.Update(tick)
	}
}

// grabPoint returns a point over the first filled sub-tile of s.
func grabPoint(s *Shape) core.Point {
	for k := range s.Tiles {
		if s.Tiles[k].Filled {
			return s.Tiles[k].Pos.Add(core.Pt(4, 4))
		}
	}
	panic("shape without filled sub-tiles")
}

// grab presses on s and runs one tick.
func grab(e *Engine, s *Shape) core.Point {
	p := grabPoint(s)
	move(e, p)
	press(e, p)
	e.Update(tick)
	return p
}

// hoverOver moves the dragged shape so that sub-tile 0 sits on (col, row)
// and runs one tick. It returns the pointer position used.
func hoverOver(e *Engine, col, row int) core.Point {
	anchor := core.Pt(float64(col*cellStepX), float64(cellOriginY+row*cellStepY))
	target := anchor.Add(core.Pt(5, 0))
	p := target.Sub(e.decay[0])
	move(e, p)
	e.Update(tick)
	return p
}

// place drags s onto (col, row) and releases it.
func place(e *Engine, s *Shape, col, row int) {
	grab(e, s)
	p := hoverOver(e, col, row)
	lift(e, p)
	e.Update(tick)
}

func countHover(e *Engine, h HoverState) int {
	n := 0
	for _, c := range e.grid.cells {
		if c.Hover == h {
			n++
		}
	}
	return n
}

func shapeOfKind(e *Engine, k levels.Kind) *Shape {
	for _, s := range e.tray {
		if s.Kind == k {
			return s
		}
	}
	return nil
}
