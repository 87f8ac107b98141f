package tilefit

import (
	"math"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
)

// Tray slot anchors, indexed by slot.
var slotAnchors = [levels.MaxSlots]core.Point{
	{X: 92, Y: 0}, {X: 128, Y: 0},
	{X: 92, Y: 30}, {X: 128, Y: 30},
	{X: 92, Y: 60}, {X: 128, Y: 60},
}

// Sub-tile spacing inside a shape frame.
const (
	subTileStepX = 14
	subTileStepY = 13
)

// wiggleOffsets is the corner pattern applied to sub-tiles while hovered.
var wiggleOffsets = [levels.SubTiles]core.Point{
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
}

// SubTile is one position of a shape's 2x2 frame.
type SubTile struct {
	Filled bool
	Offset levels.Offset
	Home   core.Point // resting position in the tray
	Pos    core.Point // current position
	Wiggle core.Point // render-only offset
}

// Box returns the sub-tile footprint used for hit tests and matching.
func (t *SubTile) Box() core.Box {
	return core.NewBox(t.Pos.X+2, t.Pos.Y+2, 12, 12)
}

// Shape is a draggable piece. Its slot index is its identity.
type Shape struct {
	Slot  int
	Kind  levels.Kind
	Tiles [levels.SubTiles]SubTile

	// Countdown timers in milliseconds.
	Hovering float64
	Cancel   float64
	Commit   float64 // >0 blinking, <0 final hold, 0 idle
}

// newShape places a catalog shape in a tray slot.
func newShape(slot int, kind levels.Kind) *Shape {
	s := &Shape{Slot: slot, Kind: kind}
	anchor := slotAnchors[slot]
	pattern := kind.Pattern()
	for k := range s.Tiles {
		off := levels.OffsetOf(k)
		home := anchor.Add(core.Pt(float64(off.Col*subTileStepX), float64(off.Row*subTileStepY)))
		s.Tiles[k] = SubTile{
			Filled: pattern[k],
			Offset: off,
			Home:   home,
			Pos:    home,
		}
	}
	return s
}

// Cells returns the number of filled sub-tiles.
func (s *Shape) Cells() int {
	n := 0
	for i := range s.Tiles {
		if s.Tiles[i].Filled {
			n++
		}
	}
	return n
}

// hit reports whether any filled sub-tile meets box b.
func (s *Shape) hit(b core.Box) bool {
	for i := range s.Tiles {
		if s.Tiles[i].Filled && core.Intersects(s.Tiles[i].Box(), b) {
			return true
		}
	}
	return false
}

// AtHome reports whether every sub-tile rests exactly at its home position.
func (s *Shape) AtHome() bool {
	for i := range s.Tiles {
		if s.Tiles[i].Pos != s.Tiles[i].Home {
			return false
		}
	}
	return true
}

// blinkHidden reports whether the committed blink hides the shape this frame.
func (s *Shape) blinkHidden(period float64) bool {
	return period > 0 && math.Mod(s.Commit, period) > period/2
}

// update advances the shape timers by delta. clock drives the wiggle phase.
// It returns true once a committed shape has finished its hold.
func (s *Shape) update(delta, clock float64, tm config.TimingConfig) (discard bool) {
	if s.Commit > 0 {
		s.Commit = core.Appr(s.Commit, 0, delta)
		if s.Commit == 0 {
			s.Commit = -tm.CommitHold
			discard = tm.CommitHold <= 0
		}
	}
	if s.Commit < 0 {
		s.Commit = core.Appr(s.Commit, 0, delta)
		if s.Commit == 0 {
			discard = true
		}
	}

	cancelling := s.Cancel > 0
	s.Cancel = core.Appr(s.Cancel, 0, delta)
	s.Hovering = core.Appr(s.Hovering, 0, delta)

	progress := 0.0
	if cancelling && tm.Cancel > 0 {
		progress = core.Ease(1 - s.Cancel/tm.Cancel)
	}

	for k := range s.Tiles {
		t := &s.Tiles[k]
		switch {
		case s.Hovering > 0 && math.Mod(clock, 2*tm.Wiggle) >= tm.Wiggle:
			t.Wiggle = wiggleOffsets[k]
		default:
			t.Wiggle = core.Point{}
		}

		if cancelling {
			t.Pos = core.Pt(core.Lerp(t.Pos.X, t.Home.X, progress), core.Lerp(t.Pos.Y, t.Home.Y, progress))
		}
	}
	return discard
}
