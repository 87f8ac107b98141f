// Package pointer turns raw pointer callbacks into per-tick signals.
//
// Hosts feed normalized [0,1] coordinates through OnDown, OnUp and OnMove.
// The engine reads a Signals snapshot once per tick with Poll and calls
// Update at the end of the tick to consume the edge-triggered signals.
package pointer

import "github.com/vovakirdan/tilefit/internal/core"

// DefaultDoubleClickWindow is the double-click window in milliseconds.
const DefaultDoubleClickWindow = 120

// Signal is an optional point in logical canvas space.
// Valid is false when the signal is absent this tick.
type Signal struct {
	Pos   core.Point
	Valid bool
}

func at(p core.Point) Signal {
	return Signal{Pos: p, Valid: true}
}

// Signals is a snapshot of the tracker for one tick.
type Signals struct {
	Hovering    Signal // pointer over the surface
	Down        Signal // button held, persists across ticks
	JustDown    Signal // edge: press started this tick
	Up          Signal // edge: released this tick
	DoubleClick Signal // edge: second press inside the window

	MovedSinceDown bool
}

// Tracker records pointer events for a fixed-size logical canvas.
// It is not safe for concurrent use; hosts call it from their update goroutine.
type Tracker struct {
	width, height float64
	window        float64

	sig         Signals
	doubleTimer float64
}

// New creates a tracker for the 160x90 logical canvas with the default window.
func New() *Tracker {
	return NewWithWindow(DefaultDoubleClickWindow)
}

// NewWithWindow creates a tracker with a custom double-click window.
func NewWithWindow(window float64) *Tracker {
	if window < 0 {
		window = 0
	}
	return &Tracker{
		width:  core.LogicalW,
		height: core.LogicalH,
		window: window,
	}
}

// scale maps a normalized point to logical canvas space.
func (t *Tracker) scale(p core.Point) core.Point {
	return p.Scale(t.width, t.height)
}

// OnDown records a press at normalized point p.
func (t *Tracker) OnDown(p core.Point) {
	lp := t.scale(p)

	t.sig.Up = Signal{}
	t.sig.Down = at(lp)
	t.sig.JustDown = at(lp)
	t.sig.MovedSinceDown = false

	if t.doubleTimer > 0 {
		t.sig.DoubleClick = at(lp)
		t.doubleTimer = 0
	} else {
		t.doubleTimer = t.window
	}
}

// OnUp records a release at normalized point p.
func (t *Tracker) OnUp(p core.Point) {
	t.sig.Down = Signal{}
	t.sig.Hovering = Signal{}
	t.sig.Up = at(t.scale(p))
}

// OnMove records pointer movement to normalized point p.
func (t *Tracker) OnMove(p core.Point) {
	t.sig.Hovering = at(t.scale(p))
	t.sig.MovedSinceDown = true
}

// Poll returns the current signals. The snapshot is a copy.
func (t *Tracker) Poll() Signals {
	return t.sig
}

// Update ends the tick: it decays the double-click window by delta
// and clears the edge signals.
func (t *Tracker) Update(delta float64) {
	t.doubleTimer = core.Appr(t.doubleTimer, 0, delta)
	t.sig.JustDown = Signal{}
	t.sig.Up = Signal{}
	t.sig.DoubleClick = Signal{}
}

// Reset drops all signals and closes the double-click window.
func (t *Tracker) Reset() {
	t.sig = Signals{}
	t.doubleTimer = 0
}
