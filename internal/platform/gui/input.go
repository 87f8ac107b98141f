package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/pointer"
)

// pointerFrame is the pointer state read in one tick, in screen pixels.
type pointerFrame struct {
	X, Y     int
	Present  bool // position is known
	Pressed  bool // primary button or touch started
	Released bool // primary button or touch ended
}

// pointerInput merges mouse and the first active touch into a single
// pointer. A touch in progress takes precedence over the mouse.
type pointerInput struct {
	touch    ebiten.TouchID
	touching bool
	justIDs  []ebiten.TouchID

	lastX, lastY int
	known        bool
}

// read polls ebiten for this tick's pointer state.
func (in *pointerInput) read() pointerFrame {
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touch) {
			in.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(in.touch)
			return pointerFrame{X: x, Y: y, Present: true, Released: true}
		}
		x, y := ebiten.TouchPosition(in.touch)
		return pointerFrame{X: x, Y: y, Present: true}
	}

	in.justIDs = inpututil.AppendJustPressedTouchIDs(in.justIDs[:0])
	if len(in.justIDs) > 0 {
		in.touch = in.justIDs[0]
		in.touching = true
		x, y := ebiten.TouchPosition(in.touch)
		return pointerFrame{X: x, Y: y, Present: true, Pressed: true}
	}

	x, y := ebiten.CursorPosition()
	return pointerFrame{
		X:        x,
		Y:        y,
		Present:  true,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// apply forwards f to the tracker, normalized over a w x h screen.
// Moves are only reported when the position changes.
func (in *pointerInput) apply(t *pointer.Tracker, f pointerFrame, w, h int) {
	if !f.Present {
		return
	}
	p := core.Pt(
		core.Clamp(float64(f.X)/float64(max(w, 1)), 0, 1),
		core.Clamp(float64(f.Y)/float64(max(h, 1)), 0, 1),
	)

	if !in.known || f.X != in.lastX || f.Y != in.lastY {
		t.OnMove(p)
	}
	in.lastX, in.lastY, in.known = f.X, f.Y, true

	if f.Pressed {
		t.OnDown(p)
	}
	if f.Released {
		t.OnUp(p)
	}
}
