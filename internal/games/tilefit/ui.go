package tilefit

import (
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/pointer"
)

// Button hit areas.
var (
	restartBox = core.NewBox(0, 0, 24, 16)
	nextBox    = core.NewBox(96, 15, 30, 80)
)

// updateUI handles the restart and next buttons.
func (e *Engine) updateUI(sig pointer.Signals) {
	if sig.JustDown.Valid && core.Intersects(cursorBox(sig.JustDown.Pos), restartBox) {
		e.RestartLevel()
	}

	if !e.CanAdvance() {
		return
	}
	if sig.Hovering.Valid {
		e.hoveringNext = core.Intersects(cursorBox(sig.Hovering.Pos), nextBox)
	}
	if sig.JustDown.Valid && core.Intersects(cursorBox(sig.JustDown.Pos), nextBox) {
		e.NextLevel()
	}
}
