package tilefit

import "github.com/vovakirdan/tilefit/internal/core"

// Surface is the render target. All coordinates are logical canvas units.
// DrawSprite copies a w x h region at (sx, sy) of the sprite sheet to
// (dx, dy) without smoothing.
type Surface interface {
	Clear()
	DrawRect(x, y, w, h float64, c core.Color)
	DrawSprite(dx, dy, w, h, sx, sy float64)
}

// Audio plays named cues. Play must not block; unknown cues are ignored.
type Audio interface {
	Play(cue string, loop bool, volume float64)
}

// Audio cues played by the engine.
const (
	CueDragPickup  = "drag-pickup"
	CueDropCancel  = "drop-cancel"
	CueDropCommit  = "drop-commit"
	CueWin         = "win"
	CueAmbientLoop = "ambient-loop"
)

// Cues lists every cue name.
func Cues() []string {
	return []string{CueDragPickup, CueDropCancel, CueDropCommit, CueWin, CueAmbientLoop}
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(string, bool, float64) {}
