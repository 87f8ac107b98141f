package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/pointer"
)

func TestApplyNormalizesToCanvas(t *testing.T) {
	var in pointerInput
	tr := pointer.New()

	in.apply(tr, pointerFrame{X: 320, Y: 180, Present: true}, 640, 360)
	sig := tr.Poll()
	require.True(t, sig.Hovering.Valid)
	assert.InDelta(t, 80, sig.Hovering.Pos.X, 1e-9)
	assert.InDelta(t, 45, sig.Hovering.Pos.Y, 1e-9)

	in.apply(tr, pointerFrame{X: 9999, Y: -5, Present: true}, 640, 360)
	sig = tr.Poll()
	assert.InDelta(t, 160, sig.Hovering.Pos.X, 1e-9)
	assert.InDelta(t, 0, sig.Hovering.Pos.Y, 1e-9)
}

func TestApplyPressMoveRelease(t *testing.T) {
	var in pointerInput
	tr := pointer.New()

	in.apply(tr, pointerFrame{X: 40, Y: 40, Present: true}, 640, 360)
	in.apply(tr, pointerFrame{X: 40, Y: 40, Present: true, Pressed: true}, 640, 360)
	sig := tr.Poll()
	require.True(t, sig.Down.Valid)
	assert.True(t, sig.JustDown.Valid)
	assert.False(t, sig.MovedSinceDown, "a still pointer reports no move")
	assert.InDelta(t, 10, sig.Down.Pos.X, 1e-9)

	tr.Update(16)
	in.apply(tr, pointerFrame{X: 80, Y: 40, Present: true}, 640, 360)
	sig = tr.Poll()
	assert.True(t, sig.Down.Valid)
	assert.False(t, sig.JustDown.Valid)
	assert.True(t, sig.MovedSinceDown)
	assert.InDelta(t, 20, sig.Hovering.Pos.X, 1e-9)

	in.apply(tr, pointerFrame{X: 80, Y: 40, Present: true, Released: true}, 640, 360)
	sig = tr.Poll()
	assert.False(t, sig.Down.Valid)
	require.True(t, sig.Up.Valid)
	assert.InDelta(t, 20, sig.Up.Pos.X, 1e-9)
}

func TestApplyTouchPressJumps(t *testing.T) {
	var in pointerInput
	tr := pointer.New()

	in.apply(tr, pointerFrame{X: 0, Y: 0, Present: true}, 640, 360)
	// A touch lands somewhere else: the move precedes the press.
	in.apply(tr, pointerFrame{X: 600, Y: 300, Present: true, Pressed: true}, 640, 360)
	sig := tr.Poll()
	require.True(t, sig.Down.Valid)
	assert.InDelta(t, 150, sig.Down.Pos.X, 1e-9)
	assert.True(t, sig.Hovering.Valid)
	assert.InDelta(t, 150, sig.Hovering.Pos.X, 1e-9)
}

func TestApplyIgnoresAbsentPointer(t *testing.T) {
	var in pointerInput
	tr := pointer.New()

	in.apply(tr, pointerFrame{Pressed: true}, 640, 360)
	assert.Equal(t, pointer.Signals{}, tr.Poll())
}
