package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/core"
)

const tick = 1000.0 / 60

func TestScalingAtRecordTime(t *testing.T) {
	tr := New()
	tr.OnMove(core.Pt(0.5, 0.5))

	s := tr.Poll()
	require.True(t, s.Hovering.Valid)
	assert.Equal(t, core.Pt(80, 45), s.Hovering.Pos)
	assert.True(t, s.MovedSinceDown)
}

func TestDownUpEdges(t *testing.T) {
	tr := New()

	tr.OnMove(core.Pt(0.1, 0.1))
	tr.OnDown(core.Pt(0.25, 0.5))
	s := tr.Poll()
	assert.True(t, s.Down.Valid)
	assert.True(t, s.JustDown.Valid)
	assert.Equal(t, core.Pt(40, 45), s.JustDown.Pos)
	assert.False(t, s.MovedSinceDown, "press resets the movement flag")
	assert.False(t, s.Up.Valid)

	tr.Update(tick)
	s = tr.Poll()
	assert.True(t, s.Down.Valid, "down persists across ticks")
	assert.False(t, s.JustDown.Valid, "just-down lasts one tick")

	tr.OnUp(core.Pt(0.25, 0.5))
	s = tr.Poll()
	assert.False(t, s.Down.Valid)
	assert.False(t, s.Hovering.Valid, "release clears hovering")
	assert.True(t, s.Up.Valid)

	tr.Update(tick)
	assert.False(t, tr.Poll().Up.Valid, "up lasts one tick")
}

func TestDownClearsUp(t *testing.T) {
	tr := New()
	tr.OnUp(core.Pt(0, 0))
	tr.OnDown(core.Pt(0, 0))
	assert.False(t, tr.Poll().Up.Valid)
}

func TestDoubleClick(t *testing.T) {
	tr := New()
	p := core.Pt(0.5, 0.5)

	// First press opens the window.
	tr.OnDown(p)
	assert.False(t, tr.Poll().DoubleClick.Valid)
	tr.Update(tick)
	tr.OnUp(p)
	tr.Update(tick)

	// Second press inside the window is a double-click.
	tr.OnDown(p)
	assert.True(t, tr.Poll().DoubleClick.Valid)
	tr.Update(tick)
	assert.False(t, tr.Poll().DoubleClick.Valid, "double-click lasts one tick")
	tr.OnUp(p)
	tr.Update(tick)

	// Third press after the window is just a press.
	for i := 0; i < 10; i++ {
		tr.Update(tick)
	}
	tr.OnDown(p)
	assert.False(t, tr.Poll().DoubleClick.Valid)
}

func TestDoubleClickExactlyOnce(t *testing.T) {
	tr := New()
	p := core.Pt(0.2, 0.2)
	count := 0

	for i := 0; i < 3; i++ {
		tr.OnDown(p)
		if tr.Poll().DoubleClick.Valid {
			count++
		}
		tr.Update(tick)
		tr.OnUp(p)
		tr.Update(tick)
	}

	// Presses 1 and 2 pair up; press 3 opens a fresh window.
	assert.Equal(t, 1, count)
}

func TestDoubleClickWindowExpires(t *testing.T) {
	tests := []struct {
		name     string
		gap      float64
		expected bool
	}{
		{"inside window", 100, true},
		{"at window edge", 120, false},
		{"after window", 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.OnDown(core.Pt(0, 0))
			tr.Update(tt.gap)
			tr.OnDown(core.Pt(0, 0))
			assert.Equal(t, tt.expected, tr.Poll().DoubleClick.Valid)
		})
	}
}

func TestReset(t *testing.T) {
	tr := New()
	tr.OnMove(core.Pt(0.3, 0.3))
	tr.OnDown(core.Pt(0.3, 0.3))
	tr.Reset()

	assert.Equal(t, Signals{}, tr.Poll())

	tr.OnDown(core.Pt(0.3, 0.3))
	assert.False(t, tr.Poll().DoubleClick.Valid, "reset closes the window")
}

func TestPollIsSnapshot(t *testing.T) {
	tr := New()
	tr.OnDown(core.Pt(0.5, 0.5))
	s := tr.Poll()
	tr.Update(tick)
	assert.True(t, s.JustDown.Valid, "earlier snapshot is unaffected by Update")
}
