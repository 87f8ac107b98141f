package tilefit

import (
	"math"

	"github.com/vovakirdan/tilefit/internal/core"
)

// Background tile grid and wrap period.
const (
	bgCols    = 7
	bgRows    = 5
	bgStep    = 28
	bgStagger = 16
	bgWrapX   = 200
	bgWrapY   = 150
	bgMargin  = 20 // tiles are drawn shifted up-left by this much
)

func (e *Engine) resetBackground() {
	e.bgTiles = e.bgTiles[:0]
	for i := 0; i < bgCols; i++ {
		for j := 0; j < bgRows; j++ {
			e.bgTiles = append(e.bgTiles, core.Pt(float64(j%2*bgStagger+i*bgStep), float64(j*bgStep)))
		}
	}
}

// updateBackground eases the scroll speed back to baseline and moves the
// tiles diagonally.
func (e *Engine) updateBackground(delta float64) {
	bg := e.cfg.Background
	e.bgSpeed = core.Appr(e.bgSpeed, bg.Speed, bg.Recovery*delta/1000)

	step := e.bgSpeed * delta / 1000
	for i := range e.bgTiles {
		t := &e.bgTiles[i]
		t.X = core.Wrap(t.X+step, bgWrapX)
		t.Y = core.Wrap(t.Y-step, bgWrapY)
	}
}

// updateShake runs the commit shake on filled cells.
func (e *Engine) updateShake(delta float64) {
	e.tShake = core.Appr(e.tShake, 0, delta)

	n := float64(len(e.grid.cells))
	for i := range e.grid.cells {
		c := &e.grid.cells[i]
		if !c.Filled {
			continue
		}
		if e.tShake > 0 && e.cfg.Timing.Shake > 0 {
			t := 1 - e.tShake/e.cfg.Timing.Shake + float64(i)/n*0.2 + e.rng.Float64()*0.2
			c.Shake = shakeOffset(t)
		} else {
			c.Shake = core.Point{}
		}
	}
}

// shakeOffset layers sine waves of different frequencies under an
// amplitude that decays with t and an ease-out envelope.
func shakeOffset(t float64) core.Point {
	decay := 1 - t
	x := math.Sin(t*math.Pi*8)*decay*0.5 +
		math.Sin(t*math.Pi*24)*decay*0.2 +
		math.Sin(t*math.Pi*3)*decay*0.3
	y := math.Cos(t*math.Pi*7.5)*decay*0.5 +
		math.Sin(t*math.Pi*22)*decay*0.15 +
		math.Cos(t*math.Pi*2.8)*decay*0.25
	envelope := 1 - math.Pow(1-t, 3)
	return core.Pt(x*2*envelope, y*2*envelope)
}
