package tilefit

import "github.com/vovakirdan/tilefit/internal/core"

// Curtain slide durations of the win animation.
const (
	curtainLeftSlide = 400
	curtainSlide     = 600
)

// Render draws the current state. It never mutates the engine; alpha is
// accepted for hosts that interpolate but positions are not extrapolated.
func (e *Engine) Render(dst Surface, alpha float64) {
	_ = alpha

	dst.Clear()
	dst.DrawRect(0, 0, core.LogicalW, core.LogicalH, e.palette.Background)

	for _, t := range e.bgTiles {
		draw(dst, SpriteBackground, t.X-bgMargin, t.Y-bgMargin)
	}

	e.renderGrid(dst)

	for _, s := range e.tray {
		if s != e.dragged {
			e.renderShape(dst, s)
		}
	}

	draw(dst, SpriteBack, restartBox.X, restartBox.Y)

	if e.dragged != nil {
		e.renderShape(dst, e.dragged)
	}
	if e.committed != nil {
		e.renderShape(dst, e.committed)
	}

	if e.tWin > 0 || e.hasNext {
		e.renderCurtain(dst)
	}

	e.renderCursor(dst)

	if e.thanks {
		draw(dst, SpriteThanks, 20, 0)
	}
}

func (e *Engine) renderGrid(dst Surface) {
	for i := range e.grid.cells {
		c := &e.grid.cells[i]
		if c.Hidden {
			continue
		}
		p := c.Pos.Add(c.Shake)
		draw(dst, cellSprite(c), p.X, p.Y)

		if i%2 == 0 {
			draw(dst, SpriteCellDecor, c.Pos.X+8, c.Pos.Y+5)
		}
	}
}

// cellSprite picks the sprite for a cell state.
func cellSprite(c *Cell) Sprite {
	switch {
	case c.Hover == HoverReject:
		return SpriteCellReject
	case c.Filled:
		return SpriteCellFilled
	case c.Hover == HoverAccept:
		return SpriteCellAccept
	}
	return SpriteCell
}

func (e *Engine) renderShape(dst Surface, s *Shape) {
	if s.blinkHidden(e.cfg.Timing.Commit) {
		return
	}
	for k := range s.Tiles {
		t := &s.Tiles[k]
		if !t.Filled {
			continue
		}
		p := t.Pos.Add(t.Wiggle)
		draw(dst, SpriteShapeTile, p.X, p.Y)
	}
}

func (e *Engine) renderCurtain(dst Surface) {
	leftY := core.Ease(core.Clamp(e.tWin/curtainLeftSlide, 0, 1)) * core.LogicalH
	mainY := -core.LogicalH + (1-core.Ease(core.Clamp(e.tWin/curtainSlide, 0, 1)))*core.LogicalH
	draw(dst, SpriteCurtainLeft, 50, leftY)
	draw(dst, SpriteCurtain, 64, mainY)

	if e.CanAdvance() {
		sprite := SpriteNext
		if e.hoveringNext {
			sprite = SpriteNextHot
		}
		draw(dst, sprite, nextBox.X, nextBox.Y)
	}
}

func (e *Engine) renderCursor(dst Surface) {
	sig := e.tracker.Poll()
	if !sig.Hovering.Valid {
		return
	}

	sprite := SpriteCursor
	switch {
	case e.dragged != nil:
		sprite = SpriteCursorDrag
	case e.hovered != nil:
		sprite = SpriteCursorHover
	}
	cb := cursorBox(sig.Hovering.Pos)
	draw(dst, sprite, cb.X, cb.Y)
}
