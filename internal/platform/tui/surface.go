package tui

import (
	"math"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

// glyph is the terminal rendition of a sprite.
type glyph struct {
	fill  rune // 0 leaves the area untouched
	color core.Color
	label []string   // centered text drawn over the fill
	ink   core.Color // label colour
	point bool       // draw one cell at the sprite centre instead of filling
}

// ScreenSurface draws the logical canvas onto a Screen. Sprites become
// fills of a glyph and colour looked up by their sheet region.
type ScreenSurface struct {
	screen *core.Screen
	glyphs map[tilefit.Sprite]glyph
}

// NewScreenSurface creates a surface over screen using the palette colours.
func NewScreenSurface(screen *core.Screen, p config.Palette) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		glyphs: glyphTable(p),
	}
}

func glyphTable(p config.Palette) map[tilefit.Sprite]glyph {
	return map[tilefit.Sprite]glyph{
		tilefit.SpriteShapeTile:   {fill: '█', color: p.Shape},
		tilefit.SpriteBackground:  {fill: '░', color: p.Tile},
		tilefit.SpriteCell:        {fill: '▒', color: p.Cell},
		tilefit.SpriteCellAccept:  {fill: '▓', color: p.CellAccept},
		tilefit.SpriteCellReject:  {fill: '▓', color: p.CellReject},
		tilefit.SpriteCellFilled:  {fill: '█', color: p.CellFilled},
		tilefit.SpriteCellDecor:   {},
		tilefit.SpriteBack:        {fill: '▓', color: p.Button, label: []string{"↺"}, ink: p.Curtain},
		tilefit.SpriteCurtainLeft: {fill: '█', color: p.Curtain},
		tilefit.SpriteCurtain:     {fill: '█', color: p.Curtain},
		tilefit.SpriteNext:        {fill: '▓', color: p.Button, label: []string{"NEXT", "→"}, ink: p.Curtain},
		tilefit.SpriteNextHot:     {fill: '█', color: p.ButtonHot, label: []string{"NEXT", "→"}, ink: p.Curtain},
		tilefit.SpriteCursor:      {fill: '+', color: p.Cursor, point: true},
		tilefit.SpriteCursorHover: {fill: '○', color: p.Cursor, point: true},
		tilefit.SpriteCursorDrag:  {fill: '●', color: p.Cursor, point: true},
		tilefit.SpriteThanks: {
			fill:  '█',
			color: p.Curtain,
			label: []string{"THANKS FOR PLAYING", "", "restart to play again"},
			ink:   p.Text,
		},
	}
}

// Screen returns the underlying buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

func (s *ScreenSurface) scale() (float64, float64) {
	return float64(s.screen.Width()) / core.LogicalW, float64(s.screen.Height()) / core.LogicalH
}

// span maps a logical interval to a half-open cell range with at least
// one cell.
func span(pos, size, scale float64) (int, int) {
	lo := int(math.Floor(pos * scale))
	hi := int(math.Floor((pos + size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// Clear blanks the screen.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// DrawRect fills a logical rectangle with solid colour.
func (s *ScreenSurface) DrawRect(x, y, w, h float64, c core.Color) {
	sx, sy := s.scale()
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, '█', c)
}

// DrawSprite draws the glyph of the sheet region (sx, sy, w, h) at (dx, dy).
// Regions without a glyph are ignored.
func (s *ScreenSurface) DrawSprite(dx, dy, w, h, sx, sy float64) {
	g, ok := s.glyphs[tilefit.Sprite{SX: sx, SY: sy, W: w, H: h}]
	if !ok || g.fill == 0 {
		return
	}

	kx, ky := s.scale()
	if g.point {
		cx := int(math.Floor((dx + w/2) * kx))
		cy := int(math.Floor((dy + h/2) * ky))
		s.screen.SetWithColor(cx, cy, g.fill, g.color)
		return
	}

	x0, x1 := span(dx, w, kx)
	y0, y1 := span(dy, h, ky)
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, g.fill, g.color)

	if len(g.label) == 0 {
		return
	}
	top := y0 + (y1-y0-len(g.label))/2
	for i, line := range g.label {
		runes := []rune(line)
		if len(runes) > x1-x0 {
			runes = runes[:x1-x0]
		}
		lx := x0 + (x1-x0-len(runes))/2
		row := top + i
		if row < y0 || row >= y1 {
			continue
		}
		// Labels keep the fill visible between words.
		for j, r := range runes {
			if r != ' ' {
				s.screen.SetWithColor(lx+j, row, r, g.ink)
			}
		}
	}
}

var _ tilefit.Surface = (*ScreenSurface)(nil)
