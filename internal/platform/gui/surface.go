package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

// Surface draws the logical canvas onto an ebiten image scaled by an
// integer factor. Sprites are copied from the sheet with nearest filtering.
type Surface struct {
	dst    *ebiten.Image
	sheet  *ebiten.Image
	scale  float64
	colors map[core.Color]color.RGBA
}

// NewSurface creates a surface drawing from sheet at the given scale.
func NewSurface(sheet *ebiten.Image, scale int) *Surface {
	return &Surface{
		sheet:  sheet,
		scale:  float64(max(scale, 1)),
		colors: make(map[core.Color]color.RGBA),
	}
}

// Target sets the image drawn to by the next frame.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) color(c core.Color) color.RGBA {
	rgba, ok := s.colors[c]
	if !ok {
		rgba = toRGBA(c)
		s.colors[c] = rgba
	}
	return rgba
}

// Clear blanks the target.
func (s *Surface) Clear() {
	s.dst.Clear()
}

// DrawRect fills a logical rectangle with solid colour.
func (s *Surface) DrawRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst,
		float32(x*s.scale), float32(y*s.scale),
		float32(w*s.scale), float32(h*s.scale),
		s.color(c), false)
}

// DrawSprite copies the sheet region (sx, sy, w, h) to (dx, dy).
func (s *Surface) DrawSprite(dx, dy, w, h, sx, sy float64) {
	r := image.Rect(int(sx), int(sy), int(sx+w), int(sy+h))
	sub, ok := s.sheet.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.scale, s.scale)
	// Whole pixels keep the scaled art crisp.
	op.GeoM.Translate(math.Round(dx*s.scale), math.Round(dy*s.scale))
	s.dst.DrawImage(sub, op)
}

var _ tilefit.Surface = (*Surface)(nil)
