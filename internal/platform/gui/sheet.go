package gui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	css "github.com/mazznoer/csscolorparser"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

// toRGBA converts a "#rrggbb" colour. The default colour is opaque white.
func toRGBA(c core.Color) color.RGBA {
	if c == core.ColorDefault {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	parsed, err := css.Parse(string(c))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b, a := parsed.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// shade scales the RGB channels of c by f.
func shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(core.Clamp(float64(v)*f, 0, 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

func rect(s tilefit.Sprite) image.Rectangle {
	return image.Rect(int(s.SX), int(s.SY), int(s.SX+s.W), int(s.SY+s.H))
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// frame draws a one pixel border inside r.
func frame(img *image.RGBA, r image.Rectangle, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// disc draws a filled circle of radius rad at the centre of r. A positive
// hole leaves a transparent ring centre.
func disc(img *image.RGBA, r image.Rectangle, rad, hole float64, c color.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			d := dx*dx + dy*dy
			if d <= rad*rad && d >= hole*hole {
				img.Set(x, y, c)
			}
		}
	}
}

// arrow draws a right-pointing triangle centred in r.
func arrow(img *image.RGBA, r image.Rectangle, size int, c color.Color) {
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	for i := range size {
		fill(img, image.Rect(cx-size/2+i, cy-(size-i)/2, cx-size/2+i+1, cy+(size-i)/2+1), c)
	}
}

// tile draws a bevelled block: base fill, light top-left edge, dark border.
func tile(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	fill(img, r, c)
	fill(img, image.Rect(r.Min.X+1, r.Min.Y+1, r.Max.X-1, r.Min.Y+2), shade(c, 1.3))
	fill(img, image.Rect(r.Min.X+1, r.Min.Y+1, r.Min.X+2, r.Max.Y-1), shade(c, 1.3))
	frame(img, r, shade(c, 0.6))
}

// BuildSheet draws a placeholder sprite sheet from the palette. Every
// sprite region gets a recognizable flat rendition; text is added later
// by the host.
func BuildSheet(p config.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tilefit.SheetWidth, tilefit.SheetHeight))

	shape := toRGBA(p.Shape)
	tile(img, rect(tilefit.SpriteShapeTile), shape)

	bg := rect(tilefit.SpriteBackground)
	fill(img, bg, toRGBA(p.Tile))
	fill(img, bg.Inset(5), shade(toRGBA(p.Tile), 1.15))

	for _, c := range []struct {
		s   tilefit.Sprite
		col core.Color
	}{
		{tilefit.SpriteCell, p.Cell},
		{tilefit.SpriteCellAccept, p.CellAccept},
		{tilefit.SpriteCellReject, p.CellReject},
	} {
		r := rect(c.s)
		fill(img, r.Inset(1), toRGBA(c.col))
		frame(img, r.Inset(1), shade(toRGBA(c.col), 0.7))
	}
	tile(img, rect(tilefit.SpriteCellFilled).Inset(1), toRGBA(p.CellFilled))

	decor := rect(tilefit.SpriteCellDecor)
	dot := shade(toRGBA(p.Cell), 0.8)
	for _, pt := range []image.Point{{4, 4}, {27, 4}, {4, 19}, {27, 19}} {
		at := decor.Min.Add(pt)
		fill(img, image.Rect(at.X, at.Y, at.X+1, at.Y+1), dot)
	}

	button := toRGBA(p.Button)
	back := rect(tilefit.SpriteBack)
	tile(img, back, button)
	disc(img, back, 5, 3, toRGBA(p.Curtain))

	curtain := toRGBA(p.Curtain)
	fill(img, rect(tilefit.SpriteCurtainLeft), curtain)
	fill(img, rect(tilefit.SpriteCurtain), curtain)
	frame(img, rect(tilefit.SpriteCurtainLeft), shade(curtain, 0.8))

	for _, c := range []struct {
		s   tilefit.Sprite
		col color.RGBA
	}{
		{tilefit.SpriteNext, button},
		{tilefit.SpriteNextHot, toRGBA(p.ButtonHot)},
	} {
		r := rect(c.s)
		tile(img, r, c.col)
		arrow(img, r, 12, curtain)
	}

	cursor := toRGBA(p.Cursor)
	cr := rect(tilefit.SpriteCursor)
	fill(img, image.Rect(cr.Min.X+4, cr.Min.Y, cr.Min.X+5, cr.Max.Y), cursor)
	fill(img, image.Rect(cr.Min.X, cr.Min.Y+4, cr.Max.X, cr.Min.Y+5), cursor)
	disc(img, rect(tilefit.SpriteCursorHover), 4.5, 3, cursor)
	disc(img, rect(tilefit.SpriteCursorDrag), 4.5, 0, cursor)

	thanks := rect(tilefit.SpriteThanks)
	fill(img, thanks, curtain)
	frame(img, thanks.Inset(4), toRGBA(p.Text))

	return img
}

// LoadSheet reads a PNG sprite sheet. The sheet must cover every sprite
// region.
func LoadSheet(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot open sprite sheet: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot decode sprite sheet %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() < tilefit.SheetWidth || b.Dy() < tilefit.SheetHeight {
		return nil, fmt.Errorf("gui: sprite sheet %s is %dx%d, need at least %dx%d",
			path, b.Dx(), b.Dy(), tilefit.SheetWidth, tilefit.SheetHeight)
	}
	return img, nil
}
