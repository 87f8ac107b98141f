package gui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit"
)

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x39, G: 0x78, B: 0xa8, A: 0xff}, toRGBA("#3978a8"))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, toRGBA(core.ColorDefault))
	assert.Equal(t, color.RGBA{A: 0xff}, toRGBA("bogus"))
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 100, G: 200, B: 10, A: 0x80}
	assert.Equal(t, color.RGBA{R: 50, G: 100, B: 5, A: 0x80}, shade(c, 0.5))
	assert.Equal(t, color.RGBA{R: 200, G: 255, B: 20, A: 0x80}, shade(c, 2))
}

func TestBuildSheetCoversSprites(t *testing.T) {
	p := config.DefaultPalette()
	sheet := BuildSheet(p)
	assert.Equal(t, image.Rect(0, 0, tilefit.SheetWidth, tilefit.SheetHeight), sheet.Bounds())

	for name, sp := range tilefit.Sprites() {
		r := rect(sp)
		assert.True(t, r.In(sheet.Bounds()), "sprite %s outside the sheet", name)
		if sp == tilefit.SpriteCellDecor {
			continue
		}
		opaque := false
		for y := r.Min.Y; y < r.Max.Y && !opaque; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if sheet.RGBAAt(x, y).A > 0 {
					opaque = true
					break
				}
			}
		}
		assert.True(t, opaque, "sprite %s is empty", name)
	}
}

func TestBuildSheetColours(t *testing.T) {
	p := config.DefaultPalette()
	sheet := BuildSheet(p)

	cell := rect(tilefit.SpriteCell)
	assert.Equal(t, toRGBA(p.Cell), sheet.RGBAAt(cell.Min.X+5, cell.Min.Y+5))
	accept := rect(tilefit.SpriteCellAccept)
	assert.Equal(t, toRGBA(p.CellAccept), sheet.RGBAAt(accept.Min.X+5, accept.Min.Y+5))
	curtain := rect(tilefit.SpriteCurtain)
	assert.Equal(t, toRGBA(p.Curtain), sheet.RGBAAt(curtain.Min.X+20, curtain.Min.Y+45))

	// Drag cursor is a filled dot, hover cursor a ring.
	drag := rect(tilefit.SpriteCursorDrag)
	hover := rect(tilefit.SpriteCursorHover)
	assert.Equal(t, toRGBA(p.Cursor), sheet.RGBAAt(drag.Min.X+4, drag.Min.Y+4))
	assert.Zero(t, sheet.RGBAAt(hover.Min.X+4, hover.Min.Y+4).A)
}

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, w, h int) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		defer f.Close()
		require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
		return path
	}

	img, err := LoadSheet(write("ok.png", tilefit.SheetWidth, tilefit.SheetHeight))
	require.NoError(t, err)
	assert.Equal(t, tilefit.SheetWidth, img.Bounds().Dx())

	_, err = LoadSheet(write("small.png", 16, 16))
	assert.ErrorContains(t, err, "need at least")

	_, err = LoadSheet(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = LoadSheet(bad)
	assert.Error(t, err)
}

func TestWindowSize(t *testing.T) {
	assert.Equal(t, image.Pt(640, 360), WindowSize(0))
	assert.Equal(t, image.Pt(320, 180), WindowSize(2))
}
