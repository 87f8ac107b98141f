package tilefit

// Sprite is a region of the sprite sheet.
type Sprite struct {
	SX, SY float64
	W, H   float64
}

// Sprite sheet layout.
var (
	SpriteShapeTile   = Sprite{SX: 0, SY: 0, W: 16, H: 16}
	SpriteBackground  = Sprite{SX: 88, SY: 0, W: 16, H: 16}
	SpriteCell        = Sprite{SX: 56, SY: 0, W: 24, H: 16}
	SpriteCellAccept  = Sprite{SX: 56, SY: 16, W: 24, H: 16}
	SpriteCellReject  = Sprite{SX: 56, SY: 32, W: 24, H: 16}
	SpriteCellFilled  = Sprite{SX: 56, SY: 48, W: 24, H: 16}
	SpriteCellDecor   = Sprite{SX: 88, SY: 16, W: 32, H: 24}
	SpriteBack        = Sprite{SX: 0, SY: 80, W: 24, H: 16}
	SpriteCurtainLeft = Sprite{SX: 136, SY: 0, W: 14, H: 90}
	SpriteCurtain     = Sprite{SX: 150, SY: 0, W: 40, H: 90}
	SpriteNext        = Sprite{SX: 192, SY: 0, W: 30, H: 80}
	SpriteNextHot     = Sprite{SX: 228, SY: 0, W: 30, H: 80}
	SpriteCursor      = Sprite{SX: 80, SY: 40, W: 9, H: 9}
	SpriteCursorHover = Sprite{SX: 96, SY: 40, W: 9, H: 9}
	SpriteCursorDrag  = Sprite{SX: 112, SY: 40, W: 9, H: 9}
	SpriteThanks      = Sprite{SX: 32, SY: 96, W: 160, H: 80}
)

// SheetWidth and SheetHeight bound every sprite region.
const (
	SheetWidth  = 258
	SheetHeight = 176
)

// Sprites returns every sprite with a stable name, for hosts that build
// their own sheet.
func Sprites() map[string]Sprite {
	return map[string]Sprite{
		"shape_tile":   SpriteShapeTile,
		"background":   SpriteBackground,
		"cell":         SpriteCell,
		"cell_accept":  SpriteCellAccept,
		"cell_reject":  SpriteCellReject,
		"cell_filled":  SpriteCellFilled,
		"cell_decor":   SpriteCellDecor,
		"back":         SpriteBack,
		"curtain_left": SpriteCurtainLeft,
		"curtain":      SpriteCurtain,
		"next":         SpriteNext,
		"next_hot":     SpriteNextHot,
		"cursor":       SpriteCursor,
		"cursor_hover": SpriteCursorHover,
		"cursor_drag":  SpriteCursorDrag,
		"thanks":       SpriteThanks,
	}
}

func draw(dst Surface, s Sprite, x, y float64) {
	dst.DrawSprite(x, y, s.W, s.H, s.SX, s.SY)
}
