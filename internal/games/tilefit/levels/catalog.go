// Package levels provides the shape catalog, the grid template parser and
// level pack loading for tilefit.
// This package does not depend on the engine; the engine depends on levels.
package levels

// Kind identifies a shape in the catalog by its seed character.
type Kind rune

// Shape catalog. The seed characters are those used by level templates.
const (
	KindSquare    Kind = '1' // 2x2 square
	KindLTopLeft  Kind = '2' // L missing bottom-right
	KindLTopRight Kind = '3' // L missing bottom-left
	KindLBotLeft  Kind = '4' // L missing top-right
	KindLBotRight Kind = '5' // L missing top-left
	KindDiagonal  Kind = '6' // top-right and bottom-left
	KindSingle    Kind = '8' // top-right only
)

// FrameSize is the side of the square frame every shape fits in.
const FrameSize = 2

// SubTiles is the number of sub-tile positions in a shape frame.
const SubTiles = FrameSize * FrameSize

// Offset is a sub-tile position inside the shape frame.
type Offset struct {
	Col, Row int
}

// Index returns the sub-tile index col + row*FrameSize.
func (o Offset) Index() int {
	return o.Col + o.Row*FrameSize
}

// OffsetOf returns the frame offset of sub-tile index k.
func OffsetOf(k int) Offset {
	return Offset{Col: k % FrameSize, Row: k / FrameSize}
}

type kindInfo struct {
	name    string
	pattern [SubTiles]bool
}

var catalog = map[Kind]kindInfo{
	KindSquare:    {"square", [SubTiles]bool{true, true, true, true}},
	KindLTopLeft:  {"L (top-left)", [SubTiles]bool{true, true, true, false}},
	KindLTopRight: {"L (top-right)", [SubTiles]bool{true, true, false, true}},
	KindLBotLeft:  {"L (bottom-left)", [SubTiles]bool{true, false, true, true}},
	KindLBotRight: {"L (bottom-right)", [SubTiles]bool{false, true, true, true}},
	KindDiagonal:  {"diagonal", [SubTiles]bool{false, true, true, false}},
	KindSingle:    {"single", [SubTiles]bool{false, true, false, false}},
}

// KindOf returns the catalog kind seeded by r, if any.
func KindOf(r rune) (Kind, bool) {
	k := Kind(r)
	_, ok := catalog[k]
	return k, ok
}

// Kinds returns all catalog kinds in seed order.
func Kinds() []Kind {
	return []Kind{KindSquare, KindLTopLeft, KindLTopRight, KindLBotLeft, KindLBotRight, KindDiagonal, KindSingle}
}

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// Name returns a human-readable name.
func (k Kind) Name() string {
	if info, ok := catalog[k]; ok {
		return info.name
	}
	return "unknown"
}

// Pattern returns which sub-tiles are filled, indexed by Offset.Index.
func (k Kind) Pattern() [SubTiles]bool {
	return catalog[k].pattern
}

// Offsets returns the frame offsets of the filled sub-tiles in index order.
func (k Kind) Offsets() []Offset {
	var out []Offset
	for i, filled := range k.Pattern() {
		if filled {
			out = append(out, OffsetOf(i))
		}
	}
	return out
}

// Cells returns the number of filled sub-tiles.
func (k Kind) Cells() int {
	n := 0
	for _, filled := range k.Pattern() {
		if filled {
			n++
		}
	}
	return n
}
