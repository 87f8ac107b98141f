package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogCells(t *testing.T) {
	tests := []struct {
		kind    Kind
		cells   int
		offsets []Offset
	}{
		{KindSquare, 4, []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{KindLTopLeft, 3, []Offset{{0, 0}, {1, 0}, {0, 1}}},
		{KindLTopRight, 3, []Offset{{0, 0}, {1, 0}, {1, 1}}},
		{KindLBotLeft, 3, []Offset{{0, 0}, {0, 1}, {1, 1}}},
		{KindLBotRight, 3, []Offset{{1, 0}, {0, 1}, {1, 1}}},
		{KindDiagonal, 2, []Offset{{1, 0}, {0, 1}}},
		{KindSingle, 1, []Offset{{1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Name(), func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.cells, tt.kind.Cells())
			assert.Equal(t, tt.offsets, tt.kind.Offsets())
		})
	}
}

func TestKindOf(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindOf(rune(k))
		assert.True(t, ok, "seed %q", rune(k))
		assert.Equal(t, k, got)
	}

	for _, r := range []rune{'.', 'a', 'o', '7', '0', '9'} {
		_, ok := KindOf(r)
		assert.False(t, ok, "%q is not a seed", r)
	}
	assert.Equal(t, "unknown", Kind('x').Name())
}

func TestOffsetIndexRoundTrip(t *testing.T) {
	for k := 0; k < SubTiles; k++ {
		assert.Equal(t, k, OffsetOf(k).Index())
	}
	assert.Equal(t, Offset{Col: 1, Row: 0}, OffsetOf(1))
	assert.Equal(t, Offset{Col: 0, Row: 1}, OffsetOf(2))
}
