package levels

import (
	"fmt"
	"math/rand"
)

// MaxSlots is the number of tray slots.
const MaxSlots = 6

// Placement assigns a shape kind to a tray slot.
type Placement struct {
	Slot int
	Kind Kind
}

// Level is a loaded level: the visibility mask of the grid plus the
// shuffled shapes in tray order.
type Level struct {
	Name       string
	Hidden     [GridSize][GridSize]bool // [row][col]
	Placements []Placement
}

// Excluded reports whether (col, row) is outside the playable area.
// Position (0,0) is always excluded.
func Excluded(col, row int) bool {
	return col == 0 && row == 0
}

// IsHidden reports whether (col, row) is not part of this level's puzzle.
func (l *Level) IsHidden(col, row int) bool {
	return l.Hidden[row][col]
}

// Cells returns the total number of filled sub-tiles over all placements.
func (l *Level) Cells() int {
	n := 0
	for _, p := range l.Placements {
		n += p.Kind.Cells()
	}
	return n
}

// Load builds a level from a template. The visibility mask follows the
// template as written; the tray order comes from shuffling the template's
// rows and then the characters within each row using rng.
func Load(t Template, rng *rand.Rand) (Level, error) {
	var lvl Level
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			lvl.Hidden[r][c] = t.At(c, r) == Empty
		}
	}

	rows := make([][]rune, GridSize)
	for r := range rows {
		rows[r] = append([]rune(nil), t[r][:]...)
	}

	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	for _, row := range rows {
		rng.Shuffle(len(row), func(i, j int) {
			row[i], row[j] = row[j], row[i]
		})
	}

	for _, row := range rows {
		for _, ch := range row {
			k, ok := KindOf(ch)
			if !ok {
				continue
			}
			if len(lvl.Placements) == MaxSlots {
				return Level{}, ValidationError{
					Code:    CodeTooManyShapes,
					Message: fmt.Sprintf("more than %d shapes in template %s", MaxSlots, t),
				}
			}
			lvl.Placements = append(lvl.Placements, Placement{Slot: len(lvl.Placements), Kind: k})
		}
	}

	return lvl, nil
}

// LoadString parses and loads a template.
func LoadString(s string, rng *rand.Rand) (Level, error) {
	t, err := ParseTemplate(s)
	if err != nil {
		return Level{}, err
	}
	return Load(t, rng)
}
