package tilefit

import (
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
)

// HoverState is the drop preview of a target cell.
type HoverState int

const (
	HoverNone   HoverState = iota // no preview
	HoverAccept                   // the dragged shape would fit here
	HoverReject                   // the dragged shape would not fit
)

// Cell anchor layout.
const (
	cellStepX   = 17
	cellStepY   = 15
	cellOriginY = 15
)

// Cell is one target position of the grid.
type Cell struct {
	Col, Row int
	Pos      core.Point // top-left anchor
	Hidden   bool       // not part of this level's puzzle
	Filled   bool
	Hover    HoverState
	Shake    core.Point // render-only offset
}

// Box returns the acceptance footprint of the cell.
func (c *Cell) Box() core.Box {
	return core.NewBox(c.Pos.X+6, c.Pos.Y+2, 14, 12)
}

// cellIndex maps (col, row) to the column-major position in Grid.cells.
// The excluded (0,0) position takes no slot.
func cellIndex(col, row int) int {
	return col*levels.GridSize + row - 1
}

// Grid holds the playable target cells in column-major order.
type Grid struct {
	cells []Cell
}

// newGrid builds the 24 playable cells of a level.
func newGrid(lvl *levels.Level) Grid {
	g := Grid{cells: make([]Cell, 0, levels.GridSize*levels.GridSize-1)}
	for col := 0; col < levels.GridSize; col++ {
		for row := 0; row < levels.GridSize; row++ {
			if levels.Excluded(col, row) {
				continue
			}
			g.cells = append(g.cells, Cell{
				Col:    col,
				Row:    row,
				Pos:    core.Pt(float64(col*cellStepX), float64(cellOriginY+row*cellStepY)),
				Hidden: lvl.IsHidden(col, row),
			})
		}
	}
	return g
}

// At returns the cell at (col, row), or nil when the position is outside
// the grid, excluded, or the grid is empty.
func (g *Grid) At(col, row int) *Cell {
	if col < 0 || col >= levels.GridSize || row < 0 || row >= levels.GridSize {
		return nil
	}
	if levels.Excluded(col, row) {
		return nil
	}
	i := cellIndex(col, row)
	if i >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// clearHover resets every drop preview.
func (g *Grid) clearHover() {
	for i := range g.cells {
		g.cells[i].Hover = HoverNone
	}
}

// anchorFor returns the cell whose acceptance box has the largest nonzero
// share covered by b. Earlier cells win ties.
func (g *Grid) anchorFor(b core.Box) *Cell {
	var best *Cell
	bestRatio := 0.0
	for i := range g.cells {
		ratio := core.IntersectRatio(b, g.cells[i].Box()).RatioB
		if ratio > bestRatio {
			best = &g.cells[i]
			bestRatio = ratio
		}
	}
	return best
}

// highlight previews dropping s on the grid. Either every cell covered by
// a filled sub-tile is marked HoverAccept, or the existing ones are marked
// HoverReject.
func (g *Grid) highlight(s *Shape) {
	g.clearHover()
	if s == nil {
		return
	}

	anchor := g.anchorFor(s.Tiles[0].Box())
	if anchor == nil {
		return
	}

	var targets []*Cell
	fits := true
	for k := range s.Tiles {
		t := &s.Tiles[k]
		if !t.Filled {
			continue
		}
		c := g.At(anchor.Col+t.Offset.Col, anchor.Row+t.Offset.Row)
		if c == nil {
			fits = false
			continue
		}
		if c.Hidden || c.Filled {
			fits = false
		}
		targets = append(targets, c)
	}

	state := HoverAccept
	if !fits {
		state = HoverReject
	}
	for _, c := range targets {
		c.Hover = state
	}
}

// accepting returns the cells a commit would fill.
func (g *Grid) accepting() []*Cell {
	var out []*Cell
	for i := range g.cells {
		c := &g.cells[i]
		if c.Hover == HoverAccept && !c.Filled && !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// FilledCount returns the number of filled cells.
func (g *Grid) FilledCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Filled {
			n++
		}
	}
	return n
}
