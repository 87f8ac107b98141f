package levels

import (
	"fmt"
	"strings"
)

// GridSize is the number of rows and columns of a level grid.
const GridSize = 5

// Empty marks a template position that is not part of the puzzle.
const Empty = '.'

// Template is a parsed level grid, indexed [row][col].
type Template [GridSize][GridSize]rune

// ParseTemplate parses a textual grid. Rows are separated by newlines or '/'.
// Blank lines around the grid are ignored. Missing rows and short rows are
// padded with Empty, so "..1a./..aa." describes the top two rows.
func ParseTemplate(s string) (Template, error) {
	var t Template
	for r := range t {
		for c := range t[r] {
			t[r][c] = Empty
		}
	}

	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "\n")
	if s == "" {
		return t, nil
	}

	lines := strings.Split(s, "\n")
	if len(lines) > GridSize {
		return t, ValidationError{
			Code:    CodeBadSize,
			Message: fmt.Sprintf("template has %d rows, at most %d allowed", len(lines), GridSize),
		}
	}

	for r, line := range lines {
		row := []rune(strings.TrimSpace(line))
		if len(row) > GridSize {
			return t, ValidationError{
				Code:    CodeBadSize,
				Message: fmt.Sprintf("row %d has %d columns, at most %d allowed", r, len(row), GridSize),
			}
		}
		copy(t[r][:], row)
	}

	return t, nil
}

// At returns the character at (col, row).
func (t Template) At(col, row int) rune {
	return t[row][col]
}

// String renders the template with '/' row separators.
func (t Template) String() string {
	rows := make([]string, GridSize)
	for r := range t {
		rows[r] = string(t[r][:])
	}
	return strings.Join(rows, "/")
}
