package levels

import "fmt"

// Validation error codes.
const (
	CodeBadSize       = "BAD_SIZE"
	CodeTooManyShapes = "TOO_MANY_SHAPES"
	CodeNoShapes      = "NO_SHAPES"
	CodeCellMismatch  = "CELL_MISMATCH"
	CodeCornerUsed    = "CORNER_USED"
	CodeEmptyPack     = "EMPTY_PACK"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a template describes a solvable-looking level:
//   - the excluded corner (0,0) is Empty
//   - at least one and at most MaxSlots shapes are seeded
//   - the seeded shapes cover exactly as many cells as the grid shows
func Validate(t Template) error {
	if t.At(0, 0) != Empty {
		return ValidationError{
			Code:    CodeCornerUsed,
			Message: fmt.Sprintf("position (0,0) is excluded from play but holds %q", t.At(0, 0)),
		}
	}

	shapes, shapeCells, visible := 0, 0, 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			ch := t.At(c, r)
			if ch == Empty {
				continue
			}
			visible++
			if k, ok := KindOf(ch); ok {
				shapes++
				shapeCells += k.Cells()
			}
		}
	}

	if shapes == 0 {
		return ValidationError{Code: CodeNoShapes, Message: "template seeds no shapes"}
	}
	if shapes > MaxSlots {
		return ValidationError{
			Code:    CodeTooManyShapes,
			Message: fmt.Sprintf("template seeds %d shapes, the tray holds %d", shapes, MaxSlots),
		}
	}
	if shapeCells != visible {
		return ValidationError{
			Code:    CodeCellMismatch,
			Message: fmt.Sprintf("shapes cover %d cells but the grid shows %d", shapeCells, visible),
		}
	}

	return nil
}

// ValidateString parses and validates a template.
func ValidateString(s string) error {
	t, err := ParseTemplate(s)
	if err != nil {
		return err
	}
	return Validate(t)
}
