// Package core provides fundamental types and utilities for tilefit.
// It contains no UI toolkit dependencies (no Bubble Tea, no Ebitengine) to keep
// engine logic pure and testable.
package core

// Logical canvas size. All engine geometry is expressed in this space,
// regardless of the physical display.
const (
	LogicalW = 160
	LogicalH = 90
)

// Point is a position in logical canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies each axis independently.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Box is an axis-aligned box: top-left corner plus width and height.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Area returns W*H.
func (b Box) Area() float64 {
	return b.W * b.H
}

// Contains reports whether p lies inside b. The right and bottom edges are exclusive.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Intersects reports whether a and b overlap with a nonzero area.
// Touching edges do not count.
func Intersects(a, b Box) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// Intersection describes the overlap of two boxes.
type Intersection struct {
	Area       float64 // overlapping area
	RatioA     float64 // Area / area(a), 0 when a is empty
	RatioB     float64 // Area / area(b), 0 when b is empty
	RatioUnion float64 // Area / area(a ∪ b), 0 when the union is empty
}

// IntersectRatio computes the overlap of a and b.
func IntersectRatio(a, b Box) Intersection {
	x1 := max(a.X, b.X)
	y1 := max(a.Y, b.Y)
	x2 := min(a.Right(), b.Right())
	y2 := min(a.Bottom(), b.Bottom())

	area := max(0, x2-x1) * max(0, y2-y1)
	areaA := a.Area()
	areaB := b.Area()

	var in Intersection
	in.Area = area
	if areaA != 0 {
		in.RatioA = area / areaA
	}
	if areaB != 0 {
		in.RatioB = area / areaB
	}
	if union := areaA + areaB - area; union != 0 {
		in.RatioUnion = area / union
	}
	return in
}
