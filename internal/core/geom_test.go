package core

import (
	"math"
	"testing"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "one inside another",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 1.5, 1.5),
			b:        NewBox(1.25, 1.25, 2, 2),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.expected {
				t.Errorf("Intersects(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
			// Intersection should be symmetric
			if got := Intersects(tt.b, tt.a); got != tt.expected {
				t.Errorf("Intersects(%v, %v) = %v, expected %v (symmetric)", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestIntersectRatio(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		name                       string
		a, b                       Box
		area, ratioA, ratioB, rUni float64
	}{
		{
			name: "quarter overlap",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(5, 5, 10, 10),
			area: 25, ratioA: 0.25, ratioB: 0.25, rUni: 25.0 / 175,
		},
		{
			name: "disjoint",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(20, 20, 5, 5),
		},
		{
			name: "contained",
			a:    NewBox(0, 0, 20, 20),
			b:    NewBox(5, 5, 10, 10),
			area: 100, ratioA: 0.25, ratioB: 1, rUni: 0.25,
		},
		{
			name: "empty box",
			a:    NewBox(3, 3, 0, 0),
			b:    NewBox(0, 0, 10, 10),
		},
		{
			name: "both empty",
			a:    NewBox(0, 0, 0, 0),
			b:    NewBox(0, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := IntersectRatio(tt.a, tt.b)
			check := func(field string, got, want float64) {
				if math.IsNaN(got) || math.Abs(got-want) > eps {
					t.Errorf("%s = %v, expected %v", field, got, want)
				}
			}
			check("Area", in.Area, tt.area)
			check("RatioA", in.RatioA, tt.ratioA)
			check("RatioB", in.RatioB, tt.ratioB)
			check("RatioUnion", in.RatioUnion, tt.rUni)
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 5, 5)

	tests := []struct {
		p        Point
		expected bool
	}{
		{Pt(10, 10), true},
		{Pt(14.9, 14.9), true},
		{Pt(15, 12), false},
		{Pt(12, 15), false},
		{Pt(9.99, 12), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.expected)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, 4)).Sub(Pt(1, 1)).Scale(2, 0.5)
	if p != Pt(6, 2.5) {
		t.Errorf("got %v, expected (6, 2.5)", p)
	}
}
