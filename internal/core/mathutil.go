package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Appr moves value toward target by at most step and never overshoots.
// It returns target when |value-target| <= step.
func Appr[T constraints.Float](value, target, step T) T {
	switch {
	case value < target:
		return min(value+step, target)
	case value > target:
		return max(value-step, target)
	}
	return value
}

// Lerp interpolates between a and b. Lerp(a, b, 1) is exactly b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Ease is the smoothstep curve t²(3-2t). Ease(0) == 0, Ease(1) == 1.
func Ease[T constraints.Float](t T) T {
	return t * t * (3 - 2*t)
}

// Clamp restricts val to [lo, hi].
func Clamp[T constraints.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap returns v modulo period, always in [0, period).
func Wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	if m >= period {
		return 0
	}
	return m
}
