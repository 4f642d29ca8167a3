// Package fixed implements the 24.8 fixed-point numbers the simulation runs on.
//
// Every physical quantity (position, velocity, size, speed, gravity) is kept as
// an integer scaled by 256. Conversions to and from real numbers only happen when
// a level is loaded and when a renderer asks for positions, so a sequence of
// inputs always reproduces the same state bit for bit.
package fixed

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Fixed is a real number scaled by 256.
type Fixed int64

const (
	Shift       = 8
	One   Fixed = 1 << Shift
)

func FromInt(i int) Fixed { return Fixed(i) << Shift }

// FromFloat rounds to the nearest representable value.
func FromFloat(f float64) Fixed { return Fixed(math.Round(f * float64(One))) }

// Int truncates toward negative infinity, the same as an arithmetic shift.
func (f Fixed) Int() int { return int(f >> Shift) }

func (f Fixed) Float() float64 { return float64(f) / float64(One) }

func Mul(a, b Fixed) Fixed { return (a * b) >> Shift }

// Div returns a/b, or 0 when b is 0.
func Div(a, b Fixed) Fixed {
	if b == 0 {
		return 0
	}
	return FloorDiv(a<<Shift, b)
}

// Quo divides by a plain integer, flooring.
func Quo(a Fixed, d int64) Fixed {
	if d == 0 {
		return 0
	}
	return FloorDiv(a, Fixed(d))
}

// MulDiv computes floor(a*n/d). ok is false when d is 0.
func MulDiv(a Fixed, n, d int64) (r Fixed, ok bool) {
	if d == 0 {
		return 0, false
	}
	return FloorDiv(a*Fixed(n), Fixed(d)), true
}

// FloorDiv divides rounding toward negative infinity. b must not be 0.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp returns lo when v < lo, hi when v > hi, otherwise v.
// When lo > hi the lower bound wins.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
