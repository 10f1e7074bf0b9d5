package num

import (
	"math"
	"strconv"
)

// Float is the native double precision field.
type Float struct{}

// Name returns "float64".
func (Float) Name() string { return "float64" }

// Zero returns 0.
func (Float) Zero() float64 { return 0 }

// One returns 1.
func (Float) One() float64 { return 1 }

// FromFloat64 returns f unchanged.
func (Float) FromFloat64(f float64) float64 { return f }

// Float64 returns a unchanged.
func (Float) Float64(a float64) float64 { return a }

// Add returns a + b.
func (Float) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (Float) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Float) Mul(a, b float64) float64 { return a * b }

// Div returns a / b.
func (Float) Div(a, b float64) float64 { return a / b }

// Neg returns -a.
func (Float) Neg(a float64) float64 { return -a }

// Cmp compares a and b. NaN compares equal to nothing and reports 0.
func (Float) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a is ±0.
func (Float) IsZero(a float64) bool { return a == 0 }

// IsNaN reports whether a is NaN.
func (Float) IsNaN(a float64) bool { return math.IsNaN(a) }

// IsInt reports whether a is a finite integer.
func (Float) IsInt(a float64) bool {
	return !math.IsInf(a, 0) && a == math.Trunc(a)
}

// Epsilon returns 2^-52.
func (Float) Epsilon() float64 { return 0x1p-52 }

// Format renders a with the shortest exact representation.
func (Float) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
