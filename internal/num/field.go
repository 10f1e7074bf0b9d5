// Package num defines the numeric types the differentiation engine runs over.
//
// The engine never touches a value directly: every arithmetic step goes
// through a Field, the same way the autodiff layer used to go through a
// compute backend. Two fields are provided:
//   - Float: native IEEE 754 double precision
//   - BigFloat: arbitrary precision on top of math/big
package num

// Field is the arithmetic a numeric type must provide.
//
// Implementations must return fresh values from every operation: values stored
// in a computation record are treated as immutable.
type Field[T any] interface {
	// Name identifies the numeric type (e.g. "float64", "bigfloat256").
	Name() string

	Zero() T
	One() T

	// FromFloat64 converts a native constant into the field.
	FromFloat64(f float64) T

	// Float64 rounds a value to the nearest float64.
	Float64(a T) float64

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T

	// Cmp returns -1, 0 or +1 for a < b, a == b, a > b.
	Cmp(a, b T) int

	IsZero(a T) bool
	IsNaN(a T) bool
	IsInt(a T) bool

	// Epsilon is the distance from 1 to the next representable value.
	Epsilon() float64

	Format(a T) string
}
