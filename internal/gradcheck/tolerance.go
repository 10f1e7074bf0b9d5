package gradcheck

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/born-ml/rdiff/internal/num"
)

// SpecialScale widens tolerances for special functions, whose values carry
// more rounding than elementary ones.
const SpecialScale = 1000

// Tolerance bounds the difference between a computed and a reference value.
// A pair is close when it is within Abs or within Rel relative to the larger
// magnitude.
type Tolerance struct {
	Rel float64
	Abs float64
}

// CloseTol is the default tolerance for values of f: a few epsilons of f's
// precision.
func CloseTol[T any](f num.Field[T]) Tolerance {
	return Tolerance{Rel: 8 * f.Epsilon()}
}

// Scaled multiplies both bounds by k.
func (t Tolerance) Scaled(k float64) Tolerance {
	return Tolerance{Rel: t.Rel * k, Abs: t.Abs * k}
}

// AtLeast raises the relative bound to rel if it is tighter.
func (t Tolerance) AtLeast(rel float64) Tolerance {
	t.Rel = max(t.Rel, rel)
	return t
}

// Within reports whether got is within t of want.
func (t Tolerance) Within(got, want float64) bool {
	return scalar.EqualWithinAbsOrRel(got, want, t.Abs, t.Rel)
}

// CloseFraction reports whether |got-want| <= rel·|got| and
// |got-want| <= rel·|want|, evaluated in f's own precision.
func CloseFraction[T any](f num.Field[T], got, want T, rel float64) bool {
	diff := abs(f, f.Sub(got, want))
	if f.IsZero(diff) {
		return true
	}
	r := f.FromFloat64(rel)
	return f.Cmp(diff, f.Mul(r, abs(f, got))) <= 0 && f.Cmp(diff, f.Mul(r, abs(f, want))) <= 0
}

func abs[T any](f num.Field[T], x T) T {
	if f.Cmp(x, f.Zero()) < 0 {
		return f.Neg(x)
	}
	return x
}
