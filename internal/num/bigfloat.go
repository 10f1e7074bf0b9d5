package num

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultPrec is the mantissa precision used when BigFloat.Prec is zero.
const DefaultPrec = 256

// BigFloat is an arbitrary precision field over *big.Float.
//
// Every value it produces carries Prec bits of mantissa and rounds to nearest
// even. Operations that would produce NaN (Inf - Inf, 0/0, ...) panic with
// big.ErrNaN, matching math/big.
type BigFloat struct {
	Prec uint
}

// NewBigFloat returns a field with the given precision in bits.
func NewBigFloat(prec uint) BigFloat {
	return BigFloat{Prec: prec}
}

func (f BigFloat) prec() uint {
	if f.Prec == 0 {
		return DefaultPrec
	}
	return f.Prec
}

// New returns a zero value at the field precision.
func (f BigFloat) New() *big.Float {
	return new(big.Float).SetPrec(f.prec()).SetMode(big.ToNearestEven)
}

// Name returns "bigfloat<prec>".
func (f BigFloat) Name() string { return fmt.Sprintf("bigfloat%d", f.prec()) }

// Zero returns 0.
func (f BigFloat) Zero() *big.Float { return f.New() }

// One returns 1.
func (f BigFloat) One() *big.Float { return f.New().SetInt64(1) }

// FromFloat64 converts x exactly (float64 fits in any precision >= 53).
func (f BigFloat) FromFloat64(x float64) *big.Float { return f.New().SetFloat64(x) }

// Float64 rounds a to the nearest float64.
func (f BigFloat) Float64(a *big.Float) float64 {
	v, _ := a.Float64()
	return v
}

// Add returns a + b.
func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.New().Add(a, b) }

// Sub returns a - b.
func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.New().Sub(a, b) }

// Mul returns a * b.
func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.New().Mul(a, b) }

// Div returns a / b.
func (f BigFloat) Div(a, b *big.Float) *big.Float { return f.New().Quo(a, b) }

// Neg returns -a.
func (f BigFloat) Neg(a *big.Float) *big.Float { return f.New().Neg(a) }

// Cmp compares a and b.
func (f BigFloat) Cmp(a, b *big.Float) int { return a.Cmp(b) }

// IsZero reports whether a is ±0.
func (f BigFloat) IsZero(a *big.Float) bool { return a.Sign() == 0 }

// IsNaN always reports false: big.Float has no NaN.
func (f BigFloat) IsNaN(*big.Float) bool { return false }

// IsInt reports whether a is a finite integer.
func (f BigFloat) IsInt(a *big.Float) bool { return !a.IsInf() && a.IsInt() }

// Epsilon returns 2^(1-prec).
func (f BigFloat) Epsilon() float64 { return math.Ldexp(1, 1-int(f.prec())) }

// Format renders a with enough decimal digits for its precision.
func (f BigFloat) Format(a *big.Float) string {
	digits := int(float64(f.prec())*math.Log10(2)) + 1
	return a.Text('g', digits)
}
