package specfn

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/born-ml/rdiff/internal/num"
)

// Big evaluates functions over *big.Float.
//
// Exp, Log, Pow, Sqrt and everything built from them (Tanh, Expm1, Log1p,
// ₁F₀, powm1) are computed at the field precision. The remaining special
// functions have no arbitrary precision implementation here: they are
// evaluated in float64 and promoted, so their accuracy is that of Float.
type Big struct {
	num.BigFloat
	native Float
}

var _ Library[*big.Float] = Big{}

// NewBig returns a library working at prec bits of mantissa.
func NewBig(prec uint) Big {
	return Big{BigFloat: num.NewBigFloat(prec)}
}

// at copies x to the library precision.
func (l Big) at(x *big.Float) *big.Float {
	return l.New().Set(x)
}

// promote lifts a float64 result, rejecting NaN.
func (l Big) promote(fn string, v float64, args ...*big.Float) (*big.Float, error) {
	if math.IsNaN(v) {
		return nil, domainErr(fn, "result is not a number", l.floats(args...)...)
	}
	return l.FromFloat64(v), nil
}

func (l Big) floats(xs ...*big.Float) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.Float64(x)
	}
	return out
}

func (l Big) via1(fn string, f func(float64) (float64, error), x *big.Float) (*big.Float, error) {
	v, err := f(l.Float64(x))
	if err != nil {
		return nil, err
	}
	return l.promote(fn, v, x)
}

func (l Big) via2(fn string, f func(a, b float64) (float64, error), a, b *big.Float) (*big.Float, error) {
	v, err := f(l.Float64(a), l.Float64(b))
	if err != nil {
		return nil, err
	}
	return l.promote(fn, v, a, b)
}

func (l Big) via3(fn string, f func(a, b, c float64) (float64, error), a, b, c *big.Float) (*big.Float, error) {
	v, err := f(l.Float64(a), l.Float64(b), l.Float64(c))
	if err != nil {
		return nil, err
	}
	return l.promote(fn, v, a, b, c)
}

// Exp returns e^x.
func (l Big) Exp(x *big.Float) (*big.Float, error) {
	return l.at(bigfloat.Exp(l.at(x))), nil
}

// Log returns ln x.
func (l Big) Log(x *big.Float) (*big.Float, error) {
	switch x.Sign() {
	case -1:
		return nil, domainErr("log", "negative argument", l.floats(x)...)
	case 0:
		return nil, domainErr("log", "pole at zero", l.floats(x)...)
	}
	return l.at(bigfloat.Log(l.at(x))), nil
}

// Sqrt returns √x.
func (l Big) Sqrt(x *big.Float) (*big.Float, error) {
	if x.Sign() < 0 {
		return nil, domainErr("sqrt", "negative argument", l.floats(x)...)
	}
	return l.New().Sqrt(x), nil
}

// Pow returns x^y.
func (l Big) Pow(x, y *big.Float) (*big.Float, error) {
	switch x.Sign() {
	case 0:
		switch y.Sign() {
		case 1:
			return l.Zero(), nil
		case 0:
			return l.One(), nil
		}
		return nil, domainErr("pow", "pole: zero to a negative power", l.floats(x, y)...)
	case -1:
		if !y.IsInt() {
			return nil, domainErr("pow", "negative base with non-integer exponent", l.floats(x, y)...)
		}
		r := bigfloat.Pow(l.New().Abs(x), l.at(y))
		if yi, _ := y.Int(nil); yi.Abs(yi).Bit(0) == 1 {
			r.Neg(r)
		}
		return l.at(r), nil
	}
	if y.Sign() == 0 {
		return l.One(), nil
	}
	return l.at(bigfloat.Pow(l.at(x), l.at(y))), nil
}

// Sin returns sin x (float64 accuracy).
func (l Big) Sin(x *big.Float) (*big.Float, error) { return l.via1("sin", l.native.Sin, x) }

// Cos returns cos x (float64 accuracy).
func (l Big) Cos(x *big.Float) (*big.Float, error) { return l.via1("cos", l.native.Cos, x) }

// Tanh returns (e^2x - 1)/(e^2x + 1).
func (l Big) Tanh(x *big.Float) (*big.Float, error) {
	if x.IsInf() {
		return l.New().SetInt64(int64(x.Sign())), nil
	}
	e2, _ := l.Exp(l.Add(x, x))
	one := l.One()
	return l.Div(l.Sub(e2, one), l.Add(e2, one)), nil
}

// Expm1 returns e^x - 1.
func (l Big) Expm1(x *big.Float) (*big.Float, error) {
	e, _ := l.Exp(x)
	return l.Sub(e, l.One()), nil
}

// Log1p returns ln(1 + x).
func (l Big) Log1p(x *big.Float) (*big.Float, error) {
	y := l.Add(l.One(), x)
	switch y.Sign() {
	case -1:
		return nil, domainErr("log1p", "argument below -1", l.floats(x)...)
	case 0:
		return nil, domainErr("log1p", "pole at -1", l.floats(x)...)
	}
	return l.Log(y)
}

// Erf returns the error function (float64 accuracy).
func (l Big) Erf(x *big.Float) (*big.Float, error) { return l.via1("erf", l.native.Erf, x) }

// Erfc returns the complementary error function (float64 accuracy).
func (l Big) Erfc(x *big.Float) (*big.Float, error) { return l.via1("erfc", l.native.Erfc, x) }

// Tgamma returns Γ(x) (float64 accuracy).
func (l Big) Tgamma(x *big.Float) (*big.Float, error) {
	return l.via1("tgamma", l.native.Tgamma, x)
}

// Lgamma returns log|Γ(x)| (float64 accuracy).
func (l Big) Lgamma(x *big.Float) (*big.Float, error) {
	return l.via1("lgamma", l.native.Lgamma, x)
}

// Polygamma returns ψ⁽ⁿ⁾(x) (float64 accuracy).
func (l Big) Polygamma(n int, x *big.Float) (*big.Float, error) {
	return l.via1("polygamma", func(v float64) (float64, error) {
		return l.native.Polygamma(n, v)
	}, x)
}

// Beta returns B(a, b) (float64 accuracy).
func (l Big) Beta(a, b *big.Float) (*big.Float, error) {
	return l.via2("beta", l.native.Beta, a, b)
}

// Ibeta returns I_x(a, b) (float64 accuracy).
func (l Big) Ibeta(a, b, x *big.Float) (*big.Float, error) {
	return l.via3("ibeta", l.native.Ibeta, a, b, x)
}

// IbetaDerivA returns ∂I_x(a, b)/∂a (float64 accuracy).
func (l Big) IbetaDerivA(a, b, x *big.Float) (*big.Float, error) {
	return l.via3("ibeta_derivative_a", l.native.IbetaDerivA, a, b, x)
}

// IbetaDerivB returns ∂I_x(a, b)/∂b (float64 accuracy).
func (l Big) IbetaDerivB(a, b, x *big.Float) (*big.Float, error) {
	return l.via3("ibeta_derivative_b", l.native.IbetaDerivB, a, b, x)
}

// CylBesselJ returns J_n(x) (float64 accuracy).
func (l Big) CylBesselJ(n int, x *big.Float) (*big.Float, error) {
	return l.via1("cyl_bessel_j", func(v float64) (float64, error) {
		return l.native.CylBesselJ(n, v)
	}, x)
}

// CylBesselK returns K_ν(x) (float64 accuracy).
func (l Big) CylBesselK(nu, x *big.Float) (*big.Float, error) {
	return l.via2("cyl_bessel_k", l.native.CylBesselK, nu, x)
}

// CylBesselKDerivNu returns ∂K_ν(x)/∂ν (float64 accuracy).
func (l Big) CylBesselKDerivNu(nu, x *big.Float) (*big.Float, error) {
	return l.via2("cyl_bessel_k_derivative_nu", l.native.CylBesselKDerivNu, nu, x)
}

// Hypergeometric1F0 returns (1-z)^-a.
func (l Big) Hypergeometric1F0(a, z *big.Float) (*big.Float, error) {
	base := l.Sub(l.One(), z)
	switch {
	case base.Sign() == 0:
		return nil, domainErr("hypergeometric_1F0", "pole at z = 1", l.floats(a, z)...)
	case base.Sign() < 0 && !a.IsInt():
		return nil, domainErr("hypergeometric_1F0", "branch cut: z > 1 with non-integer a", l.floats(a, z)...)
	}
	return l.Pow(base, l.Neg(a))
}

// LambertW0 returns W₀(x) (float64 accuracy).
func (l Big) LambertW0(x *big.Float) (*big.Float, error) {
	return l.via1("lambert_w0", l.native.LambertW0, x)
}

// LambertWm1 returns W₋₁(x) (float64 accuracy).
func (l Big) LambertWm1(x *big.Float) (*big.Float, error) {
	return l.via1("lambert_wm1", l.native.LambertWm1, x)
}

// Powm1 returns x^y - 1.
func (l Big) Powm1(x, y *big.Float) (*big.Float, error) {
	switch {
	case x.Sign() == 0 && y.Sign() <= 0:
		return nil, domainErr("powm1", "pole: zero to a non-positive power", l.floats(x, y)...)
	case x.Sign() < 0 && !y.IsInt():
		return nil, domainErr("powm1", "negative base with non-integer exponent", l.floats(x, y)...)
	}
	p, err := l.Pow(x, y)
	if err != nil {
		return nil, err
	}
	return l.Sub(p, l.One()), nil
}
