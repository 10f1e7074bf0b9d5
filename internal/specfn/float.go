package specfn

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/born-ml/rdiff/internal/num"
)

// Float evaluates functions in native double precision.
//
// Values come from the standard library and gonum's mathext where those
// provide them; Bessel K, the incomplete beta parameter derivatives,
// polygamma of order >= 1 and Lambert W are computed here.
type Float struct {
	num.Float
}

var _ Library[float64] = Float{}

func isNonPositiveInt(x float64) bool {
	return x <= 0 && x == math.Trunc(x)
}

// Exp returns e^x.
func (Float) Exp(x float64) (float64, error) { return math.Exp(x), nil }

// Log returns ln x.
func (Float) Log(x float64) (float64, error) {
	switch {
	case x < 0:
		return 0, domainErr("log", "negative argument", x)
	case x == 0:
		return 0, domainErr("log", "pole at zero", x)
	}
	return math.Log(x), nil
}

// Sqrt returns √x.
func (Float) Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, domainErr("sqrt", "negative argument", x)
	}
	return math.Sqrt(x), nil
}

// Pow returns x^y.
func (Float) Pow(x, y float64) (float64, error) {
	switch {
	case x < 0 && y != math.Trunc(y):
		return 0, domainErr("pow", "negative base with non-integer exponent", x, y)
	case x == 0 && y < 0:
		return 0, domainErr("pow", "pole: zero to a negative power", x, y)
	}
	return math.Pow(x, y), nil
}

// Sin returns sin x.
func (Float) Sin(x float64) (float64, error) { return math.Sin(x), nil }

// Cos returns cos x.
func (Float) Cos(x float64) (float64, error) { return math.Cos(x), nil }

// Tanh returns tanh x.
func (Float) Tanh(x float64) (float64, error) { return math.Tanh(x), nil }

// Expm1 returns e^x - 1.
func (Float) Expm1(x float64) (float64, error) { return math.Expm1(x), nil }

// Log1p returns ln(1 + x).
func (Float) Log1p(x float64) (float64, error) {
	switch {
	case x < -1:
		return 0, domainErr("log1p", "argument below -1", x)
	case x == -1:
		return 0, domainErr("log1p", "pole at -1", x)
	}
	return math.Log1p(x), nil
}

// Erf returns the error function.
func (Float) Erf(x float64) (float64, error) { return math.Erf(x), nil }

// Erfc returns the complementary error function.
func (Float) Erfc(x float64) (float64, error) { return math.Erfc(x), nil }

// Tgamma returns Γ(x).
func (Float) Tgamma(x float64) (float64, error) {
	if isNonPositiveInt(x) {
		return 0, domainErr("tgamma", "pole at non-positive integer", x)
	}
	return math.Gamma(x), nil
}

// Lgamma returns log|Γ(x)|.
func (Float) Lgamma(x float64) (float64, error) {
	if isNonPositiveInt(x) {
		return 0, domainErr("lgamma", "pole at non-positive integer", x)
	}
	v, _ := math.Lgamma(x)
	return v, nil
}

// Polygamma returns ψ⁽ⁿ⁾(x).
func (Float) Polygamma(n int, x float64) (float64, error) {
	switch {
	case n < 0:
		return 0, domainErr("polygamma", "negative order", float64(n), x)
	case isNonPositiveInt(x):
		return 0, domainErr("polygamma", "pole at non-positive integer", float64(n), x)
	case n == 0:
		return digamma(x), nil
	}
	return polygamma(n, x), nil
}

// Beta returns B(a, b).
func (Float) Beta(a, b float64) (float64, error) {
	if a <= 0 || b <= 0 {
		return 0, domainErr("beta", "parameters must be positive", a, b)
	}
	return mathext.Beta(a, b), nil
}

func checkIbeta(fn string, a, b, x float64) error {
	if a <= 0 || b <= 0 {
		return domainErr(fn, "parameters must be positive", a, b, x)
	}
	if x < 0 || x > 1 {
		return domainErr(fn, "x outside [0, 1]", a, b, x)
	}
	return nil
}

// Ibeta returns I_x(a, b).
func (Float) Ibeta(a, b, x float64) (float64, error) {
	if err := checkIbeta("ibeta", a, b, x); err != nil {
		return 0, err
	}
	return mathext.RegIncBeta(a, b, x), nil
}

// IbetaDerivA returns ∂I_x(a, b)/∂a.
func (Float) IbetaDerivA(a, b, x float64) (float64, error) {
	if err := checkIbeta("ibeta_derivative_a", a, b, x); err != nil {
		return 0, err
	}
	return ibetaDeriv(a, b, x, true), nil
}

// IbetaDerivB returns ∂I_x(a, b)/∂b.
func (Float) IbetaDerivB(a, b, x float64) (float64, error) {
	if err := checkIbeta("ibeta_derivative_b", a, b, x); err != nil {
		return 0, err
	}
	return ibetaDeriv(a, b, x, false), nil
}

// CylBesselJ returns J_n(x).
func (Float) CylBesselJ(n int, x float64) (float64, error) {
	return math.Jn(n, x), nil
}

// CylBesselK returns K_ν(x).
func (Float) CylBesselK(nu, x float64) (float64, error) {
	if x <= 0 {
		return 0, domainErr("cyl_bessel_k", "x must be positive", nu, x)
	}
	return besselK(nu, x, func(t float64) float64 { return math.Cosh(nu * t) }), nil
}

// CylBesselKDerivNu returns ∂K_ν(x)/∂ν.
func (Float) CylBesselKDerivNu(nu, x float64) (float64, error) {
	if x <= 0 {
		return 0, domainErr("cyl_bessel_k_derivative_nu", "x must be positive", nu, x)
	}
	return besselK(nu, x, func(t float64) float64 { return t * math.Sinh(nu*t) }), nil
}

// Hypergeometric1F0 returns (1-z)^-a.
func (Float) Hypergeometric1F0(a, z float64) (float64, error) {
	switch {
	case z == 1:
		return 0, domainErr("hypergeometric_1F0", "pole at z = 1", a, z)
	case z > 1 && a != math.Trunc(a):
		return 0, domainErr("hypergeometric_1F0", "branch cut: z > 1 with non-integer a", a, z)
	}
	return math.Pow(1-z, -a), nil
}

// LambertW0 returns W₀(x).
func (Float) LambertW0(x float64) (float64, error) {
	if x < -1/math.E {
		return 0, domainErr("lambert_w0", "argument below branch point -1/e", x)
	}
	return lambertW0(x), nil
}

// LambertWm1 returns W₋₁(x).
func (Float) LambertWm1(x float64) (float64, error) {
	switch {
	case x < -1/math.E:
		return 0, domainErr("lambert_wm1", "argument below branch point -1/e", x)
	case x >= 0:
		return 0, domainErr("lambert_wm1", "argument must be negative", x)
	}
	return lambertWm1(x), nil
}

// Powm1 returns x^y - 1.
func (Float) Powm1(x, y float64) (float64, error) {
	switch {
	case x > 0:
		if l := y * math.Log(x); math.Abs(l) < 0.5 {
			return math.Expm1(l), nil
		}
		return math.Pow(x, y) - 1, nil
	case x == 0:
		if y > 0 {
			return -1, nil
		}
		return 0, domainErr("powm1", "pole: zero to a non-positive power", x, y)
	case y != math.Trunc(y):
		return 0, domainErr("powm1", "negative base with non-integer exponent", x, y)
	}
	return math.Pow(x, y) - 1, nil
}
