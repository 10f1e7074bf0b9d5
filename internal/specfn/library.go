// Package specfn is the math-function collaborator of the differentiation
// engine: concrete values of elementary and special functions, plus the
// auxiliary values some derivative rules need (polygamma, parameter
// derivatives that have no closed form).
//
// Each function validates its domain and fails with a *DomainError instead of
// returning NaN, so poles and branch cuts surface at the call that hits them.
package specfn

import "github.com/born-ml/rdiff/internal/num"

// Library provides function values over the numeric type T.
type Library[T any] interface {
	num.Field[T]

	Exp(x T) (T, error)
	Log(x T) (T, error)
	Sqrt(x T) (T, error)
	Pow(x, y T) (T, error)
	Sin(x T) (T, error)
	Cos(x T) (T, error)
	Tanh(x T) (T, error)
	Expm1(x T) (T, error)
	Log1p(x T) (T, error)
	Erf(x T) (T, error)
	Erfc(x T) (T, error)

	// Tgamma is the gamma function Γ(x).
	Tgamma(x T) (T, error)
	// Lgamma is log|Γ(x)|.
	Lgamma(x T) (T, error)
	// Polygamma is ψ⁽ⁿ⁾(x); n = 0 is digamma.
	Polygamma(n int, x T) (T, error)

	// Beta is B(a, b) = Γ(a)Γ(b)/Γ(a+b).
	Beta(a, b T) (T, error)
	// Ibeta is the regularized incomplete beta function I_x(a, b).
	Ibeta(a, b, x T) (T, error)
	// IbetaDerivA is ∂I_x(a, b)/∂a.
	IbetaDerivA(a, b, x T) (T, error)
	// IbetaDerivB is ∂I_x(a, b)/∂b.
	IbetaDerivB(a, b, x T) (T, error)

	// CylBesselJ is the Bessel function of the first kind of integer order.
	CylBesselJ(n int, x T) (T, error)
	// CylBesselK is the modified Bessel function of the second kind K_ν(x).
	CylBesselK(nu, x T) (T, error)
	// CylBesselKDerivNu is ∂K_ν(x)/∂ν.
	CylBesselKDerivNu(nu, x T) (T, error)

	// Hypergeometric1F0 is ₁F₀(a;;z) = (1-z)^-a.
	Hypergeometric1F0(a, z T) (T, error)

	// LambertW0 is the principal branch of the Lambert W function.
	LambertW0(x T) (T, error)
	// LambertWm1 is the W₋₁ branch of the Lambert W function.
	LambertWm1(x T) (T, error)

	// Powm1 is x^y - 1, accurate when x^y is close to 1.
	Powm1(x, y T) (T, error)
}
