package autodiff

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/rdiff/internal/autodiff/ops"
)

// Tgamma returns Γ(x).
func Tgamma[T any](x *Var[T]) *Var[T] { return x.tape.apply(ops.Tgamma, x) }

// Lgamma returns log|Γ(x)|.
func Lgamma[T any](x *Var[T]) *Var[T] { return x.tape.apply(ops.Lgamma, x) }

// Digamma returns ψ(x).
func Digamma[T any](x *Var[T]) *Var[T] { return Polygamma(0, x) }

// Trigamma returns ψ'(x).
func Trigamma[T any](x *Var[T]) *Var[T] { return Polygamma(1, x) }

// Polygamma returns ψ⁽ⁿ⁾(x).
func Polygamma[T any](n int, x *Var[T]) *Var[T] {
	return x.tape.apply(ops.Polygamma, x.tape.ConstFloat(float64(n)), x)
}

// Beta returns B(a, b).
func Beta[T any](a, b *Var[T]) *Var[T] { return a.tape.apply(ops.Beta, a, b) }

// Ibeta returns the regularised incomplete beta function I_x(a, b).
//
// Its parameter partials are evaluated numerically and cannot be
// differentiated again, so ibeta fails on variables of order >= 2.
func Ibeta[T any](a, b, x *Var[T]) *Var[T] { return a.tape.apply(ops.Ibeta, a, b, x) }

// CylBesselJ returns J_n(x) for integer n.
func CylBesselJ[T any](n int, x *Var[T]) *Var[T] {
	return x.tape.apply(ops.CylBesselJ, x.tape.ConstFloat(float64(n)), x)
}

// CylBesselK returns the modified Bessel function K_ν(x).
//
// The order partial is evaluated numerically; like Ibeta, differentiating
// with respect to ν is limited to first order.
func CylBesselK[T any](nu, x *Var[T]) *Var[T] { return nu.tape.apply(ops.CylBesselK, nu, x) }

// Hypergeometric1F0 returns ₁F₀(a;;z) = (1-z)^-a.
func Hypergeometric1F0[T any](a, z *Var[T]) *Var[T] {
	return a.tape.apply(ops.Hypergeometric1F0, a, z)
}

// LambertW0 returns the principal branch W₀(x).
func LambertW0[T any](x *Var[T]) *Var[T] { return x.tape.apply(ops.LambertW0, x) }

// LambertWm1 returns the lower branch W₋₁(x).
func LambertWm1[T any](x *Var[T]) *Var[T] { return x.tape.apply(ops.LambertWm1, x) }

// Powm1 returns x^y - 1.
func Powm1[T any](x, y *Var[T]) *Var[T] { return x.tape.apply(ops.Powm1, x, y) }

// Function describes a function callable by name.
type Function struct {
	Name  string
	Kind  ops.Kind
	Arity int // Number of variable arguments

	// Fixed arguments passed ahead of the variables, such as the order of
	// digamma as a polygamma.
	Fixed []float64
}

// catalog lists the functions Call accepts.
var catalog = func() map[string]Function {
	m := make(map[string]Function)
	for _, k := range ops.Kinds() {
		r := ops.Lookup(k)
		if r.Terminal {
			continue
		}
		m[r.Name] = Function{Name: r.Name, Kind: k, Arity: r.Arity}
	}
	m["digamma"] = Function{Name: "digamma", Kind: ops.Polygamma, Arity: 1, Fixed: []float64{0}}
	m["trigamma"] = Function{Name: "trigamma", Kind: ops.Polygamma, Arity: 1, Fixed: []float64{1}}
	return m
}()

// Functions returns every callable function, sorted by name.
func Functions() []Function {
	fns := make([]Function, 0, len(catalog))
	for _, f := range catalog {
		fns = append(fns, f)
	}
	slices.SortFunc(fns, func(a, b Function) int { return cmp.Compare(a.Name, b.Name) })
	return fns
}

// LookupFunction returns the function called name.
func LookupFunction(name string) (Function, bool) {
	f, ok := catalog[name]
	return f, ok
}

// Call applies the function called name to args on t.
func Call[T any](t *Tape[T], name string, args ...*Var[T]) *Var[T] {
	if t.err != nil {
		return t.invalid(t.err)
	}
	f, ok := catalog[name]
	if !ok {
		return t.fail(fmt.Errorf("%w: %q", ErrUnknownFunction, name))
	}
	if len(args) != f.Arity {
		return t.fail(fmt.Errorf("%w: %s takes %d, got %d", ops.ErrArity, name, f.Arity, len(args)))
	}
	vars := make([]*Var[T], 0, len(f.Fixed)+len(args))
	for _, c := range f.Fixed {
		vars = append(vars, t.ConstFloat(c))
	}
	vars = append(vars, args...)
	return t.apply(f.Kind, vars...)
}
