// Package ops is the derivative rule registry of the differentiation engine.
//
// Every supported operation is a Kind. Its Rule tells the engine how many
// arguments it takes and, per argument, how to build the local partial
// derivative of the output from the inputs and the already computed output:
//   - Add: ∂(a+b)/∂a = 1, ∂(a+b)/∂b = 1
//   - Mul: ∂(a·b)/∂a = b, ∂(a·b)/∂b = a
//   - Tgamma: Γ'(x) = Γ(x)·ψ(x)
//   - CylBesselJ: the order is an integer parameter, no partial
//
// Rules are written against a Builder rather than concrete numbers, so the
// same formula yields plain values for a first-order node and recorded,
// differentiable variables when a higher derivative order is requested.
//
// The registry is a fixed array built at package initialisation and never
// mutated afterwards, so it is safe to share between goroutines.
package ops

import "fmt"

// Kind identifies an operation.
type Kind uint8

// Supported operations.
const (
	Leaf Kind = iota // independent variable or constant, not an operation

	Add
	Sub
	Mul
	Div
	Neg
	Pow

	Exp
	Log
	Sqrt
	Sin
	Cos
	Tanh
	Expm1
	Log1p
	Erf
	Erfc

	Tgamma
	Lgamma
	Polygamma
	Beta

	Ibeta
	IbetaDerivA
	IbetaDerivB

	CylBesselJ
	CylBesselK
	CylBesselKDerivNu

	Hypergeometric1F0

	LambertW0
	LambertWm1

	Powm1

	numKinds
)

// Ref is an opaque handle to a value inside a Builder.
type Ref int32

// NoRef marks the absence of a value.
const NoRef Ref = -1

// Builder evaluates the operations a derivative rule is made of.
//
// Implementations record the first failure internally; a rule never checks
// errors and may keep building with refs produced after a failure.
type Builder interface {
	// Const introduces a constant.
	Const(c float64) Ref
	// Apply evaluates k on args.
	Apply(k Kind, args ...Ref) Ref
}

// PartialFunc builds ∂out/∂args[i] for one argument position i.
type PartialFunc func(b Builder, args []Ref, out Ref) Ref

// Rule describes one operation.
type Rule struct {
	Name  string
	Arity int

	// Elementary operations may be fused into lazy expressions.
	Elementary bool

	// Terminal operations are auxiliary values (derivatives without a closed
	// form) with no rule of their own: differentiating through them fails.
	Terminal bool

	// Partials holds one builder per argument; nil marks an argument the
	// output is not differentiated with respect to (an integer order, say).
	Partials []PartialFunc
}

// Differentiable reports whether argument i carries a partial.
func (r *Rule) Differentiable(i int) bool {
	return i < len(r.Partials) && r.Partials[i] != nil
}

// Lookup returns the rule for k, or nil when k is not an operation.
func Lookup(k Kind) *Rule {
	if k == Leaf || k >= numKinds {
		return nil
	}
	return &registry[k]
}

// Kinds lists every operation kind.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := Leaf + 1; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the operation name.
func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	if r := Lookup(k); r != nil {
		return r.Name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Small helpers so rules read like the formulas they implement.

func add(b Builder, x, y Ref) Ref { return b.Apply(Add, x, y) }
func sub(b Builder, x, y Ref) Ref { return b.Apply(Sub, x, y) }
func mul(b Builder, x, y Ref) Ref { return b.Apply(Mul, x, y) }
func div(b Builder, x, y Ref) Ref { return b.Apply(Div, x, y) }
func neg(b Builder, x Ref) Ref    { return b.Apply(Neg, x) }
func pow(b Builder, x, y Ref) Ref { return b.Apply(Pow, x, y) }
func exp(b Builder, x Ref) Ref    { return b.Apply(Exp, x) }
func log(b Builder, x Ref) Ref    { return b.Apply(Log, x) }

func digamma(b Builder, x Ref) Ref { return b.Apply(Polygamma, b.Const(0), x) }
