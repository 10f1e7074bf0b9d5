// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation of
// special functions.
//
// A Tape records every operation applied to its variables; Backward walks
// it in reverse to compute derivatives. Tapes work over float64 or over
// arbitrary-precision *big.Float, and variables declared with a higher
// order support nested passes for higher derivatives.
//
// Example:
//
//	import "github.com/born-ml/rdiff/autodiff"
//
//	func main() {
//	    tape := autodiff.NewFloat64(autodiff.DefaultConfig())
//	    x := tape.Var(5)
//	    y := autodiff.Tgamma(x)
//
//	    if err := y.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    dx, _ := x.Adjoint() // Γ(5)·ψ(5)
//	}
//
// Second derivatives:
//
//	tape := autodiff.NewFloat64(autodiff.Config{Order: 2})
//	x := tape.Var(2.5)
//	d, err := autodiff.Derivatives(autodiff.Tgamma(x), x, 2)
package autodiff

import (
	"math/big"

	"github.com/born-ml/rdiff/internal/autodiff"
	"github.com/born-ml/rdiff/internal/specfn"
)

// Tape is the computation record of one differentiation session.
type Tape[T any] = autodiff.Tape[T]

// Var is a differentiable scalar on a Tape.
type Var[T any] = autodiff.Var[T]

// Config configures a Tape.
type Config = autodiff.Config

// Mode selects eager or expression graph construction.
type Mode = autodiff.Mode

// Construction modes.
const (
	Eager      = autodiff.Eager
	Expression = autodiff.Expression
)

// Library provides function values over a numeric type.
type Library[T any] = specfn.Library[T]

// Function describes a function callable by name.
type Function = autodiff.Function

// Errors.
type (
	DomainError            = autodiff.DomainError
	CyclicGraphError       = autodiff.CyclicGraphError
	OrderExceededError     = autodiff.OrderExceededError
	UnpropagatedStateError = autodiff.UnpropagatedStateError
)

// Sentinel errors.
var (
	ErrDomain           = autodiff.ErrDomain
	ErrNoDerivativeRule = autodiff.ErrNoDerivativeRule
	ErrForeignVariable  = autodiff.ErrForeignVariable
	ErrStaleVariable    = autodiff.ErrStaleVariable
	ErrInvalidVariable  = autodiff.ErrInvalidVariable
	ErrUnknownFunction  = autodiff.ErrUnknownFunction
)

// DefaultConfig returns first-order differentiation in the build's default
// construction mode.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// ParseMode parses "eager" or "expression".
func ParseMode(s string) (Mode, error) {
	return autodiff.ParseMode(s)
}

// New creates a tape evaluating functions with lib.
func New[T any](lib Library[T], cfg Config) *Tape[T] {
	return autodiff.New(lib, cfg)
}

// NewFloat64 creates a tape over float64.
func NewFloat64(cfg Config) *Tape[float64] {
	return autodiff.NewFloat64(cfg)
}

// NewBig creates a tape over *big.Float with prec bits of mantissa.
func NewBig(prec uint, cfg Config) *Tape[*big.Float] {
	return autodiff.NewBig(prec, cfg)
}

// Grad runs a backward pass from y and returns ∂y/∂x as a variable.
func Grad[T any](y, x *Var[T]) (*Var[T], error) { return autodiff.Grad(y, x) }

// Derivatives returns the first n derivatives of y with respect to x.
func Derivatives[T any](y, x *Var[T], n int) ([]T, error) { return autodiff.Derivatives(y, x, n) }

// Tgamma returns Γ(x).
func Tgamma[T any](x *Var[T]) *Var[T] { return autodiff.Tgamma(x) }

// Lgamma returns log|Γ(x)|.
func Lgamma[T any](x *Var[T]) *Var[T] { return autodiff.Lgamma(x) }

// Digamma returns ψ(x).
func Digamma[T any](x *Var[T]) *Var[T] { return autodiff.Digamma(x) }

// Trigamma returns ψ'(x).
func Trigamma[T any](x *Var[T]) *Var[T] { return autodiff.Trigamma(x) }

// Polygamma returns ψ⁽ⁿ⁾(x).
func Polygamma[T any](n int, x *Var[T]) *Var[T] { return autodiff.Polygamma(n, x) }

// Beta returns B(a, b).
func Beta[T any](a, b *Var[T]) *Var[T] { return autodiff.Beta(a, b) }

// Ibeta returns the regularised incomplete beta function I_x(a, b).
func Ibeta[T any](a, b, x *Var[T]) *Var[T] { return autodiff.Ibeta(a, b, x) }

// CylBesselJ returns J_n(x).
func CylBesselJ[T any](n int, x *Var[T]) *Var[T] { return autodiff.CylBesselJ(n, x) }

// CylBesselK returns K_ν(x).
func CylBesselK[T any](nu, x *Var[T]) *Var[T] { return autodiff.CylBesselK(nu, x) }

// Hypergeometric1F0 returns (1-z)^-a.
func Hypergeometric1F0[T any](a, z *Var[T]) *Var[T] { return autodiff.Hypergeometric1F0(a, z) }

// LambertW0 returns the principal branch of Lambert W.
func LambertW0[T any](x *Var[T]) *Var[T] { return autodiff.LambertW0(x) }

// LambertWm1 returns the lower branch of Lambert W.
func LambertWm1[T any](x *Var[T]) *Var[T] { return autodiff.LambertWm1(x) }

// Powm1 returns x^y - 1.
func Powm1[T any](x, y *Var[T]) *Var[T] { return autodiff.Powm1(x, y) }

// Call applies the function called name to args.
func Call[T any](t *Tape[T], name string, args ...*Var[T]) *Var[T] {
	return autodiff.Call(t, name, args...)
}

// Functions lists every function Call accepts.
func Functions() []Function { return autodiff.Functions() }
