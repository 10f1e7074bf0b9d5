// Package autodiff implements reverse-mode automatic differentiation of
// scalar functions built from arithmetic and special functions.
//
// Architecture:
//   - Tape: append-only record of leaves, constants and operation nodes,
//     in evaluation order
//   - Var: handle to one value on a tape
//   - ops registry: per-operation partial derivative rules
//   - Backward: reverse walk of the tape accumulating adjoints
//   - Grad/Derivatives: higher orders by differentiating recorded adjoints
//
// The tape is generic over the numeric type through specfn.Library, so the
// same code runs on float64 and on *big.Float.
//
// Usage:
//
//	tape := autodiff.NewFloat64(autodiff.DefaultConfig())
//	x := tape.Var(5)
//	y := autodiff.Tgamma(x)
//	if err := y.Backward(); err != nil {
//		return err
//	}
//	fmt.Println(y.Value())   // 24
//	fmt.Println(x.Adjoint()) // 24·ψ(5)
//
// A Tape is not safe for concurrent use. Independent tapes may be used from
// different goroutines; the rule registry is read-only and shared.
package autodiff

import (
	"fmt"
	"math/big"

	"github.com/born-ml/rdiff/internal/specfn"
)

// Mode selects how elementary arithmetic is recorded.
type Mode uint8

const (
	// Eager appends one node per operation as it is applied.
	Eager Mode = iota

	// Expression composes elementary arithmetic (+ - * / neg pow) into
	// expression trees that are flattened onto the tape on first use: reading
	// a value, running Backward, or passing the result to a special function.
	Expression
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Expression:
		return "expression"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "eager" or "expression".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "eager":
		return Eager, nil
	case "expression", "expr":
		return Expression, nil
	}
	return 0, fmt.Errorf("unknown construction mode %q", s)
}

// Config configures a Tape.
type Config struct {
	// Order is the declared derivative order of variables created with
	// Tape.Var: how many nested backward passes they support.
	Order int

	// Mode is the graph construction strategy.
	Mode Mode
}

// DefaultConfig returns first-order differentiation in the build's default
// construction mode (Expression when built with -tags rdiff_expr).
func DefaultConfig() Config {
	return Config{
		Order: 1,
		Mode:  defaultMode,
	}
}

// New creates an empty tape evaluating functions with lib.
func New[T any](lib specfn.Library[T], cfg Config) *Tape[T] {
	if cfg.Order < 1 {
		cfg.Order = 1
	}
	return &Tape[T]{
		lib:     lib,
		cfg:     cfg,
		entries: make([]entry[T], 0, 64),
		consts:  make(map[uint64]int32),
		passes:  make(map[int]*pass[T]),
	}
}

// NewFloat64 creates a tape over native float64.
func NewFloat64(cfg Config) *Tape[float64] {
	return New[float64](specfn.Float{}, cfg)
}

// NewBig creates a tape over *big.Float with prec bits of mantissa.
func NewBig(prec uint, cfg Config) *Tape[*big.Float] {
	return New[*big.Float](specfn.NewBig(prec), cfg)
}
