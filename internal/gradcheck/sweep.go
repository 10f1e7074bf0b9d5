package gradcheck

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/rdiff/internal/autodiff"
	"github.com/born-ml/rdiff/internal/autodiff/ops"
	"github.com/born-ml/rdiff/internal/parallel"
	"github.com/born-ml/rdiff/internal/specfn"
)

// Config configures a sweep.
type Config struct {
	Samples  int       // Points per function
	Seed     uint64    // Sampler seed
	Tol      Tolerance // Against central differences
	FD       *fd.Settings
	Parallel parallel.Config
	Logger   *slog.Logger
}

// DefaultConfig returns a sweep of 32 points per function, compared with
// central differences to 1e-6.
func DefaultConfig() Config {
	return Config{
		Samples:  32,
		Seed:     1,
		Tol:      Tolerance{Rel: 1e-6, Abs: 1e-8},
		FD:       &fd.Settings{Formula: fd.Central},
		Parallel: parallel.DefaultConfig(),
		Logger:   slog.Default(),
	}
}

// Sample is the outcome at one point.
type Sample struct {
	Args      []float64 // Variable arguments
	Value     float64
	Grad      []float64 // Engine adjoints, NaN for arguments not checked
	Reference []float64 // Finite differences, NaN for arguments not checked
	Err       error
}

// OK reports whether the sample built, propagated and matched.
func (s Sample) OK(tol Tolerance) bool {
	if s.Err != nil {
		return false
	}
	for i := range s.Grad {
		if math.IsNaN(s.Reference[i]) {
			continue
		}
		if !tol.Within(s.Grad[i], s.Reference[i]) {
			return false
		}
	}
	return true
}

// Report summarises a sweep over one function.
type Report struct {
	Function string
	Samples  []Sample
	Failed   int
}

// Passed reports whether every sample matched.
func (r Report) Passed() bool { return r.Failed == 0 }

// Sweep samples fn over dom and compares the adjoints of a tape from
// newTape with central differences of the float64 values. Each sample gets
// its own tape, so samples run in parallel.
func Sweep[T any](ctx context.Context, newTape func() *autodiff.Tape[T], fn autodiff.Function, dom Domain, cfg Config) (Report, error) {
	if err := dom.validate(); err != nil {
		return Report{}, err
	}
	if dom.Dim() != fn.Arity {
		return Report{}, fmt.Errorf("gradcheck: %s takes %d arguments, domain has %d", fn.Name, fn.Arity, dom.Dim())
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	points := NewSampler(dom, cfg.Seed).Points(cfg.Samples)
	samples, err := parallel.Map(ctx, len(points), cfg.Parallel, func(_ context.Context, i int) (Sample, error) {
		return check(newTape(), fn, dom, points[i], cfg), nil
	})
	if err != nil {
		return Report{}, err
	}

	rep := Report{Function: fn.Name, Samples: samples}
	for _, s := range samples {
		if s.OK(cfg.Tol) {
			continue
		}
		rep.Failed++
		log.Warn("derivative mismatch",
			"function", fn.Name,
			"args", s.Args,
			"grad", s.Grad,
			"reference", s.Reference,
			"error", s.Err)
	}
	log.Info("gradient sweep",
		"function", fn.Name,
		"samples", len(samples),
		"failed", rep.Failed)
	return rep, nil
}

// SweepAll runs Sweep over every catalog function that has a domain.
func SweepAll[T any](ctx context.Context, newTape func() *autodiff.Tape[T], cfg Config) ([]Report, error) {
	var reports []Report
	for _, fn := range autodiff.Functions() {
		dom, ok := Domains[fn.Name]
		if !ok {
			continue
		}
		rep, err := Sweep(ctx, newTape, fn, dom, cfg)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", fn.Name, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func check[T any](tape *autodiff.Tape[T], fn autodiff.Function, dom Domain, args []float64, cfg Config) Sample {
	s := Sample{
		Args:      args,
		Grad:      nanSlice(len(args)),
		Reference: nanSlice(len(args)),
	}
	lib := tape.Library()

	vars := make([]*autodiff.Var[T], len(args))
	for i, a := range args {
		if dom.Integer[i] || !differentiable(fn, i) {
			vars[i] = tape.ConstFloat(a)
		} else {
			vars[i] = tape.VarFloat(a)
		}
	}
	y := autodiff.Call(tape, fn.Name, vars...)
	if err := y.Backward(); err != nil {
		s.Err = err
		return s
	}
	s.Value = y.Float64()

	for i, v := range vars {
		if v.IsConst() {
			continue
		}
		adj, err := v.Adjoint()
		if err != nil {
			s.Err = err
			return s
		}
		s.Grad[i] = lib.Float64(adj)
		s.Reference[i] = fd.Derivative(partialOf(fn, args, i), args[i], cfg.FD)
	}
	return s
}

func differentiable(fn autodiff.Function, i int) bool {
	return ops.Lookup(fn.Kind).Differentiable(len(fn.Fixed) + i)
}

// partialOf returns fn as a float64 function of argument i alone.
func partialOf(fn autodiff.Function, args []float64, i int) func(float64) float64 {
	lib := specfn.Float{}
	full := make([]float64, 0, len(fn.Fixed)+len(args))
	full = append(full, fn.Fixed...)
	full = append(full, args...)
	pos := len(fn.Fixed) + i

	return func(x float64) float64 {
		at := append([]float64(nil), full...)
		at[pos] = x
		v, err := ops.Eval[float64](lib, fn.Kind, at)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
