package autodiff

import (
	"github.com/born-ml/rdiff/internal/autodiff/ops"
	"github.com/born-ml/rdiff/internal/specfn"
)

// scratch evaluates derivative rules to plain values, off the tape.
// Refs 0..n-1 are the node inputs and ref n is its output.
type scratch[T any] struct {
	lib  specfn.Library[T]
	n    int
	vals []T
	err  error
}

var _ ops.Builder = (*scratch[float64])(nil)

func newScratch[T any](lib specfn.Library[T], args []T, out T) *scratch[T] {
	vals := make([]T, 0, len(args)+8)
	vals = append(vals, args...)
	vals = append(vals, out)
	return &scratch[T]{lib: lib, n: len(args), vals: vals}
}

func (s *scratch[T]) args() []ops.Ref {
	refs := make([]ops.Ref, s.n)
	for i := range refs {
		refs[i] = ops.Ref(i)
	}
	return refs
}

func (s *scratch[T]) out() ops.Ref { return ops.Ref(s.n) }

func (s *scratch[T]) push(v T) ops.Ref {
	s.vals = append(s.vals, v)
	return ops.Ref(len(s.vals) - 1)
}

// Const implements ops.Builder.
func (s *scratch[T]) Const(c float64) ops.Ref {
	return s.push(s.lib.FromFloat64(c))
}

// Apply implements ops.Builder.
func (s *scratch[T]) Apply(k ops.Kind, args ...ops.Ref) ops.Ref {
	if s.err != nil {
		return ops.NoRef
	}
	xs := make([]T, len(args))
	for i, a := range args {
		xs[i] = s.vals[a]
	}
	v, err := ops.Eval(s.lib, k, xs)
	if err != nil {
		s.err = err
		return ops.NoRef
	}
	return s.push(v)
}

// recorder evaluates derivative rules onto the tape, so the partials are
// themselves differentiable. Every node it appends supports order passes.
type recorder[T any] struct {
	tape  *Tape[T]
	order int
	level int
	err   error
}

var _ ops.Builder = (*recorder[float64])(nil)

// Const implements ops.Builder.
func (r *recorder[T]) Const(c float64) ops.Ref {
	return ops.Ref(r.tape.constant(c))
}

// Apply implements ops.Builder.
func (r *recorder[T]) Apply(k ops.Kind, args ...ops.Ref) ops.Ref {
	if r.err != nil {
		return ops.NoRef
	}
	idxs := make([]int32, len(args))
	for i, a := range args {
		idxs[i] = int32(a)
	}
	idx, err := r.tape.node(k, idxs, r.order, r.level)
	if err != nil {
		r.err = err
		return ops.NoRef
	}
	return ops.Ref(idx)
}
