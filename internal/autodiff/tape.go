package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/rdiff/internal/autodiff/ops"
	"github.com/born-ml/rdiff/internal/specfn"
)

// entry is one value on the tape: a leaf, a constant or an operation node.
type entry[T any] struct {
	kind  ops.Kind
	value T

	// order is how many backward passes can still go through this entry;
	// 0 for constants.
	order int

	// level is the backward pass that recorded the entry; 0 for the forward
	// computation.
	level int

	args []int32 // Input entries, always earlier on the tape

	// partials[i] is ∂value/∂args[i] at the recorded inputs. diff[i] is false
	// when the argument is not differentiated (an integer order, a constant).
	partials []T
	diff     []bool

	// prefs[i] records partials[i] as an entry of order-1 so later passes can
	// differentiate it; only set for nodes of order >= 2.
	prefs []int32
}

// Tape is the computation record of one differentiation session.
//
// Entries are appended in evaluation order and reference only earlier
// entries. Node partials are computed once, when the node is appended, and
// never change.
//
// The first failure poisons the tape: it is kept in Err, every later
// operation returns an invalid variable and Backward returns the error.
type Tape[T any] struct {
	lib specfn.Library[T]
	cfg Config

	entries []entry[T]
	consts  map[uint64]int32 // Float constants by bit pattern
	passes  map[int]*pass[T] // Backward passes by level

	gen uint64 // Bumped by Clear
	err error
}

// Config returns the tape configuration.
func (t *Tape[T]) Config() Config {
	return t.cfg
}

// Library returns the math library values are computed with.
func (t *Tape[T]) Library() specfn.Library[T] {
	return t.lib
}

// Err returns the error that poisoned the tape, if any.
func (t *Tape[T]) Err() error {
	return t.err
}

// Len returns the number of entries on the tape.
func (t *Tape[T]) Len() int {
	return len(t.entries)
}

// NumOps returns the number of operation nodes on the tape.
func (t *Tape[T]) NumOps() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].kind != ops.Leaf {
			n++
		}
	}
	return n
}

// Clear resets the tape, releasing every entry and adjoint. Variables created
// before Clear can no longer be used with it.
func (t *Tape[T]) Clear() {
	t.entries = t.entries[:0]
	clear(t.consts)
	clear(t.passes)
	t.gen++
	t.err = nil
}

// Var creates an independent variable of the configured order.
func (t *Tape[T]) Var(v T) *Var[T] {
	return t.VarOrder(v, t.cfg.Order)
}

// VarFloat creates an independent variable from a float64.
func (t *Tape[T]) VarFloat(f float64) *Var[T] {
	return t.Var(t.lib.FromFloat64(f))
}

// VarOrder creates an independent variable supporting order nested
// backward passes.
func (t *Tape[T]) VarOrder(v T, order int) *Var[T] {
	if t.err != nil {
		return t.invalid(t.err)
	}
	if order < 1 {
		return t.fail(fmt.Errorf("declared order must be at least 1, got %d", order))
	}
	return t.ref(t.push(entry[T]{kind: ops.Leaf, value: v, order: order}))
}

// Const creates a constant. Constants are never differentiated.
func (t *Tape[T]) Const(v T) *Var[T] {
	if t.err != nil {
		return t.invalid(t.err)
	}
	return t.ref(t.push(entry[T]{kind: ops.Leaf, value: v}))
}

// ConstFloat creates a constant from a float64. Equal constants share an
// entry.
func (t *Tape[T]) ConstFloat(f float64) *Var[T] {
	if t.err != nil {
		return t.invalid(t.err)
	}
	return t.ref(t.constant(f))
}

func (t *Tape[T]) constant(f float64) int32 {
	key := math.Float64bits(f)
	if idx, ok := t.consts[key]; ok {
		return idx
	}
	idx := t.push(entry[T]{kind: ops.Leaf, value: t.lib.FromFloat64(f)})
	t.consts[key] = idx
	return idx
}

func (t *Tape[T]) push(e entry[T]) int32 {
	t.entries = append(t.entries, e)
	return int32(len(t.entries) - 1)
}

// setErr records the first failure.
func (t *Tape[T]) setErr(err error) {
	if t.err == nil {
		t.err = err
	}
}

func (t *Tape[T]) fail(err error) *Var[T] {
	t.setErr(err)
	return t.invalid(t.err)
}

func (t *Tape[T]) ref(idx int32) *Var[T] {
	return &Var[T]{tape: t, gen: t.gen, idx: idx}
}

func (t *Tape[T]) invalid(err error) *Var[T] {
	return &Var[T]{tape: t, gen: t.gen, idx: -1, err: err}
}

// node evaluates k on the entries args and appends the result with its
// partials. The result supports order backward passes and belongs to the
// pass at level.
func (t *Tape[T]) node(k ops.Kind, args []int32, order, level int) (int32, error) {
	rule := ops.Lookup(k)
	if rule == nil {
		return -1, fmt.Errorf("%w: %v", ops.ErrUnknownKind, k)
	}
	if rule.Terminal && order > 0 {
		return -1, fmt.Errorf("%w: %s", ErrNoDerivativeRule, rule.Name)
	}

	vals := make([]T, len(args))
	for i, a := range args {
		vals[i] = t.entries[a].value
	}
	v, err := ops.Eval(t.lib, k, vals)
	if err != nil {
		return -1, err
	}

	idx := t.push(entry[T]{kind: k, value: v, order: order, level: level, args: args})
	if order == 0 {
		return idx, nil
	}

	n := len(args)
	partials := make([]T, n)
	diff := make([]bool, n)
	var prefs []int32

	if order == 1 {
		s := newScratch(t.lib, vals, v)
		for i := range args {
			if !rule.Differentiable(i) || t.entries[args[i]].order == 0 {
				continue
			}
			r := rule.Partials[i](s, s.args(), s.out())
			if s.err != nil {
				return -1, s.err
			}
			partials[i], diff[i] = s.vals[r], true
		}
	} else {
		rec := &recorder[T]{tape: t, order: order - 1, level: level}
		prefs = make([]int32, n)
		refs := make([]ops.Ref, n)
		for i, a := range args {
			refs[i] = ops.Ref(a)
			prefs[i] = -1
		}
		for i := range args {
			if !rule.Differentiable(i) || t.entries[args[i]].order == 0 {
				continue
			}
			r := rule.Partials[i](rec, refs, ops.Ref(idx))
			if rec.err != nil {
				return -1, rec.err
			}
			prefs[i] = int32(r)
			partials[i], diff[i] = t.entries[r].value, true
		}
	}

	e := &t.entries[idx]
	e.partials, e.diff, e.prefs = partials, diff, prefs
	return idx, nil
}

// apply records k on vars in the tape's construction mode.
func (t *Tape[T]) apply(k ops.Kind, vars ...*Var[T]) *Var[T] {
	if t.err != nil {
		return t.invalid(t.err)
	}
	for _, v := range vars {
		if err := t.check(v); err != nil {
			return t.fail(err)
		}
	}

	if t.cfg.Mode == Expression && ops.Lookup(k).Elementary {
		return &Var[T]{tape: t, gen: t.gen, idx: -1, x: &expr[T]{kind: k, args: vars, idx: -1}}
	}

	args := make([]int32, len(vars))
	for i, v := range vars {
		idx, err := v.materialize()
		if err != nil {
			return t.fail(err)
		}
		args[i] = idx
	}
	idx, err := t.node(k, args, t.forwardOrder(args), 0)
	if err != nil {
		return t.fail(err)
	}
	return t.ref(idx)
}

// forwardOrder is the highest order among the inputs.
func (t *Tape[T]) forwardOrder(args []int32) int {
	order := 0
	for _, a := range args {
		order = max(order, t.entries[a].order)
	}
	return order
}

// check validates that v can be used on t.
func (t *Tape[T]) check(v *Var[T]) error {
	switch {
	case v == nil:
		return ErrInvalidVariable
	case v.tape != t:
		return ErrForeignVariable
	case v.gen != t.gen:
		return ErrStaleVariable
	case v.err != nil:
		return v.err
	case v.idx < 0 && v.x == nil:
		return ErrInvalidVariable
	}
	return nil
}
