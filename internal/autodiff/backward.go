package autodiff

import "github.com/born-ml/rdiff/internal/autodiff/ops"

// pass holds the adjoints of one backward pass.
//
// A first-order pass accumulates plain values. A pass from a root of order
// >= 2 records its accumulation on the tape, so every adjoint is itself a
// variable that a later pass can differentiate.
type pass[T any] struct {
	level int
	root  int32

	// Numeric pass.
	adj     []T
	reached []bool

	// Recorded pass: adjoint entries, -1 where nothing was accumulated.
	refs  []int32
	order int // Order of the recorded adjoints
}

// Backward computes the adjoint of every entry v depends on, seeding v
// with 1 and walking the tape in reverse insertion order.
//
// Adjoints are read with Adjoint (first pass) or AdjointN. Running Backward
// again at the same level replaces that pass and discards deeper ones.
func (v *Var[T]) Backward() error {
	idx, err := v.materialize()
	if err != nil {
		return err
	}
	t := v.tape
	if t.err != nil {
		return t.err
	}

	e := t.entries[idx]
	level := e.level + 1
	if e.order < 1 {
		return &OrderExceededError{Requested: level, Declared: e.level + e.order}
	}
	for l := range t.passes {
		if l >= level {
			delete(t.passes, l)
		}
	}

	var p *pass[T]
	if e.order == 1 {
		p, err = t.numericPass(idx, level)
	} else {
		p, err = t.recordedPass(idx, level, e.order-1)
	}
	if err != nil {
		t.setErr(err)
		return err
	}
	t.passes[level] = p
	return nil
}

func (t *Tape[T]) numericPass(root int32, level int) (*pass[T], error) {
	lib := t.lib
	adj := make([]T, root+1)
	reached := make([]bool, root+1)
	adj[root], reached[root] = lib.One(), true

	for i := root; i >= 0; i-- {
		if !reached[i] {
			continue
		}
		e := &t.entries[i]
		if e.kind == ops.Leaf || e.order == 0 {
			continue
		}
		for j, a := range e.args {
			if a >= i {
				return nil, &CyclicGraphError{Node: int(i), Input: int(a)}
			}
			if !e.diff[j] {
				continue
			}
			c := lib.Mul(adj[i], e.partials[j])
			if reached[a] {
				c = lib.Add(adj[a], c)
			}
			adj[a], reached[a] = c, true
		}
	}
	return &pass[T]{level: level, root: root, adj: adj, reached: reached}, nil
}

func (t *Tape[T]) recordedPass(root int32, level, order int) (*pass[T], error) {
	rec := &recorder[T]{tape: t, order: order, level: level}
	refs := make([]int32, root+1)
	for i := range refs {
		refs[i] = -1
	}
	refs[root] = t.push(entry[T]{kind: ops.Leaf, value: t.lib.One(), order: order, level: level})

	for i := root; i >= 0; i-- {
		if refs[i] < 0 {
			continue
		}
		e := t.entries[i]
		if e.kind == ops.Leaf || e.order == 0 {
			continue
		}
		for j, a := range e.args {
			if a >= i {
				return nil, &CyclicGraphError{Node: int(i), Input: int(a)}
			}
			if !e.diff[j] {
				continue
			}
			var partial ops.Ref
			if e.prefs != nil {
				partial = ops.Ref(e.prefs[j])
			} else {
				// First-order nodes never recorded their partials: they
				// enter this pass as constants.
				partial = ops.Ref(t.push(entry[T]{kind: ops.Leaf, value: e.partials[j]}))
			}
			c := rec.Apply(ops.Mul, ops.Ref(refs[i]), partial)
			if refs[a] >= 0 {
				c = rec.Apply(ops.Add, ops.Ref(refs[a]), c)
			}
			if rec.err != nil {
				return nil, rec.err
			}
			refs[a] = int32(c)
		}
	}
	return &pass[T]{level: level, root: root, refs: refs, order: order}, nil
}

// Adjoint returns ∂root/∂v for the root of the last first-order pass.
func (v *Var[T]) Adjoint() (T, error) {
	return v.AdjointN(1)
}

// AdjointN returns the adjoint of v from the backward pass at level k.
//
// Level 1 is the pass from a forward variable; level k+1 is a pass from an
// adjoint produced at level k, so AdjointN(k) on an input after k nested
// passes is its k-th derivative. Entries the root does not depend on read
// zero. Reading a level that has not run fails with *UnpropagatedStateError.
func (v *Var[T]) AdjointN(k int) (T, error) {
	var zero T
	idx, err := v.materialize()
	if err != nil {
		return zero, err
	}
	t := v.tape
	if declared := t.declared(idx); k < 1 || k > declared {
		return zero, &OrderExceededError{Requested: k, Declared: declared}
	}

	p, ok := t.passes[k]
	if !ok {
		return zero, &UnpropagatedStateError{Level: k}
	}
	if idx > p.root {
		return t.lib.Zero(), nil
	}
	if p.refs != nil {
		if r := p.refs[idx]; r >= 0 {
			return t.entries[r].value, nil
		}
		return t.lib.Zero(), nil
	}
	if p.reached[idx] {
		return p.adj[idx], nil
	}
	return t.lib.Zero(), nil
}

// declared is the total derivative order an entry was created with.
func (t *Tape[T]) declared(idx int32) int {
	e := &t.entries[idx]
	return e.level + e.order
}

// adjointVar returns the adjoint of idx at level as a variable.
//
// Adjoints of a recorded pass are tape entries that support further passes;
// those of a numeric pass become constants.
func (t *Tape[T]) adjointVar(idx int32, level int) *Var[T] {
	p := t.passes[level]
	if p.refs == nil {
		v := t.lib.Zero()
		if idx <= p.root && p.reached[idx] {
			v = p.adj[idx]
		}
		return t.ref(t.push(entry[T]{kind: ops.Leaf, value: v, level: level}))
	}
	if idx <= p.root && p.refs[idx] >= 0 {
		return t.ref(p.refs[idx])
	}
	return t.ref(t.push(entry[T]{kind: ops.Leaf, value: t.lib.Zero(), order: p.order, level: level}))
}
