package autodiff

import "github.com/born-ml/rdiff/internal/autodiff/ops"

// expr is a pending elementary operation in Expression mode. Its operands
// are tape variables or other pending expressions.
type expr[T any] struct {
	kind ops.Kind
	args []*Var[T]
	idx  int32 // Tape entry once flattened, -1 before
}

// flatten appends x and its pending operands to the tape in post-order and
// returns the entry of x. Shared subexpressions are appended once.
func (t *Tape[T]) flatten(x *expr[T]) (int32, error) {
	if x.idx >= 0 {
		return x.idx, nil
	}
	if t.err != nil {
		return -1, t.err
	}

	args := make([]int32, len(x.args))
	for i, a := range x.args {
		if err := t.check(a); err != nil {
			return -1, err
		}
		idx := a.idx
		if idx < 0 {
			var err error
			if idx, err = t.flatten(a.x); err != nil {
				return -1, err
			}
			a.idx = idx
		}
		args[i] = idx
	}

	idx, err := t.node(x.kind, args, t.forwardOrder(args), 0)
	if err != nil {
		return -1, err
	}
	x.idx = idx
	return idx, nil
}
