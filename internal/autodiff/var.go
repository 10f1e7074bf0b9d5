package autodiff

import "github.com/born-ml/rdiff/internal/autodiff/ops"

// Var is a differentiable scalar on a Tape.
//
// A Var is either an entry on the tape or, in Expression mode, a pending
// expression that is flattened onto the tape on first use. Vars whose
// construction failed are invalid: Err reports why and Value is the zero
// value.
type Var[T any] struct {
	tape *Tape[T]
	gen  uint64
	idx  int32
	x    *expr[T]
	err  error
}

// Tape returns the tape v belongs to.
func (v *Var[T]) Tape() *Tape[T] {
	return v.tape
}

// Err returns the error that made v invalid, or the error that poisoned its
// tape. A pending expression is flattened first, so a failure it would hit
// is reported here.
func (v *Var[T]) Err() error {
	if _, err := v.materialize(); err != nil {
		return err
	}
	return v.tape.err
}

// Value returns the value of v, flattening a pending expression.
func (v *Var[T]) Value() T {
	idx, err := v.materialize()
	if err != nil {
		var zero T
		return zero
	}
	return v.tape.entries[idx].value
}

// Float64 returns the value of v rounded to float64.
func (v *Var[T]) Float64() float64 {
	return v.tape.lib.Float64(v.Value())
}

// String formats the value of v.
func (v *Var[T]) String() string {
	if v.Err() != nil {
		return "<invalid>"
	}
	return v.tape.lib.Format(v.Value())
}

// Order returns how many nested backward passes v supports.
func (v *Var[T]) Order() int {
	idx, err := v.materialize()
	if err != nil {
		return 0
	}
	return v.tape.entries[idx].order
}

// IsConst reports whether v is a constant.
func (v *Var[T]) IsConst() bool {
	return v.Order() == 0
}

// materialize returns the tape entry of v, flattening it if needed.
func (v *Var[T]) materialize() (int32, error) {
	t := v.tape
	if err := t.check(v); err != nil {
		return -1, err
	}
	if v.idx < 0 {
		idx, err := t.flatten(v.x)
		if err != nil {
			t.setErr(err)
			return -1, err
		}
		v.idx = idx
	}
	return v.idx, nil
}

// Add returns v + w.
func (v *Var[T]) Add(w *Var[T]) *Var[T] { return v.tape.apply(ops.Add, v, w) }

// Sub returns v - w.
func (v *Var[T]) Sub(w *Var[T]) *Var[T] { return v.tape.apply(ops.Sub, v, w) }

// Mul returns v · w.
func (v *Var[T]) Mul(w *Var[T]) *Var[T] { return v.tape.apply(ops.Mul, v, w) }

// Div returns v / w.
func (v *Var[T]) Div(w *Var[T]) *Var[T] { return v.tape.apply(ops.Div, v, w) }

// Neg returns -v.
func (v *Var[T]) Neg() *Var[T] { return v.tape.apply(ops.Neg, v) }

// Pow returns v^w.
func (v *Var[T]) Pow(w *Var[T]) *Var[T] { return v.tape.apply(ops.Pow, v, w) }

// AddFloat returns v + c.
func (v *Var[T]) AddFloat(c float64) *Var[T] { return v.Add(v.tape.ConstFloat(c)) }

// MulFloat returns v · c.
func (v *Var[T]) MulFloat(c float64) *Var[T] { return v.Mul(v.tape.ConstFloat(c)) }

// PowFloat returns v^c.
func (v *Var[T]) PowFloat(c float64) *Var[T] { return v.Pow(v.tape.ConstFloat(c)) }

// Exp returns e^v.
func (v *Var[T]) Exp() *Var[T] { return v.tape.apply(ops.Exp, v) }

// Log returns ln v.
func (v *Var[T]) Log() *Var[T] { return v.tape.apply(ops.Log, v) }

// Sqrt returns √v.
func (v *Var[T]) Sqrt() *Var[T] { return v.tape.apply(ops.Sqrt, v) }

// Sin returns sin v.
func (v *Var[T]) Sin() *Var[T] { return v.tape.apply(ops.Sin, v) }

// Cos returns cos v.
func (v *Var[T]) Cos() *Var[T] { return v.tape.apply(ops.Cos, v) }

// Tanh returns tanh v.
func (v *Var[T]) Tanh() *Var[T] { return v.tape.apply(ops.Tanh, v) }

// Expm1 returns e^v - 1.
func (v *Var[T]) Expm1() *Var[T] { return v.tape.apply(ops.Expm1, v) }

// Log1p returns ln(1 + v).
func (v *Var[T]) Log1p() *Var[T] { return v.tape.apply(ops.Log1p, v) }

// Erf returns erf v.
func (v *Var[T]) Erf() *Var[T] { return v.tape.apply(ops.Erf, v) }

// Erfc returns erfc v.
func (v *Var[T]) Erfc() *Var[T] { return v.tape.apply(ops.Erfc, v) }
