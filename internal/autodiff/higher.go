package autodiff

import "fmt"

// Grad runs a backward pass from y and returns ∂y/∂x as a variable.
//
// When y supports more than one pass the result is recorded on the tape and
// can be differentiated again, which is how higher derivatives are built:
//
//	g, _ := autodiff.Grad(y, x)  // dy/dx
//	h, _ := autodiff.Grad(g, x)  // d²y/dx²
func Grad[T any](y, x *Var[T]) (*Var[T], error) {
	t := y.tape
	if err := t.check(x); err != nil {
		return nil, err
	}
	xi, err := x.materialize()
	if err != nil {
		return nil, err
	}
	if err := y.Backward(); err != nil {
		return nil, err
	}
	yi := y.idx
	return t.adjointVar(xi, t.entries[yi].level+1), nil
}

// Derivatives returns the first n derivatives of y with respect to x.
//
// Both y and x must have been declared with order >= n.
func Derivatives[T any](y, x *Var[T], n int) ([]T, error) {
	if n < 1 {
		return nil, fmt.Errorf("derivative count must be at least 1, got %d", n)
	}
	if err := y.Err(); err != nil {
		return nil, err
	}
	if err := y.tape.check(x); err != nil {
		return nil, err
	}
	if order := y.Order(); n > order {
		return nil, &OrderExceededError{Requested: n, Declared: order}
	}
	if order := x.Order(); n > order {
		return nil, &OrderExceededError{Requested: n, Declared: order}
	}

	out := make([]T, 0, n)
	cur := y
	for range n {
		g, err := Grad(cur, x)
		if err != nil {
			return nil, err
		}
		out = append(out, g.Value())
		cur = g
	}
	return out, nil
}
