package ops

// lambertWPartial: W'(x) = 1/(e^W·(1+W)), valid on both real branches away
// from the branch point -1/e.
func lambertWPartial(b Builder, _ []Ref, out Ref) Ref {
	return div(b, b.Const(1), mul(b, exp(b, out), add(b, b.Const(1), out)))
}

var lambertW0Rule = Rule{
	Name:     "lambert_w0",
	Arity:    1,
	Partials: []PartialFunc{lambertWPartial},
}

var lambertWm1Rule = Rule{
	Name:     "lambert_wm1",
	Arity:    1,
	Partials: []PartialFunc{lambertWPartial},
}
