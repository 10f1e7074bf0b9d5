package ops

// ibetaRule differentiates the regularised incomplete beta I_x(a, b).
//
// The parameter partials have no closed form and are evaluated numerically
// by IbetaDerivA and IbetaDerivB. The x partial is the beta density
// x^(a-1)·(1-x)^(b-1)/B(a,b).
var ibetaRule = Rule{
	Name:  "ibeta",
	Arity: 3,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return b.Apply(IbetaDerivA, args...) },
		func(b Builder, args []Ref, _ Ref) Ref { return b.Apply(IbetaDerivB, args...) },
		func(b Builder, args []Ref, _ Ref) Ref {
			one := b.Const(1)
			x := args[2]
			num := mul(b,
				pow(b, x, sub(b, args[0], one)),
				pow(b, sub(b, one, x), sub(b, args[1], one)))
			return div(b, num, b.Apply(Beta, args[0], args[1]))
		},
	},
}

var ibetaDerivARule = Rule{
	Name:     "ibeta_deriv_a",
	Arity:    3,
	Terminal: true,
}

var ibetaDerivBRule = Rule{
	Name:     "ibeta_deriv_b",
	Arity:    3,
	Terminal: true,
}
