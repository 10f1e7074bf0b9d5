package ops

// hypergeometric1F0Rule differentiates ₁F₀(a;;z) = (1-z)^(-a).
//
//	∂/∂a = -₁F₀(a;;z)·ln(1-z)
//	∂/∂z = a·₁F₀(a;;z)/(1-z)
var hypergeometric1F0Rule = Rule{
	Name:  "hypergeometric_1F0",
	Arity: 2,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, out Ref) Ref {
			return neg(b, mul(b, out, b.Apply(Log1p, neg(b, args[1]))))
		},
		func(b Builder, args []Ref, out Ref) Ref {
			return div(b, mul(b, args[0], out), sub(b, b.Const(1), args[1]))
		},
	},
}
