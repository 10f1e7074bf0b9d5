package ops

// tgammaRule: Γ'(x) = Γ(x)·ψ(x).
//
// The rule holds at positive integers too, where Γ(1)·ψ(1) = -γ.
var tgammaRule = Rule{
	Name:  "tgamma",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, out Ref) Ref { return mul(b, out, digamma(b, args[0])) },
	},
}

var lgammaRule = Rule{
	Name:  "lgamma",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return digamma(b, args[0]) },
	},
}

// polygammaRule: d ψ⁽ⁿ⁾(x)/dx = ψ⁽ⁿ⁺¹⁾(x). The order n is not differentiable.
var polygammaRule = Rule{
	Name:  "polygamma",
	Arity: 2,
	Partials: []PartialFunc{
		nil,
		func(b Builder, args []Ref, _ Ref) Ref {
			return b.Apply(Polygamma, add(b, args[0], b.Const(1)), args[1])
		},
	},
}

// betaRule: ∂B(a,b)/∂a = B(a,b)·(ψ(a) - ψ(a+b)), symmetric in b.
var betaRule = Rule{
	Name:  "beta",
	Arity: 2,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, out Ref) Ref {
			return mul(b, out, sub(b, digamma(b, args[0]), digamma(b, add(b, args[0], args[1]))))
		},
		func(b Builder, args []Ref, out Ref) Ref {
			return mul(b, out, sub(b, digamma(b, args[1]), digamma(b, add(b, args[0], args[1]))))
		},
	},
}
