package ops

// cylBesselJRule: J'_n(x) = (J_{n-1}(x) - J_{n+1}(x))/2 for integer n.
var cylBesselJRule = Rule{
	Name:  "cyl_bessel_j",
	Arity: 2,
	Partials: []PartialFunc{
		nil,
		func(b Builder, args []Ref, _ Ref) Ref {
			one := b.Const(1)
			lo := b.Apply(CylBesselJ, sub(b, args[0], one), args[1])
			hi := b.Apply(CylBesselJ, add(b, args[0], one), args[1])
			return mul(b, b.Const(0.5), sub(b, lo, hi))
		},
	},
}

// cylBesselKRule differentiates K_ν(x) in both the order and the argument.
//
// ∂K/∂x = -(K_{ν-1}(x) + K_{ν+1}(x))/2. ∂K/∂ν has no closed form and is
// evaluated numerically by CylBesselKDerivNu.
var cylBesselKRule = Rule{
	Name:  "cyl_bessel_k",
	Arity: 2,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return b.Apply(CylBesselKDerivNu, args...) },
		func(b Builder, args []Ref, _ Ref) Ref {
			one := b.Const(1)
			lo := b.Apply(CylBesselK, sub(b, args[0], one), args[1])
			hi := b.Apply(CylBesselK, add(b, args[0], one), args[1])
			return mul(b, b.Const(-0.5), add(b, lo, hi))
		},
	},
}

var cylBesselKDerivNuRule = Rule{
	Name:     "cyl_bessel_k_deriv_nu",
	Arity:    2,
	Terminal: true,
}
