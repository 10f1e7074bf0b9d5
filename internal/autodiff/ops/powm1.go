package ops

// powm1Rule differentiates xʸ - 1.
//
//	∂/∂x = y·xʸ⁻¹
//	∂/∂y = (out+1)·ln x
var powm1Rule = Rule{
	Name:  "powm1",
	Arity: 2,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref {
			return mul(b, args[1], pow(b, args[0], sub(b, args[1], b.Const(1))))
		},
		func(b Builder, args []Ref, out Ref) Ref {
			return mul(b, add(b, out, b.Const(1)), log(b, args[0]))
		},
	},
}
