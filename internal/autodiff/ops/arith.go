package ops

var addRule = Rule{
	Name:       "add",
	Arity:      2,
	Elementary: true,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, _ Ref) Ref { return b.Const(1) },
		func(b Builder, _ []Ref, _ Ref) Ref { return b.Const(1) },
	},
}

var subRule = Rule{
	Name:       "sub",
	Arity:      2,
	Elementary: true,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, _ Ref) Ref { return b.Const(1) },
		func(b Builder, _ []Ref, _ Ref) Ref { return b.Const(-1) },
	},
}

// mulRule: ∂(a·b)/∂a = b, ∂(a·b)/∂b = a.
var mulRule = Rule{
	Name:       "mul",
	Arity:      2,
	Elementary: true,
	Partials: []PartialFunc{
		func(_ Builder, args []Ref, _ Ref) Ref { return args[1] },
		func(_ Builder, args []Ref, _ Ref) Ref { return args[0] },
	},
}

// divRule: ∂(a/b)/∂a = 1/b, ∂(a/b)/∂b = -(a/b)/b.
var divRule = Rule{
	Name:       "div",
	Arity:      2,
	Elementary: true,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return div(b, b.Const(1), args[1]) },
		func(b Builder, args []Ref, out Ref) Ref { return neg(b, div(b, out, args[1])) },
	},
}

var negRule = Rule{
	Name:       "neg",
	Arity:      1,
	Elementary: true,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, _ Ref) Ref { return b.Const(-1) },
	},
}

// powRule: ∂(xʸ)/∂x = y·xʸ⁻¹, ∂(xʸ)/∂y = xʸ·ln x.
//
// The y partial needs x > 0; it is only built when y is a variable.
var powRule = Rule{
	Name:       "pow",
	Arity:      2,
	Elementary: true,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref {
			return mul(b, args[1], pow(b, args[0], sub(b, args[1], b.Const(1))))
		},
		func(b Builder, args []Ref, out Ref) Ref { return mul(b, out, log(b, args[0])) },
	},
}
