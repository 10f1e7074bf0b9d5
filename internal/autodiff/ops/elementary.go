package ops

import "math"

var expRule = Rule{
	Name:  "exp",
	Arity: 1,
	Partials: []PartialFunc{
		func(_ Builder, _ []Ref, out Ref) Ref { return out },
	},
}

var logRule = Rule{
	Name:  "log",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return div(b, b.Const(1), args[0]) },
	},
}

// sqrtRule: d√x/dx = 1/(2√x).
var sqrtRule = Rule{
	Name:  "sqrt",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, out Ref) Ref { return div(b, b.Const(0.5), out) },
	},
}

var sinRule = Rule{
	Name:  "sin",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return b.Apply(Cos, args[0]) },
	},
}

var cosRule = Rule{
	Name:  "cos",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return neg(b, b.Apply(Sin, args[0])) },
	},
}

// tanhRule: d tanh x/dx = 1 - tanh²x.
var tanhRule = Rule{
	Name:  "tanh",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, out Ref) Ref { return sub(b, b.Const(1), mul(b, out, out)) },
	},
}

var expm1Rule = Rule{
	Name:  "expm1",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, _ []Ref, out Ref) Ref { return add(b, out, b.Const(1)) },
	},
}

var log1pRule = Rule{
	Name:  "log1p",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref {
			return div(b, b.Const(1), add(b, b.Const(1), args[0]))
		},
	},
}

// erfGauss builds ±(2/√π)·e^(-x²).
func erfGauss(b Builder, x Ref, sign float64) Ref {
	return mul(b, b.Const(sign*2/math.SqrtPi), exp(b, neg(b, mul(b, x, x))))
}

var erfRule = Rule{
	Name:  "erf",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return erfGauss(b, args[0], 1) },
	},
}

var erfcRule = Rule{
	Name:  "erfc",
	Arity: 1,
	Partials: []PartialFunc{
		func(b Builder, args []Ref, _ Ref) Ref { return erfGauss(b, args[0], -1) },
	},
}
