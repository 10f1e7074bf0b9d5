package ops

// registry is indexed by Kind. Leaf has no rule.
var registry = [numKinds]Rule{
	Add: addRule,
	Sub: subRule,
	Mul: mulRule,
	Div: divRule,
	Neg: negRule,
	Pow: powRule,

	Exp:   expRule,
	Log:   logRule,
	Sqrt:  sqrtRule,
	Sin:   sinRule,
	Cos:   cosRule,
	Tanh:  tanhRule,
	Expm1: expm1Rule,
	Log1p: log1pRule,
	Erf:   erfRule,
	Erfc:  erfcRule,

	Tgamma:    tgammaRule,
	Lgamma:    lgammaRule,
	Polygamma: polygammaRule,
	Beta:      betaRule,

	Ibeta:       ibetaRule,
	IbetaDerivA: ibetaDerivARule,
	IbetaDerivB: ibetaDerivBRule,

	CylBesselJ:        cylBesselJRule,
	CylBesselK:        cylBesselKRule,
	CylBesselKDerivNu: cylBesselKDerivNuRule,

	Hypergeometric1F0: hypergeometric1F0Rule,

	LambertW0:  lambertW0Rule,
	LambertWm1: lambertWm1Rule,

	Powm1: powm1Rule,
}
