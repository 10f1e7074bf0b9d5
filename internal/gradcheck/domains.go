package gradcheck

// Domains are sampling boxes on which each catalog function is smooth and
// away from poles, so finite differences are a sound reference.
var Domains = map[string]Domain{
	"add": Box(-5, 5, -5, 5),
	"sub": Box(-5, 5, -5, 5),
	"mul": Box(-5, 5, -5, 5),
	"div": Box(-5, 5, 0.5, 5),
	"neg": Box(-5, 5),
	"pow": Box(0.5, 4, -2, 2),

	"exp":   Box(-3, 3),
	"log":   Box(0.1, 10),
	"sqrt":  Box(0.1, 10),
	"sin":   Box(-3, 3),
	"cos":   Box(-3, 3),
	"tanh":  Box(-3, 3),
	"expm1": Box(-1, 1),
	"log1p": Box(-0.5, 3),
	"erf":   Box(-2, 2),
	"erfc":  Box(-2, 2),

	"tgamma":    Box(0.2, 8),
	"lgamma":    Box(0.5, 10),
	"digamma":   Box(0.5, 10),
	"trigamma":  Box(0.5, 10),
	"polygamma": Box(0, 3, 0.5, 10).WithInteger(0),
	"beta":      Box(0.5, 5, 0.5, 5),

	"ibeta": Box(0.5, 5, 0.5, 5, 0.05, 0.95),

	"cyl_bessel_j": Box(0, 3, 0.5, 10).WithInteger(0),
	"cyl_bessel_k": Box(0, 3, 0.5, 5),

	"hypergeometric_1F0": Box(0.5, 3, -0.9, 0.8),

	"lambert_w0":  Box(-0.3, 10),
	"lambert_wm1": Box(-0.33, -0.02),

	"powm1": Box(0.5, 3, -2, 2),
}
