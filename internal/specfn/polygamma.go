package specfn

import "math"

// Bernoulli numbers B₂, B₄, ..., B₁₆.
var bernoulli2k = [...]float64{
	1.0 / 6,
	-1.0 / 30,
	1.0 / 42,
	-1.0 / 30,
	5.0 / 66,
	-691.0 / 2730,
	7.0 / 6,
	-3617.0 / 510,
}

// digamma computes ψ(x) for x not a non-positive integer. Arguments below
// 1/2 are reflected with ψ(1-x) - π cot(πx). Otherwise x is shifted to at
// least 10 and
//
//	ψ(x) ~ ln x - 1/(2x) - Σ B₂ₖ / (2k x²ᵏ)
//
// is summed there. The shift terms are subtracted smallest first.
func digamma(x float64) float64 {
	if x < 0.5 {
		return digamma(1-x) - math.Pi/math.Tan(math.Pi*x)
	}
	n := 0
	for x+float64(n) < 10 {
		n++
	}
	y := x + float64(n)
	y2 := y * y
	yp := y2
	var series float64
	for k, b := range bernoulli2k {
		series += b / (float64(2*(k+1)) * yp)
		yp *= y2
	}
	r := math.Log(y) - 0.5/y - series
	for i := n - 1; i >= 0; i-- {
		r -= 1 / (x + float64(i))
	}
	return r
}

// polygamma computes ψ⁽ⁿ⁾(x) for n >= 1 and x not a non-positive integer.
//
// The argument is shifted above a threshold with
//
//	ψ⁽ⁿ⁾(x) = ψ⁽ⁿ⁾(x+1) + (-1)ⁿ⁺¹ n! / xⁿ⁺¹
//
// and the asymptotic expansion
//
//	ψ⁽ⁿ⁾(x) ~ (-1)ⁿ⁺¹ [ (n-1)!/xⁿ + n!/(2xⁿ⁺¹) + Σ B₂ₖ (2k+n-1)!/((2k)! x²ᵏ⁺ⁿ) ]
//
// is summed there. Both pieces share the (-1)ⁿ⁺¹ sign.
func polygamma(n int, x float64) float64 {
	nf := float64(n)
	fact := math.Gamma(nf + 1)

	var shifted float64
	for threshold := 20 + nf; x < threshold; x++ {
		shifted += math.Pow(x, -(nf + 1))
	}

	asym := math.Gamma(nf)/math.Pow(x, nf) + fact/(2*math.Pow(x, nf+1))
	x2 := x * x
	xp := math.Pow(x, nf) * x2
	for k, b := range bernoulli2k {
		twoK := float64(2 * (k + 1))
		asym += b * math.Exp(lgammaPos(twoK+nf)-lgammaPos(twoK+1)) / xp
		xp *= x2
	}

	sign := 1.0
	if n%2 == 0 {
		sign = -1
	}
	return sign * (fact*shifted + asym)
}

func lgammaPos(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
