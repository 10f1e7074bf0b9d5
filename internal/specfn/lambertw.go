package specfn

import "math"

const lambertMaxIter = 64

// lambertW0 evaluates the principal branch for x >= -1/e.
func lambertW0(x float64) float64 {
	if x == 0 {
		return 0
	}
	p2 := 2 * (math.E*x + 1)
	if p2 <= 0 {
		return -1
	}

	var w float64
	switch {
	case x < -0.3:
		// Series about the branch point in p = √(2(ex+1)).
		p := math.Sqrt(p2)
		w = -1 + p - p*p/3 + 11.0/72*p*p*p
	case x < 3:
		w = math.Log1p(x) * 0.75
	default:
		l := math.Log(x)
		w = l - math.Log(l)
	}
	return halley(x, w)
}

// lambertWm1 evaluates the W₋₁ branch for -1/e <= x < 0.
func lambertWm1(x float64) float64 {
	p2 := 2 * (math.E*x + 1)
	if p2 <= 0 {
		return -1
	}

	var w float64
	if x < -0.25 {
		p := -math.Sqrt(p2)
		w = -1 + p - p*p/3 + 11.0/72*p*p*p
	} else {
		l1 := math.Log(-x)
		l2 := math.Log(-l1)
		w = l1 - l2 + l2/l1
	}
	return halley(x, w)
}

// halley refines w toward the root of w·eʷ - x.
func halley(x, w float64) float64 {
	for range lambertMaxIter {
		ew := math.Exp(w)
		f := w*ew - x
		wp1 := w + 1
		if wp1 == 0 || f == 0 {
			break
		}
		denom := ew*wp1 - (w+2)*f/(2*wp1)
		if denom == 0 {
			break
		}
		dw := f / denom
		w -= dw
		if math.Abs(dw) <= 4*0x1p-52*(1+math.Abs(w)) {
			break
		}
	}
	return w
}
