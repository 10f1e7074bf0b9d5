// Package gradcheck verifies engine derivatives against independent
// references: closed forms supplied by callers and central finite
// differences of the float64 function values.
package gradcheck

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Domain is a sampling box, one interval per argument.
type Domain struct {
	Lo, Hi  []float64
	Integer []bool // Arguments sampled as integers (orders)
}

// Box returns a domain over real intervals given as lo, hi pairs.
func Box(bounds ...float64) Domain {
	if len(bounds)%2 != 0 {
		panic("gradcheck: Box needs lo, hi pairs")
	}
	d := Domain{}
	for i := 0; i < len(bounds); i += 2 {
		d.Lo = append(d.Lo, bounds[i])
		d.Hi = append(d.Hi, bounds[i+1])
		d.Integer = append(d.Integer, false)
	}
	return d
}

// WithInteger marks argument i as an integer.
func (d Domain) WithInteger(i int) Domain {
	ints := append([]bool(nil), d.Integer...)
	ints[i] = true
	d.Integer = ints
	return d
}

// Dim returns the number of arguments.
func (d Domain) Dim() int { return len(d.Lo) }

func (d Domain) validate() error {
	if len(d.Hi) != len(d.Lo) || len(d.Integer) != len(d.Lo) {
		return fmt.Errorf("gradcheck: domain bounds have mismatched lengths")
	}
	for i := range d.Lo {
		if !(d.Lo[i] <= d.Hi[i]) {
			return fmt.Errorf("gradcheck: empty interval [%v, %v] for argument %d", d.Lo[i], d.Hi[i], i)
		}
		if d.Integer[i] && math.Ceil(d.Lo[i]) > math.Floor(d.Hi[i]) {
			return fmt.Errorf("gradcheck: no integer in [%v, %v] for argument %d", d.Lo[i], d.Hi[i], i)
		}
	}
	return nil
}

// Sampler draws reproducible points from a Domain.
//
// A Sampler is not safe for concurrent use; draw all points up front and
// hand them to workers.
type Sampler struct {
	dom Domain
	rng *rand.Rand
}

// NewSampler returns a sampler over dom seeded with seed.
func NewSampler(dom Domain, seed uint64) *Sampler {
	return &Sampler{
		dom: dom,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next draws one point: uniform in [Lo, Hi) per real argument, uniform over
// the integers in [Lo, Hi] for integer arguments.
func (s *Sampler) Next() []float64 {
	p := make([]float64, s.dom.Dim())
	for i := range p {
		lo, hi := s.dom.Lo[i], s.dom.Hi[i]
		if s.dom.Integer[i] {
			a, b := math.Ceil(lo), math.Floor(hi)
			p[i] = a + float64(s.rng.IntN(int(b-a)+1))
			continue
		}
		p[i] = lo + (hi-lo)*s.rng.Float64()
	}
	return p
}

// Points draws n points.
func (s *Sampler) Points(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = s.Next()
	}
	return pts
}
