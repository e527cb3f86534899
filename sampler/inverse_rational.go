package sampler

import (
	"fmt"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/ratfun"
	"github.com/cosmostat/halosample/utils"
	"github.com/cosmostat/halosample/utils/sampling"
)

// RationalInverse draws radii by evaluating a rational approximation of the
// inverse CDF at a uniform quantile. Construction amortizes one least-squares
// fit; each draw then costs two Horner evaluations and a division, with no
// table lookup.
type RationalInverse struct {
	fn   ratfun.Rational
	prng sampling.PRNG
}

// NewRationalInverse tabulates the inverse CDF of the profile on n nodes and
// fits a rational function with numerator degree a and denominator degree b
// to it. Fit failures (invalid degrees, n < a+b+1) are returned as-is.
func NewRationalInverse(p halo.Profile, n, a, b int, prng sampling.PRNG) (*RationalInverse, error) {
	lo, hi := p.Bounds()
	rs := utils.Linspace(lo, hi, n)
	us := make([]float64, n)
	for i, r := range rs {
		us[i] = p.CDF(r)
	}

	fn, err := ratfun.Fit(us, rs, a, b)
	if err != nil {
		return nil, fmt.Errorf("sampler: fitting inverse CDF: %w", err)
	}

	return &RationalInverse{fn: fn, prng: prng}, nil
}

// Approximant returns the fitted rational inverse CDF.
func (s *RationalInverse) Approximant() ratfun.Rational {
	return s.fn
}

// Sample draws a radius. A vanishing fitted denominator inside [0, 1) is
// reported as ratfun.ErrDivisionByZero rather than silently patched.
func (s *RationalInverse) Sample() (float64, error) {
	u := sampling.RandFloat64(s.prng, 0, 1)
	return s.fn.Evaluate(u)
}

func (s *RationalInverse) SampleN(n int) ([]float64, error) {
	return sampleN(s, n)
}
