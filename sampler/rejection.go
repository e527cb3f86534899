package sampler

import (
	"errors"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/utils/sampling"
)

// ErrEnvelopeExhausted is returned when a draw is rejected maxAttempts times
// in a row, which indicates a profile whose PDFBound does not dominate its
// PDF.
var ErrEnvelopeExhausted = errors.New("sampler: rejection sampling exceeded the attempt budget")

const maxAttempts = 1 << 20

// Rejection draws radii by rejection sampling: a candidate radius is drawn
// uniformly over the support and accepted with probability PDF(r)/PDFBound().
// Simple and exact, but the acceptance rate degrades with the peakedness of
// the profile.
type Rejection struct {
	profile halo.Profile
	prng    sampling.PRNG
	lo, hi  float64
	bound   float64
}

// NewRejection creates a rejection sampler for the profile, drawing
// randomness from prng.
func NewRejection(p halo.Profile, prng sampling.PRNG) *Rejection {
	lo, hi := p.Bounds()
	return &Rejection{
		profile: p,
		prng:    prng,
		lo:      lo,
		hi:      hi,
		bound:   p.PDFBound(),
	}
}

func (s *Rejection) Sample() (float64, error) {
	for i := 0; i < maxAttempts; i++ {
		r := sampling.RandFloat64(s.prng, s.lo, s.hi)
		v := sampling.RandFloat64(s.prng, 0, s.bound)
		if v < s.profile.PDF(r) {
			return r, nil
		}
	}
	return 0, ErrEnvelopeExhausted
}

func (s *Rejection) SampleN(n int) ([]float64, error) {
	return sampleN(s, n)
}
