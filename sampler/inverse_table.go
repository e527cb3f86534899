package sampler

import (
	"fmt"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/interp"
	"github.com/cosmostat/halosample/utils"
	"github.com/cosmostat/halosample/utils/sampling"
)

// TableInverse draws radii by inverse-transform sampling over a tabulated
// CDF: a uniform quantile is drawn and mapped back to a radius by linear
// interpolation of the inverted table. Accuracy is bounded by the node
// spacing; cost per draw is a binary search.
type TableInverse struct {
	inv  *interp.Table
	prng sampling.PRNG
}

// NewTableInverse tabulates the profile's CDF on n evenly spaced radii and
// inverts the table. It fails when the tabulated CDF is not strictly
// increasing, which happens when n oversamples flat regions of the profile.
func NewTableInverse(p halo.Profile, n int, prng sampling.PRNG) (*TableInverse, error) {
	lo, hi := p.Bounds()
	rs := utils.Linspace(lo, hi, n)
	us := make([]float64, n)
	for i, r := range rs {
		us[i] = p.CDF(r)
	}

	tab, err := interp.NewTable(rs, us)
	if err != nil {
		return nil, fmt.Errorf("sampler: tabulating CDF: %w", err)
	}
	inv, err := tab.Inverse()
	if err != nil {
		return nil, fmt.Errorf("sampler: inverting CDF table: %w", err)
	}

	return &TableInverse{inv: inv, prng: prng}, nil
}

func (s *TableInverse) Sample() (float64, error) {
	u := sampling.RandFloat64(s.prng, 0, 1)
	return s.inv.At(u)
}

func (s *TableInverse) SampleN(n int) ([]float64, error) {
	return sampleN(s, n)
}
