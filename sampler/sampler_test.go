package sampler

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/cosmostat/halosample/halo"
	"github.com/cosmostat/halosample/ratfun"
	"github.com/cosmostat/halosample/utils/sampling"
)

// fracProfile is a synthetic profile with the exactly rational inverse CDF
// r(u) = u/(2-u) on [0, 1]: CDF(r) = 2r/(1+r), PDF(r) = 2/(1+r)^2.
type fracProfile struct{}

func (fracProfile) Density(r float64) float64 { return 2 / ((1 + r) * (1 + r)) }
func (fracProfile) PDF(r float64) float64 {
	if r < 0 || r > 1 {
		return 0
	}
	return 2 / ((1 + r) * (1 + r))
}
func (fracProfile) PDFBound() float64 { return 2 }
func (fracProfile) CDF(r float64) float64 {
	if r <= 0 {
		return 0
	}
	if r >= 1 {
		return 1
	}
	return 2 * r / (1 + r)
}
func (fracProfile) InvCDF(u float64) (float64, error) {
	if u < 0 || u > 1 {
		return 0, halo.ErrInvalidQuantile
	}
	return u / (2 - u), nil
}
func (fracProfile) Bounds() (float64, float64) { return 0, 1 }

func testPRNG(t *testing.T, label string) sampling.PRNG {
	t.Helper()
	prng, err := sampling.NewSeededPRNG(label)
	require.NoError(t, err)
	return prng
}

// ksDistance compares a sample against the profile's distribution through a
// grid of reference quantiles.
func ksDistance(t *testing.T, p halo.Profile, samples []float64) float64 {
	t.Helper()

	// The reference grid is kept much larger than the sample so the
	// two-sample statistic is dominated by the sample itself.
	const m = 131072
	ref := make([]float64, m)
	for i := range ref {
		r, err := p.InvCDF((float64(i) + 0.5) / m)
		require.NoError(t, err)
		ref[i] = r
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return stat.KolmogorovSmirnov(sorted, nil, ref, nil)
}

func TestSamplersOnRationalProfile(t *testing.T) {
	const n = 20000
	p := fracProfile{}

	for _, tc := range []struct {
		name string
		new  func(t *testing.T) Sampler
		crit float64
	}{
		{
			name: "Rejection",
			new: func(t *testing.T) Sampler {
				return NewRejection(p, testPRNG(t, "rejection"))
			},
			crit: 0.02,
		},
		{
			name: "TableInverse",
			new: func(t *testing.T) Sampler {
				s, err := NewTableInverse(p, 2048, testPRNG(t, "table"))
				require.NoError(t, err)
				return s
			},
			crit: 0.02,
		},
		{
			name: "RationalInverse",
			new: func(t *testing.T) Sampler {
				s, err := NewRationalInverse(p, 64, 1, 1, testPRNG(t, "rational"))
				require.NoError(t, err)
				return s
			},
			crit: 0.02,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.new(t)
			samples, err := s.SampleN(n)
			require.NoError(t, err)

			lo, hi := p.Bounds()
			for _, r := range samples {
				require.GreaterOrEqual(t, r, lo-1e-9)
				require.LessOrEqual(t, r, hi+1e-9)
			}

			require.Less(t, ksDistance(t, p, samples), tc.crit)
		})
	}
}

func TestRationalInverseRecoversExactInverse(t *testing.T) {
	// The inverse CDF of fracProfile is itself rational of degree (1, 1),
	// so the fit reproduces it and the sampler is exact.
	s, err := NewRationalInverse(fracProfile{}, 64, 1, 1, testPRNG(t, "exact"))
	require.NoError(t, err)

	fn := s.Approximant()
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		want, err := fracProfile{}.InvCDF(u)
		require.NoError(t, err)
		got, err := fn.Evaluate(u)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-9)
	}
}

func TestSamplersOnNFW(t *testing.T) {
	p, err := halo.NewNFW(1.0, 10.0)
	require.NoError(t, err)

	t.Run("Rejection", func(t *testing.T) {
		s := NewRejection(p, testPRNG(t, "nfw-rejection"))
		samples, err := s.SampleN(20000)
		require.NoError(t, err)
		require.Less(t, ksDistance(t, p, samples), 0.02)
	})

	t.Run("TableInverse", func(t *testing.T) {
		s, err := NewTableInverse(p, 4096, testPRNG(t, "nfw-table"))
		require.NoError(t, err)
		samples, err := s.SampleN(20000)
		require.NoError(t, err)
		require.Less(t, ksDistance(t, p, samples), 0.02)
	})

	t.Run("RationalInverse", func(t *testing.T) {
		s, err := NewRationalInverse(p, 256, 4, 4, testPRNG(t, "nfw-rational"))
		require.NoError(t, err)

		// The fitted denominator must not vanish on the quantile range,
		// and the approximant must track the bisection inverse.
		fn := s.Approximant()
		for i := 0; i <= 1000; i++ {
			u := float64(i) / 1000
			require.NotZero(t, fn.Den.Evaluate(u))

			want, err := p.InvCDF(u)
			require.NoError(t, err)
			got, err := fn.Evaluate(u)
			require.NoError(t, err)
			require.InDelta(t, want, got, 0.1)
		}

		samples, err := s.SampleN(20000)
		require.NoError(t, err)
		require.Less(t, ksDistance(t, p, samples), 0.05)
	})
}

func TestSamplersDeterministic(t *testing.T) {
	p, err := halo.NewNFW(1.0, 10.0)
	require.NoError(t, err)

	a := NewRejection(p, testPRNG(t, "repeat"))
	b := NewRejection(p, testPRNG(t, "repeat"))

	sa, err := a.SampleN(500)
	require.NoError(t, err)
	sb, err := b.SampleN(500)
	require.NoError(t, err)

	require.Equal(t, sa, sb)
}

func TestRationalInverseFitErrors(t *testing.T) {
	p, err := halo.NewNFW(1.0, 10.0)
	require.NoError(t, err)

	_, err = NewRationalInverse(p, 64, -1, 2, testPRNG(t, "bad-degree"))
	require.ErrorIs(t, err, ratfun.ErrInvalidDegree)

	_, err = NewRationalInverse(p, 4, 4, 4, testPRNG(t, "underdetermined"))
	require.ErrorIs(t, err, ratfun.ErrSingularSystem)
}

func TestTableInverseWithinBounds(t *testing.T) {
	p, err := halo.NewNFW(2.0, 5.0)
	require.NoError(t, err)

	s, err := NewTableInverse(p, 1024, testPRNG(t, "bounds"))
	require.NoError(t, err)

	samples, err := s.SampleN(2000)
	require.NoError(t, err)
	for _, r := range samples {
		require.GreaterOrEqual(t, r, 0.0)
		require.LessOrEqual(t, r, 10.0)
		require.False(t, math.IsNaN(r))
	}
}
