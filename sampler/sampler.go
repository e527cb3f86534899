// Package sampler implements random draws of halo radii. Three strategies
// over the same radial profile are provided: rejection sampling under a
// constant envelope, inversion of a tabulated cumulative mass function by
// linear interpolation, and evaluation of a rational-function approximation
// of the inverse cumulative mass function.
package sampler

// Sampler draws radii distributed according to a radial profile.
type Sampler interface {
	// Sample draws a single radius.
	Sample() (float64, error)

	// SampleN draws n radii.
	SampleN(n int) ([]float64, error)
}

func sampleN(s Sampler, n int) ([]float64, error) {
	rs := make([]float64, n)
	for i := range rs {
		r, err := s.Sample()
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
