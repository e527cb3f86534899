// Package halo implements spherically symmetric dark-matter halo density
// profiles and their radial mass distributions.
package halo

import "errors"

// ErrInvalidQuantile is returned by InvCDF when the quantile argument lies
// outside [0, 1].
var ErrInvalidQuantile = errors.New("halo: quantile must be in [0, 1]")

// Profile is a truncated, spherically symmetric radial mass distribution.
type Profile interface {
	// Density returns the mass density shape rho(r), up to an arbitrary
	// normalization constant.
	Density(r float64) float64

	// PDF returns the radial probability density dP/dr at r, proportional
	// to r^2 * rho(r) and normalized over [Bounds()].
	PDF(r float64) float64

	// PDFBound returns an upper bound of PDF over [Bounds()], usable as a
	// rejection-sampling envelope height.
	PDFBound() float64

	// CDF returns the fraction of total mass enclosed within radius r.
	CDF(r float64) float64

	// InvCDF returns the radius enclosing the mass fraction u in [0, 1].
	InvCDF(u float64) (float64, error)

	// Bounds returns the radial support [lo, hi] of the profile.
	Bounds() (lo, hi float64)
}
