// Package ratfun fits rational functions to tabulated data by linear least
// squares and evaluates them. A rational function is the ratio N(x)/D(x) of
// two polynomials; the fit fixes the leading denominator coefficient to 1 to
// remove the scale ambiguity between numerator and denominator.
package ratfun

import "errors"

var (
	// ErrInvalidDegree is returned by Fit when a requested polynomial degree
	// is negative.
	ErrInvalidDegree = errors.New("ratfun: polynomial degree must be non-negative")

	// ErrSingularSystem is returned by Fit when the least-squares system has
	// no unique solution, e.g. fewer samples than coefficients or too few
	// distinct abscissae.
	ErrSingularSystem = errors.New("ratfun: least-squares system is singular")

	// ErrDivisionByZero is returned by Evaluate when the denominator
	// polynomial vanishes at the query point.
	ErrDivisionByZero = errors.New("ratfun: denominator evaluates to zero")
)
