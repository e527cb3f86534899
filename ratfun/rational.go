package ratfun

import "fmt"

// Rational is the ratio Num(x)/Den(x) of two polynomials. Values produced by
// [Fit] carry a denominator whose leading coefficient is exactly 1.
type Rational struct {
	Num Polynomial
	Den Polynomial
}

// Evaluate returns Num(x)/Den(x). It returns ErrDivisionByZero when the
// denominator vanishes at x; no substitute value is produced, recovery is the
// caller's decision.
func (r Rational) Evaluate(x float64) (float64, error) {
	den := r.Den.Evaluate(x)
	if den == 0 {
		return 0, fmt.Errorf("%w at x=%g", ErrDivisionByZero, x)
	}
	return r.Num.Evaluate(x) / den, nil
}

// EvaluateSlice returns the element-wise evaluation of r over xs in a freshly
// allocated slice. The first denominator zero aborts the evaluation.
func (r Rational) EvaluateSlice(xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := r.Evaluate(x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}
