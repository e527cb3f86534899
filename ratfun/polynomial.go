package ratfun

// Polynomial holds coefficients in ascending degree order:
// p[0] + p[1]*x + p[2]*x^2 + ...
type Polynomial []float64

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Evaluate returns p(x), computed with Horner's scheme.
func (p Polynomial) Evaluate(x float64) (y float64) {
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	q := make(Polynomial, len(p))
	copy(q, p)
	return q
}
