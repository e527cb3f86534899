package ratfun

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit computes the rational function R = N/D with deg(N) = a and deg(D) = b
// that best approximates the table (xs[i], ys[i]) in the least-squares sense.
// The xs must be pairwise distinct; at least a+b+1 samples are required.
//
// Although R is nonlinear in x, the fit is a linear problem in the unknown
// coefficients: multiplying the target relation y ~ N(x)/D(x) through by the
// denominator gives y*D(x) - N(x) ~ 0, which is linear in the coefficients of
// N and D once the leading coefficient of D is pinned to 1. The design matrix
// therefore holds the numerator basis x^j (0 <= j <= a) and the denominator
// basis -y*x^j (0 <= j < b), with y*x^b as the right-hand side. The system is
// solved through a QR factorization, which is equivalent to the normal
// equations but better conditioned.
//
// Rows with ys[i] = 0 are accepted; they contribute nothing to the
// denominator columns, which can degrade the conditioning of the fit.
func Fit(xs, ys []float64, a, b int) (Rational, error) {
	if a < 0 || b < 0 {
		return Rational{}, fmt.Errorf("%w: got numerator degree %d, denominator degree %d", ErrInvalidDegree, a, b)
	}
	if len(xs) != len(ys) {
		return Rational{}, fmt.Errorf("ratfun: table length mismatch: %d abscissae, %d ordinates", len(xs), len(ys))
	}

	n := len(xs)
	cols := a + b + 1
	if n < cols {
		return Rational{}, fmt.Errorf("%w: %d samples for %d coefficients", ErrSingularSystem, n, cols)
	}

	phi := mat.NewDense(n, cols, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		p := 1.0
		for j := 0; j <= a; j++ {
			phi.Set(i, j, p)
			p *= x
		}
		p = 1.0
		for j := 0; j < b; j++ {
			phi.Set(i, a+1+j, -y*p)
			p *= x
		}
		rhs.SetVec(i, y*p)
	}

	var qr mat.QR
	qr.Factorize(phi)

	c := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(c, false, rhs); err != nil {
		return Rational{}, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	num := make(Polynomial, a+1)
	for j := range num {
		num[j] = c.AtVec(j)
	}
	den := make(Polynomial, b+1)
	for j := 0; j < b; j++ {
		den[j] = c.AtVec(a + 1 + j)
	}
	den[b] = 1

	return Rational{Num: num, Den: den}, nil
}
