// Package interp provides linear interpolation over strictly monotone tables.
package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cosmostat/halosample/utils"
)

var (
	// ErrNotIncreasing is returned by NewTable when the abscissae are not
	// strictly increasing.
	ErrNotIncreasing = errors.New("interp: abscissae must be strictly increasing")

	// ErrOutOfRange is returned by At when the query point lies outside the
	// tabulated interval.
	ErrOutOfRange = errors.New("interp: query point outside tabulated interval")
)

// Table is an immutable tabulated function (xs[i], ys[i]) with strictly
// increasing xs, evaluated between nodes by linear interpolation.
type Table struct {
	xs, ys []float64
}

// NewTable builds a Table from the given nodes. The slices are copied, so the
// caller may reuse them. At least two nodes are required and xs must be
// strictly increasing.
func NewTable(xs, ys []float64) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interp: table length mismatch: %d abscissae, %d ordinates", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interp: need at least 2 nodes, got %d", len(xs))
	}
	if !utils.IsStrictlyIncreasing(xs) {
		return nil, ErrNotIncreasing
	}

	t := &Table{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(t.xs, xs)
	copy(t.ys, ys)
	return t, nil
}

// Len returns the number of nodes.
func (t *Table) Len() int {
	return len(t.xs)
}

// Bounds returns the first and last abscissa.
func (t *Table) Bounds() (lo, hi float64) {
	return t.xs[0], t.xs[len(t.xs)-1]
}

// At returns the linear interpolant at x. Querying outside [lo, hi] returns
// ErrOutOfRange; the table never extrapolates.
func (t *Table) At(x float64) (float64, error) {
	if math.IsNaN(x) || x < t.xs[0] || x > t.xs[len(t.xs)-1] {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrOutOfRange, x, t.xs[0], t.xs[len(t.xs)-1])
	}

	// Index of the right edge of the bracketing segment.
	i := sort.SearchFloat64s(t.xs, x)
	if i == 0 {
		return t.ys[0], nil
	}

	w := (x - t.xs[i-1]) / (t.xs[i] - t.xs[i-1])
	return t.ys[i-1] + w*(t.ys[i]-t.ys[i-1]), nil
}

// Inverse returns the table with the axes swapped, for inverting a strictly
// increasing tabulated function. It fails when the ordinates are not strictly
// increasing.
func (t *Table) Inverse() (*Table, error) {
	return NewTable(t.ys, t.xs)
}
