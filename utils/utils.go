// Package utils implements generic helpers used across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// IsStrictlyIncreasing returns true if s[i] < s[i+1] for all i.
func IsStrictlyIncreasing[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// MinSlice returns the minimum value of the input slice.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	if len(s) == 0 {
		return
	}
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}

// MaxSlice returns the maximum value of the input slice.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	if len(s) == 0 {
		return
	}
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return
}

// Linspace returns n evenly spaced values from a to b inclusive.
func Linspace(a, b float64, n int) []float64 {
	if n < 2 {
		panic("cannot Linspace: need at least 2 points")
	}
	s := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range s {
		s[i] = a + float64(i)*step
	}
	s[n-1] = b
	return s
}
