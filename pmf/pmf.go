// Copyright 2025 Sonic Labs
// This file is part of the infotheory library.
//
// infotheory is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// infotheory is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with infotheory. If not, see <http://www.gnu.org/licenses/>.

// Package pmf provides utilities for probability mass functions of
// discrete finite random variables, represented as plain []float64
// slices. A pmf carries probabilities only; it is decoupled from the
// symbols the probabilities were derived from.
package pmf

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/0xsoniclabs/infotheory"
)

// Check reports whether f is a valid probability mass function: every
// entry must lie in [0,1] and must not be NaN, and the entries must sum
// to one within the given tolerance. Violations are reported as
// infotheory.ErrInvalidDistribution.
func Check(f []float64, tolerance float64) error {
	total := 0.0
	for i := 0; i < len(f); i++ {
		p := f[i]
		if !(p >= 0.0 && p <= 1.0) {
			return fmt.Errorf("%w: probability (%v) at index %d outside [0,1]", infotheory.ErrInvalidDistribution, p, i)
		}
		total += p
	}
	if math.Abs(total-1.0) > tolerance {
		return fmt.Errorf("%w: probabilities sum to %v, not one (tolerance %v)", infotheory.ErrInvalidDistribution, total, tolerance)
	}
	return nil
}

// Uniform returns the uniform pmf over k support points.
func Uniform(k int) ([]float64, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: uniform pmf needs at least one support point (got %d)", infotheory.ErrInvalidInput, k)
	}
	f := make([]float64, k)
	for i := range f {
		f[i] = 1.0 / float64(k)
	}
	return f, nil
}

// Quantile computes the inverse CDF of the pmf f. For a probability u
// in [0,1], it returns the smallest index i whose cumulative probability
// is at least u. If u exceeds the total probability mass, the last index
// with positive probability is returned; if all probabilities are zero,
// the result is 0. Probabilities are accumulated with Kahan summation so
// that long runs of tiny entries do not lose mass.
func Quantile(f []float64, u float64) int {
	sum := 0.0
	c := 0.0 // Kahan compensation term
	lastPositive := -1
	for i := 0; i < len(f); i++ {
		y := f[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if u <= sum {
			return i
		}
		if f[i] > 0.0 {
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}

// Sample draws a random index distributed according to the pmf f using
// the provided random number generator.
func Sample(rg *rand.Rand, f []float64) int {
	return Quantile(f, rg.Float64())
}

// Shrink removes the first entry of the pmf f and rescales the remaining
// entries so that they form a pmf again. The input must be a valid pmf
// with at least two entries, and the first entry must not carry the
// entire probability mass.
func Shrink(f []float64, tolerance float64) ([]float64, error) {
	n := len(f)
	if n < 2 {
		return nil, fmt.Errorf("%w: pmf too short to shrink (%d entries)", infotheory.ErrInvalidInput, n)
	}
	if err := Check(f, tolerance); err != nil {
		return nil, err
	}
	factor := 1.0 - f[0]
	if math.Abs(factor) < tolerance || math.IsNaN(factor) {
		return nil, fmt.Errorf("%w: cannot rescale, remaining mass (%v) is zero", infotheory.ErrInvalidDistribution, factor)
	}
	scaled := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		scaled[i] = f[i+1] / factor
	}
	if err := Check(scaled, tolerance); err != nil {
		return nil, err
	}
	return scaled, nil
}
