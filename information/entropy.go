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

// Package information computes Shannon entropy, mutual information,
// conditional mutual information, and the chain-rule decomposition of
// mutual information over discrete symbol sequences or explicit
// probability mass functions. All quantities are in bits.
package information

import (
	"fmt"
	"math"

	"github.com/0xsoniclabs/infotheory"
	"github.com/0xsoniclabs/infotheory/empirical"
	"github.com/0xsoniclabs/infotheory/pmf"
)

// DefaultTolerance is the maximum deviation of a supplied pmf's sum
// from one that Entropy accepts by default.
const DefaultTolerance = 1e-5

// Entropy computes the Shannon entropy H = -Σ p·log2(p) in bits.
//
// Exactly one of f and data must be non-nil: either an explicit pmf f,
// which is validated against the given tolerance, or a symbol sequence
// data whose empirical distribution is estimated first. Supplying both
// or neither is reported as infotheory.ErrInvalidInput; an invalid pmf
// as infotheory.ErrInvalidDistribution.
//
// Zero-probability entries contribute nothing to the sum (the 0·log2(0)
// limit), so the result is never NaN for a valid pmf. The entropy of a
// one-point distribution is exactly zero.
func Entropy[S comparable](f []float64, data []S, tolerance float64) (float64, error) {
	if f == nil && data == nil {
		return 0, fmt.Errorf("%w: entropy requires either a distribution or data", infotheory.ErrInvalidInput)
	}
	if f != nil && data != nil {
		return 0, fmt.Errorf("%w: entropy requires either a distribution or data, not both", infotheory.ErrInvalidInput)
	}
	if data != nil {
		estimated, err := empirical.EstimateDistribution(data)
		if err != nil {
			return 0, err
		}
		return bits(estimated), nil
	}
	if err := pmf.Check(f, tolerance); err != nil {
		return 0, err
	}
	return bits(f), nil
}

// PMFEntropy computes the entropy of an explicit pmf using the default
// sum tolerance.
func PMFEntropy(f []float64) (float64, error) {
	return Entropy[struct{}](f, nil, DefaultTolerance)
}

// EntropyOf computes the entropy of the empirical distribution of the
// given symbol sequence.
func EntropyOf[S comparable](data []S) (float64, error) {
	return Entropy(nil, data, DefaultTolerance)
}

// bits computes -Σ p·log2(p) over a pmf, skipping zero entries so that
// log2(0) = -Inf never enters the sum.
func bits(f []float64) float64 {
	h := 0.0
	for _, p := range f {
		if p > 0.0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
