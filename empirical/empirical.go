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

// Package empirical estimates probability mass functions from observed
// symbol sequences. Symbols are arbitrary comparable values; a sequence
// is a []S whose order defines which symbols of parallel sequences
// co-occur, but has no influence on the estimated distribution.
//
// The estimated pmf carries probabilities only, in unspecified order;
// the association between symbols and probabilities is deliberately
// discarded since entropy and mutual information depend only on the
// multiset of probabilities.
package empirical

import (
	"fmt"
	"strings"

	"github.com/0xsoniclabs/infotheory"
)

// Frequencies counts the occurrences of each distinct symbol.
func Frequencies[S comparable](symbols []S) map[S]uint64 {
	freq := make(map[S]uint64, len(symbols))
	for _, s := range symbols {
		freq[s]++
	}
	return freq
}

// EstimateDistribution returns the empirical pmf of the given symbol
// sequence: one entry per distinct symbol holding its observed
// frequency divided by the sequence length. The order of the entries is
// unspecified. An empty sequence has no empirical distribution and is
// reported as infotheory.ErrInvalidInput.
func EstimateDistribution[S comparable](symbols []S) ([]float64, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: cannot estimate a distribution from an empty sequence", infotheory.ErrInvalidInput)
	}
	return distribution(Frequencies(symbols), len(symbols)), nil
}

// pair2 and pair3 are joint observations used as frequency-map keys;
// they are comparable whenever their components are.
type pair2[X, Y comparable] struct {
	x X
	y Y
}

type pair3[X, Y, Z comparable] struct {
	x X
	y Y
	z Z
}

// EstimateJointDistribution returns the empirical pmf of the joint
// variable (X,Y) observed as co-occurring symbols x[i], y[i]. The pairs
// are counted in place; no paired sequence is materialized.
func EstimateJointDistribution[X, Y comparable](x []X, y []Y) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: joint estimation over sequences of length %d and %d", infotheory.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: cannot estimate a joint distribution from empty sequences", infotheory.ErrInvalidInput)
	}
	freq := make(map[pair2[X, Y]]uint64, len(x))
	for i := range x {
		freq[pair2[X, Y]{x[i], y[i]}]++
	}
	return distribution(freq, len(x)), nil
}

// EstimateJointDistribution3 returns the empirical pmf of the joint
// variable (X,Y,Z) observed as co-occurring symbols x[i], y[i], z[i].
func EstimateJointDistribution3[X, Y, Z comparable](x []X, y []Y, z []Z) ([]float64, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("%w: joint estimation over sequences of length %d, %d and %d", infotheory.ErrLengthMismatch, len(x), len(y), len(z))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: cannot estimate a joint distribution from empty sequences", infotheory.ErrInvalidInput)
	}
	freq := make(map[pair3[X, Y, Z]]uint64, len(x))
	for i := range x {
		freq[pair3[X, Y, Z]{x[i], y[i], z[i]}]++
	}
	return distribution(freq, len(x)), nil
}

// distribution converts frequency counts into an empirical pmf.
func distribution[S comparable](freq map[S]uint64, n int) []float64 {
	f := make([]float64, 0, len(freq))
	for _, count := range freq {
		f = append(f, float64(count)/float64(n))
	}
	return f
}

// JointSymbol is a composite symbol formed by joining the co-occurring
// symbols of several parallel sequences. It is an opaque comparable
// value intended only for frequency counting and further combination;
// two joint symbols are equal exactly when all their components are.
//
// The encoding renders each component with %v followed by the ASCII
// unit separator (0x1f). Symbols whose string rendering contains the
// unit separator are not supported.
type JointSymbol string

// Combine2 zips two parallel symbol sequences of possibly different
// element types into a single sequence of joint symbols.
func Combine2[X, Y comparable](x []X, y []Y) ([]JointSymbol, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: combining sequences of length %d and %d", infotheory.ErrLengthMismatch, len(x), len(y))
	}
	combined := make([]JointSymbol, len(x))
	var b strings.Builder
	for i := range x {
		b.Reset()
		fmt.Fprintf(&b, "%v\x1f%v\x1f", x[i], y[i])
		combined[i] = JointSymbol(b.String())
	}
	return combined, nil
}

// Combine zips k parallel symbol sequences into a single sequence of
// joint symbols: element i is the tuple (seqs[0][i], ..., seqs[k-1][i]).
// All sequences must have the same length. At least one sequence must
// be given.
func Combine[S comparable](seqs ...[]S) ([]JointSymbol, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: no sequences to combine", infotheory.ErrInvalidInput)
	}
	n := len(seqs[0])
	for j, s := range seqs {
		if len(s) != n {
			return nil, fmt.Errorf("%w: sequence %d has length %d, expected %d", infotheory.ErrLengthMismatch, j, len(s), n)
		}
	}
	combined := make([]JointSymbol, n)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.Reset()
		for _, s := range seqs {
			fmt.Fprintf(&b, "%v\x1f", s[i])
		}
		combined[i] = JointSymbol(b.String())
	}
	return combined, nil
}
