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

// Package markov models first-order Markov chains over discrete states.
// A chain can be constructed from an explicit stochastic matrix or
// estimated from an observed symbol sequence; its stationary
// distribution and entropy rate extend the per-variable entropy of the
// information package to sequential processes.
package markov

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/0xsoniclabs/infotheory"
	"github.com/0xsoniclabs/infotheory/information"
	"github.com/0xsoniclabs/infotheory/pmf"
	"gonum.org/v1/gonum/mat"
)

// rowTolerance is the maximum deviation from one accepted for the row
// sums of a stochastic matrix.
const rowTolerance = 1e-9

// Chain is a first-order Markov chain over n labelled states with a
// row-stochastic transition matrix.
type Chain struct {
	n int         // number of states
	a [][]float64 // row-stochastic transition matrix
	l []string    // state labels
}

// New creates a Markov chain from a stochastic matrix and state labels.
// The matrix must be square with one row per label, every row must be a
// valid pmf, and every label must be unique.
func New(a [][]float64, labels []string) (*Chain, error) {
	n := len(labels)
	labelCount := map[string]int{}
	for i := 0; i < n; i++ {
		labelCount[labels[i]]++
	}
	for label, c := range labelCount {
		if c > 1 {
			return nil, fmt.Errorf("%w: state label (%v) occurs %d times", infotheory.ErrInvalidInput, label, c)
		}
	}
	if len(a) != n {
		return nil, fmt.Errorf("%w: %d labels but %d matrix rows", infotheory.ErrLengthMismatch, n, len(a))
	}
	for i := 0; i < n; i++ {
		if len(a[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", infotheory.ErrLengthMismatch, i, len(a[i]), n)
		}
		if err := pmf.Check(a[i], rowTolerance); err != nil {
			return nil, fmt.Errorf("row %d is not a pmf: %w", i, err)
		}
	}
	return &Chain{a: a, l: labels, n: n}, nil
}

// Estimate fits a first-order Markov chain to an observed symbol
// sequence. States are the distinct symbols of the sequence, labelled
// by their default string rendering and ordered lexicographically by
// label; transition probabilities are the normalized bigram counts.
// A state without outgoing observations (possible only for the final
// symbol of the sequence) is made absorbing.
func Estimate[S comparable](seq []S) (*Chain, error) {
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: estimating a Markov chain requires at least two observations (got %d)", infotheory.ErrInvalidInput, len(seq))
	}

	label := map[S]string{}
	for _, s := range seq {
		if _, ok := label[s]; !ok {
			label[s] = fmt.Sprint(s)
		}
	}
	states := make([]S, 0, len(label))
	for s := range label {
		states = append(states, s)
	}
	slices.SortFunc(states, func(p, q S) int {
		return strings.Compare(label[p], label[q])
	})

	n := len(states)
	index := make(map[S]int, n)
	labels := make([]string, n)
	for i, s := range states {
		index[s] = i
		labels[i] = label[s]
	}
	counts := make([][]uint64, n)
	for i := range counts {
		counts[i] = make([]uint64, n)
	}
	for i := 0; i+1 < len(seq); i++ {
		counts[index[seq[i]]][index[seq[i+1]]]++
	}

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		total := uint64(0)
		for j := range counts[i] {
			total += counts[i][j]
		}
		if total == 0 {
			a[i][i] = 1.0 // absorbing state
			continue
		}
		for j := range counts[i] {
			a[i][j] = float64(counts[i][j]) / float64(total)
		}
	}
	return New(a, labels)
}

// Sample returns the successor state of state i for the probabilistic
// argument u in [0,1).
func (mc *Chain) Sample(i int, u float64) (int, error) {
	if u < 0 || u >= 1.0 {
		return 0, fmt.Errorf("%w: probabilistic argument (%v) is not in interval [0,1)", infotheory.ErrInvalidInput, u)
	}
	if i < 0 || i >= mc.n {
		return 0, fmt.Errorf("%w: state index (%d) out of range", infotheory.ErrInvalidInput, i)
	}
	return pmf.Quantile(mc.a[i], u), nil
}

// NumStates returns the number of states of the chain.
func (mc *Chain) NumStates() int {
	return mc.n
}

// Stationary computes the stationary distribution of the chain as the
// left eigenvector of the transition matrix for the eigenvalue one.
func (mc *Chain) Stationary() ([]float64, error) {
	elements := make([]float64, 0, mc.n*mc.n)
	for i := 0; i < mc.n; i++ {
		elements = append(elements, mc.a[i]...)
	}
	a := mat.NewDense(mc.n, mc.n, elements)

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("eigenvalue decomposition failed")
	}

	// A row-stochastic matrix always has the eigenvalue one, but not
	// necessarily at the first index.
	values := eig.Values(nil)
	k := -1
	for i, v := range values {
		if math.Abs(real(v)-1.0) < rowTolerance && math.Abs(imag(v)) < rowTolerance {
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("eigenvalue decomposition found no eigenvalue of one")
	}

	var vectors mat.CDense
	eig.LeftVectorsTo(&vectors)

	total := complex128(0)
	for i := 0; i < mc.n; i++ {
		total += vectors.At(i, k)
	}
	if imag(total) > rowTolerance {
		return nil, fmt.Errorf("stationary eigenvector is complex")
	}

	stationary := make([]float64, 0, mc.n)
	for i := 0; i < mc.n; i++ {
		stationary = append(stationary, math.Abs(real(vectors.At(i, k))/real(total)))
	}
	return stationary, nil
}

// EntropyRate computes the entropy rate of the chain in bits per step,
// H = Σ_i π_i · H(a_i), the stationary-weighted entropy of the
// transition rows.
func (mc *Chain) EntropyRate() (float64, error) {
	stationary, err := mc.Stationary()
	if err != nil {
		return 0, err
	}
	h := 0.0
	for i := 0; i < mc.n; i++ {
		rowEntropy, err := information.PMFEntropy(mc.a[i])
		if err != nil {
			return 0, err
		}
		h += stationary[i] * rowEntropy
	}
	return h, nil
}

// Label returns the label of state i.
func (mc *Chain) Label(i int) (string, error) {
	if i < 0 || i >= mc.n {
		return "", fmt.Errorf("%w: state index (%d) out of range", infotheory.ErrInvalidInput, i)
	}
	return mc.l[i], nil
}

// Find returns the state index for a label, or -1 if no state carries it.
func (mc *Chain) Find(label string) int {
	for i := range mc.l {
		if mc.l[i] == label {
			return i
		}
	}
	return -1
}
