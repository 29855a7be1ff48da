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

package information

import (
	"fmt"

	"github.com/0xsoniclabs/infotheory"
	"github.com/0xsoniclabs/infotheory/empirical"
)

// MutualInformation computes I(X;Y) = H(X) + H(Y) - H(X,Y) in bits over
// the empirical distributions of the co-occurring symbol sequences x
// and y. The result is symmetric in x and y and non-negative up to
// floating-point noise; it is zero exactly when the empirical joint
// distribution factorizes.
func MutualInformation[X, Y comparable](x []X, y []Y) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: mutual information over sequences of length %d and %d", infotheory.ErrLengthMismatch, len(x), len(y))
	}
	fx, err := empirical.EstimateDistribution(x)
	if err != nil {
		return 0, err
	}
	fy, err := empirical.EstimateDistribution(y)
	if err != nil {
		return 0, err
	}
	fxy, err := empirical.EstimateJointDistribution(x, y)
	if err != nil {
		return 0, err
	}
	return bits(fx) + bits(fy) - bits(fxy), nil
}

// ConditionalMutualInformation computes I(X;Y|Z) in bits using the
// entropy decomposition
//
//	I(X;Y|Z) = H(X,Z) + H(Y,Z) - H(Z) - H(X,Y,Z).
//
// z may itself be a combined sequence from [empirical.Combine], which
// conditions on several variables at once.
func ConditionalMutualInformation[X, Y, Z comparable](x []X, y []Y, z []Z) (float64, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return 0, fmt.Errorf("%w: conditional mutual information over sequences of length %d, %d and %d", infotheory.ErrLengthMismatch, len(x), len(y), len(z))
	}
	fxz, err := empirical.EstimateJointDistribution(x, z)
	if err != nil {
		return 0, err
	}
	fyz, err := empirical.EstimateJointDistribution(y, z)
	if err != nil {
		return 0, err
	}
	fz, err := empirical.EstimateDistribution(z)
	if err != nil {
		return 0, err
	}
	fxyz, err := empirical.EstimateJointDistribution3(x, y, z)
	if err != nil {
		return 0, err
	}
	return bits(fxz) + bits(fyz) - bits(fz) - bits(fxyz), nil
}

// ChainRule decomposes the mutual information between the variables in
// x and the target y into successive conditional contributions:
//
//	I(x0,...,xk-1; y) = I(x0;y) + I(x1;y|x0) + ... + I(xk-1;y|x0..xk-2)
//
// and returns the k terms in the order of x. The terms sum, up to
// floating-point error, to the mutual information between the combined
// variables and y.
func ChainRule[S, T comparable](x [][]S, y []T) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: chain rule requires at least one variable", infotheory.ErrInvalidInput)
	}
	for j := range x {
		if len(x[j]) != len(y) {
			return nil, fmt.Errorf("%w: variable %d has length %d, target has length %d", infotheory.ErrLengthMismatch, j, len(x[j]), len(y))
		}
	}
	terms := make([]float64, len(x))
	first, err := MutualInformation(x[0], y)
	if err != nil {
		return nil, err
	}
	terms[0] = first
	for i := 1; i < len(x); i++ {
		given, err := empirical.Combine(x[:i]...)
		if err != nil {
			return nil, err
		}
		term, err := ConditionalMutualInformation(x[i], y, given)
		if err != nil {
			return nil, err
		}
		terms[i] = term
	}
	return terms, nil
}
