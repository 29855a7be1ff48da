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

// Package infotheory provides information-theoretic measures for
// discrete random variables observed as finite symbol sequences.
//
// The library is organized bottom-up:
//
//   - [github.com/0xsoniclabs/infotheory/pmf] validates and samples
//     probability mass functions,
//   - [github.com/0xsoniclabs/infotheory/empirical] estimates marginal
//     and joint distributions from symbol sequences and combines
//     parallel sequences into joint symbols,
//   - [github.com/0xsoniclabs/infotheory/information] computes Shannon
//     entropy, mutual information, conditional mutual information, and
//     the chain-rule decomposition of mutual information,
//   - [github.com/0xsoniclabs/infotheory/markov] estimates first-order
//     Markov chains from symbol sequences and computes their stationary
//     distribution and entropy rate.
//
// All computations are pure functions over their arguments: nothing is
// cached, persisted, or logged, and every function is safe to call
// concurrently. The root package only defines the error taxonomy shared
// by the subpackages.
package infotheory
