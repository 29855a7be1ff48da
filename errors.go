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

package infotheory

import "errors"

// Error taxonomy shared by all packages of the library. Errors are
// reported at the point of detection and wrapped with fmt.Errorf so
// that callers can dispatch with errors.Is while still seeing the
// offending values in the message.
var (
	// ErrInvalidInput indicates a malformed call: an empty symbol
	// sequence, no sequences at all, or both/neither of the mutually
	// exclusive entropy arguments.
	ErrInvalidInput = errors.New("infotheory: invalid input")

	// ErrInvalidDistribution indicates a probability distribution with
	// negative, NaN, or greater-than-one entries, or whose sum deviates
	// from one beyond the given tolerance.
	ErrInvalidDistribution = errors.New("infotheory: invalid probability distribution")

	// ErrLengthMismatch indicates that sequences which must be paired
	// element-wise have different lengths.
	ErrLengthMismatch = errors.New("infotheory: sequence length mismatch")
)
