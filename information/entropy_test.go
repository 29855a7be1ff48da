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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/0xsoniclabs/infotheory"
	"github.com/0xsoniclabs/infotheory/pmf"
	"gonum.org/v1/gonum/stat"
)

// TestEntropy_OnePointDistribution checks that a certain outcome has
// exactly zero entropy.
func TestEntropy_OnePointDistribution(t *testing.T) {
	h, err := PMFEntropy([]float64{1.0})
	if err != nil {
		t.Fatalf("one-point pmf: want entropy, got error %v", err)
	}
	if h != 0.0 {
		t.Fatalf("one-point pmf: want exactly 0, got %v", h)
	}
}

// TestEntropy_RepeatedSymbol checks that a constant sequence has zero
// entropy.
func TestEntropy_RepeatedSymbol(t *testing.T) {
	h, err := EntropyOf([]string{"a", "a", "a", "a"})
	if err != nil {
		t.Fatalf("constant data: want entropy, got error %v", err)
	}
	if h != 0.0 {
		t.Fatalf("constant data: want exactly 0, got %v", h)
	}
}

// TestEntropy_FairCoin checks that two equally likely symbols carry one
// bit.
func TestEntropy_FairCoin(t *testing.T) {
	h, err := EntropyOf([]int{0, 1})
	if err != nil {
		t.Fatalf("fair coin data: want entropy, got error %v", err)
	}
	if math.Abs(h-1.0) > 1e-12 {
		t.Fatalf("fair coin data: want 1 bit, got %v", h)
	}
}

// TestEntropy_UniformIsMaximal checks that the uniform distribution
// over k points attains log2(k) and that any perturbation stays below.
func TestEntropy_UniformIsMaximal(t *testing.T) {
	for _, k := range []int{2, 4, 8, 16} {
		uniform, err := pmf.Uniform(k)
		if err != nil {
			t.Fatalf("uniform pmf: %v", err)
		}
		h, err := PMFEntropy(uniform)
		if err != nil {
			t.Fatalf("uniform pmf over %d points: %v", k, err)
		}
		if math.Abs(h-math.Log2(float64(k))) > 1e-12 {
			t.Fatalf("uniform pmf over %d points: want %v bits, got %v", k, math.Log2(float64(k)), h)
		}

		// shift mass between the first two points
		perturbed := make([]float64, k)
		copy(perturbed, uniform)
		delta := 0.5 / float64(k)
		perturbed[0] += delta
		perturbed[1] -= delta
		hp, err := PMFEntropy(perturbed)
		if err != nil {
			t.Fatalf("perturbed pmf over %d points: %v", k, err)
		}
		if hp < 0 || hp >= h {
			t.Fatalf("perturbed pmf over %d points: want entropy in [0, %v), got %v", k, h, hp)
		}
	}
}

// TestEntropy_ZeroEntriesIgnored checks the 0*log2(0) convention.
func TestEntropy_ZeroEntriesIgnored(t *testing.T) {
	h, err := PMFEntropy([]float64{0.5, 0.5, 0.0, 0.0})
	if err != nil {
		t.Fatalf("pmf with zeros: want entropy, got error %v", err)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		t.Fatalf("pmf with zeros: want finite entropy, got %v", h)
	}
	if math.Abs(h-1.0) > 1e-12 {
		t.Fatalf("pmf with zeros: want 1 bit, got %v", h)
	}
}

// TestEntropy_ArgumentExclusivity checks that exactly one of pmf and
// data must be supplied.
func TestEntropy_ArgumentExclusivity(t *testing.T) {
	_, err := Entropy([]float64{0.5, 0.5}, []int{0, 1}, DefaultTolerance)
	if !errors.Is(err, infotheory.ErrInvalidInput) {
		t.Fatalf("both arguments: want ErrInvalidInput, got %v", err)
	}
	_, err = Entropy[int](nil, nil, DefaultTolerance)
	if !errors.Is(err, infotheory.ErrInvalidInput) {
		t.Fatalf("neither argument: want ErrInvalidInput, got %v", err)
	}
}

// TestEntropy_InvalidDistribution checks rejection of malformed pmfs.
func TestEntropy_InvalidDistribution(t *testing.T) {
	_, err := PMFEntropy([]float64{0.5, 0.3}) // sums to 0.8
	if !errors.Is(err, infotheory.ErrInvalidDistribution) {
		t.Fatalf("sum 0.8: want ErrInvalidDistribution, got %v", err)
	}
	_, err = PMFEntropy([]float64{1.5, -0.5})
	if !errors.Is(err, infotheory.ErrInvalidDistribution) {
		t.Fatalf("negative entry: want ErrInvalidDistribution, got %v", err)
	}
	_, err = PMFEntropy([]float64{math.NaN(), 1.0})
	if !errors.Is(err, infotheory.ErrInvalidDistribution) {
		t.Fatalf("NaN entry: want ErrInvalidDistribution, got %v", err)
	}
}

// TestEntropy_ToleranceConfigurable checks that the sum tolerance is a
// caller decision.
func TestEntropy_ToleranceConfigurable(t *testing.T) {
	f := []float64{0.5, 0.49}
	if _, err := Entropy[int](f, nil, 1e-5); !errors.Is(err, infotheory.ErrInvalidDistribution) {
		t.Fatalf("tight tolerance: want ErrInvalidDistribution, got %v", err)
	}
	if _, err := Entropy[int](f, nil, 0.05); err != nil {
		t.Fatalf("loose tolerance: want nil, got %v", err)
	}
}

// TestEntropy_EmptyData checks that an empty sequence has no defined
// empirical distribution.
func TestEntropy_EmptyData(t *testing.T) {
	_, err := EntropyOf([]int{})
	if !errors.Is(err, infotheory.ErrInvalidInput) {
		t.Fatalf("empty data: want ErrInvalidInput, got %v", err)
	}
}

// TestEntropy_GonumCrossCheck compares against gonum's entropy in nats
// on random distributions.
func TestEntropy_GonumCrossCheck(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		k := 2 + rg.Intn(20)
		f := make([]float64, k)
		total := 0.0
		for i := range f {
			f[i] = rg.Float64()
			total += f[i]
		}
		for i := range f {
			f[i] /= total
		}
		h, err := PMFEntropy(f)
		if err != nil {
			t.Fatalf("random pmf: %v", err)
		}
		nats := stat.Entropy(f)
		if math.Abs(h*math.Ln2-nats) > 1e-9 {
			t.Fatalf("random pmf: %v bits = %v nats, gonum says %v nats", h, h*math.Ln2, nats)
		}
	}
}
