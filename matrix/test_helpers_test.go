// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
)

// fixedSeed keeps every randomized fixture reproducible across runs.
const fixedSeed int64 = 1

// MustDense ALLOCATES an r×c *Dense[T] or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewDense[T](r,c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Complexity: O(r*c) zeroing by runtime, Space O(r*c).
func MustDense[T numeric.Scalar](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromSlice builds an r×c *Dense[T] from row-major data, fatal on error.
func MustFromSlice[T numeric.Scalar](t testing.TB, r, c int, data []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromSlice(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads m[i][j], fatal on bounds error.
func MustAt[T numeric.Scalar](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill fills m with deterministic uniform values in [-1, 1).
// Complex kinds draw the real and imaginary parts independently.
// Implementation:
//   - Stage 1: Seed a local rand.Rand (never the global source).
//   - Stage 2: Overwrite the backing slice element by element.
//
// Complexity: O(r*c).
func RandomFill[T numeric.Scalar](m *matrix.Dense[T], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	uniform := func() float64 { return 2*rng.Float64() - 1 }
	for idx := range data {
		if numeric.IsComplex[T]() {
			data[idx] = numeric.FromComplex[T](complex(uniform(), uniform()))
		} else {
			data[idx] = numeric.FromReal[T](uniform())
		}
	}
}

// AssertSameValues compares two matrices elementwise within tol on the
// modulus of the difference, reporting the first offending entry.
func AssertSameValues[T numeric.Scalar](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			wv := MustAt(t, want, i, j)
			gv := MustAt(t, got, i, j)
			if numeric.Abs(wv-gv) > tol {
				t.Fatalf("element (%d,%d): want %v, got %v (tol %g)", i, j, wv, gv, tol)
			}
		}
	}
}
