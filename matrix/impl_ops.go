// SPDX-License-Identifier: MIT
// Package matrix: dense product, transpose, and norm kernels.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across lvlsvd.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and return plain sentinels or wrap
//     them via matrixErrorf at the facade.
//   - Conjugation is a no-op for the real kinds, so every kernel serves all
//     four numeric kinds with one code path.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsvd/numeric"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul              = "Mul"
	opMulConjTranspose = "MulConjTranspose"
	opConjTransposeMul = "ConjTransposeMul"
	opConjTranspose    = "ConjTranspose"
	opIdentity         = "Identity"
	opDiag             = "DiagFromValues"
	opFrobenius        = "FrobeniusNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; no temporary tiles; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j order; results independent of data values.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - If B is conceptually transposed, call MulConjTranspose instead of
//     materializing Bᴴ first; it reads both operands row-major.
func Mul[T numeric.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int // loop iterators
		av                                 T   // pivot value from A
		zero                               T   // comparison zero
		rowOffsetA, rowOffsetB, rowOffsetR int // flat row offsets
	)
	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == zero {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	// Return result
	return res, nil
}

// MulConjTranspose computes C = A × Bᴴ without materializing Bᴴ.
//
// Implementation:
//   - Stage 1: Validate A,B non-nil and A.Cols == B.Cols (Bᴴ has B.Cols rows).
//   - Stage 2: i→j→k loop; both operands are read row-major (row i of A
//     against row j of B), conjugating B's element on the fly.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: matrix with shape (c × n); its conjugate transpose is (n × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c), C[i][j] = Σₖ A[i][k]·conj(B[j][k]).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - This is the natural shape for reconstruction checks (U·Σ̃ then ×Vᴴ);
//     prefer it over ConjTranspose+Mul to halve the passes over B.
func MulConjTranspose[T numeric.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulConjTranspose, ErrNilMatrix)
	}
	if a.c != b.c {
		return nil, matrixErrorf(opMulConjTranspose, ErrDimensionMismatch)
	}

	// Allocate result Dense
	aRows, inner, bRows := a.r, a.c, b.r
	res, err := NewDense[T](aRows, bRows)
	if err != nil {
		return nil, matrixErrorf(opMulConjTranspose, err)
	}

	var (
		i, j, k                int // loop iterators
		sum, zero              T   // dot-product accumulator and its reset value
		rowOffsetA, rowOffsetB int // flat row offsets
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < bRows; j++ {
			rowOffsetB = j * inner
			sum = zero
			for k = 0; k < inner; k++ {
				sum += a.data[rowOffsetA+k] * numeric.Conj(b.data[rowOffsetB+k])
			}
			res.data[i*bRows+j] = sum
		}
	}

	return res, nil
}

// ConjTransposeMul computes C = Aᴴ × B without materializing Aᴴ.
//
// Implementation:
//   - Stage 1: Validate A,B non-nil and A.Rows == B.Rows.
//   - Stage 2: k→i→j loop accumulating rank-1 updates row-major; A's
//     element is conjugated on the fly.
//
// Inputs:
//   - a: matrix with shape (m × r); its conjugate transpose is (r × m).
//   - b: right matrix with shape (m × c).
//
// Returns:
//   - *Dense[T]: new C with shape (r × c), C[i][j] = Σₖ conj(A[k][i])·B[k][j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (row mismatch).
//
// Complexity:
//   - Time O(m*r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the natural shape for Gram products and unitarity checks
//     (Xᴴ·X): pass the same matrix twice.
func ConjTransposeMul[T numeric.Scalar](a, b *Dense[T]) (*Dense[T], error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opConjTransposeMul, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opConjTransposeMul, ErrDimensionMismatch)
	}

	// Allocate result Dense
	m, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense[T](aCols, bCols)
	if err != nil {
		return nil, matrixErrorf(opConjTransposeMul, err)
	}

	var (
		i, j, k                int // loop iterators
		av                     T   // conjugated pivot from A
		zero                   T   // comparison zero
		rowOffsetA, rowOffsetB int // flat row offsets
	)
	for k = 0; k < m; k++ {
		rowOffsetA = k * aCols
		rowOffsetB = k * bCols
		for i = 0; i < aCols; i++ {
			av = numeric.Conj(a.data[rowOffsetA+i])
			if av == zero {
				continue // skip zero for performance
			}
			for j = 0; j < bCols; j++ {
				res.data[i*bCols+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns a new matrix holding Aᴴ (elementwise conjugated
// transpose). For real kinds this is a plain transpose.
// Stage 1 (Validate): non-nil input.
// Stage 2 (Execute): flat-indexed copy with conjugation.
// Complexity: O(r*c) time and memory.
func ConjTranspose[T numeric.Scalar](m *Dense[T]) (*Dense[T], error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	res, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = numeric.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity[T numeric.Scalar](n int) (*Dense[T], error) {
	res, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	one := numeric.FromReal[T](1)
	var i int
	for i = 0; i < n; i++ {
		res.data[i*n+i] = one // set diagonal to 1
	}

	return res, nil
}

// DiagFromValues embeds vals on the main diagonal of a zero rows×cols
// matrix. len(vals) must equal min(rows, cols); the remaining rows or
// columns stay zero, which is exactly the Σ̃ padding a full-matrices
// reconstruction needs.
// Stage 1 (Validate): dimensions > 0 and len(vals) == min(rows, cols).
// Stage 2 (Execute): write the diagonal.
// Complexity: O(rows*cols) time and memory.
func DiagFromValues[T numeric.Scalar](vals []float64, rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opDiag, ErrInvalidDimensions)
	}
	// Validate diagonal length
	k := rows
	if cols < k {
		k = cols
	}
	if len(vals) != k {
		return nil, matrixErrorf(opDiag, ErrDimensionMismatch)
	}

	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}

	var i int
	for i = 0; i < k; i++ {
		res.data[i*cols+i] = numeric.FromReal[T](vals[i])
	}

	return res, nil
}

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ|a_ij|²), accumulated in float64
// for every kind.
// Complexity: O(r*c) time, O(1) memory.
func FrobeniusNorm[T numeric.Scalar](m *Dense[T]) (float64, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	sum := NormZero
	var a float64
	for _, v := range m.data {
		a = numeric.Abs(v)
		sum += a * a // accumulate square
	}

	return math.Sqrt(sum), nil
}
