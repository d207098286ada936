// SPDX-License-Identifier: MIT
// Package matrix: canonical validators shared by every kernel.
// Validators return plain sentinels; kernels wrap them with operation
// context via matrixErrorf at the facade.

package matrix

import "github.com/katalvlaran/lvlsvd/numeric"

// ValidateNotNil returns ErrNilMatrix when m is nil.
// Complexity: O(1).
func ValidateNotNil[T numeric.Scalar](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape returns ErrNilMatrix for nil operands and
// ErrDimensionMismatch when a and b differ in rows or columns.
// Complexity: O(1).
func ValidateSameShape[T numeric.Scalar](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateMulCompatible returns ErrNilMatrix for nil operands and
// ErrDimensionMismatch unless a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible[T numeric.Scalar](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}
	return nil
}
