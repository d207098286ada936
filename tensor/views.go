// Package tensor: batch views over the trailing dimensions.
//
// A rank-R tensor with R ≥ 2 is read as BatchCount() independent
// rows×cols matrices, where (rows, cols) are the trailing two dimensions
// and the batch index enumerates the leading dimensions in row-major
// order. VectorAt applies the same convention one dimension lower.
package tensor

import (
	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
)

// MatrixDims returns the trailing two dimensions (rows, cols).
// Errors with ErrRankTooLow when rank < 2.
// Complexity: O(1).
func (t *Dense[T]) MatrixDims() (int, int, error) {
	if t == nil {
		return 0, 0, ErrNilTensor
	}
	if len(t.shape) < 2 {
		return 0, 0, ErrRankTooLow
	}

	return t.shape[len(t.shape)-2], t.shape[len(t.shape)-1], nil
}

// BatchShape returns a copy of the leading dimensions (all but the
// trailing two). Empty for an unbatched rank-2 tensor.
// Errors with ErrRankTooLow when rank < 2.
// Complexity: O(rank).
func (t *Dense[T]) BatchShape() ([]int, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if len(t.shape) < 2 {
		return nil, ErrRankTooLow
	}

	lead := t.shape[:len(t.shape)-2]
	out := make([]int, len(lead))
	copy(out, lead)
	return out, nil
}

// BatchCount returns the number of matrix slices: the product of the
// leading dimensions, 1 for an unbatched rank-2 tensor.
// Errors with ErrRankTooLow when rank < 2.
// Complexity: O(rank).
func (t *Dense[T]) BatchCount() (int, error) {
	if t == nil {
		return 0, ErrNilTensor
	}
	if len(t.shape) < 2 {
		return 0, ErrRankTooLow
	}

	n := 1
	for _, d := range t.shape[:len(t.shape)-2] {
		n *= d
	}
	return n, nil
}

// MatrixAt copies batch slice b out as a rows×cols matrix.
// Stage 1 (Validate): rank ≥ 2 and b within [0, BatchCount).
// Stage 2 (Execute): copy the contiguous slice region.
// Complexity: O(rows*cols) time and memory.
func (t *Dense[T]) MatrixAt(b int) (*matrix.Dense[T], error) {
	count, err := t.BatchCount()
	if err != nil {
		return nil, err
	}
	if b < 0 || b >= count {
		return nil, ErrBatchOutOfRange
	}

	rows := t.shape[len(t.shape)-2]
	cols := t.shape[len(t.shape)-1]
	stride := rows * cols

	// Each batch slice is a contiguous row-major block.
	return matrix.NewDenseFromSlice(rows, cols, t.data[b*stride:(b+1)*stride])
}

// SetMatrixAt writes matrix m into batch slice b.
// Stage 1 (Validate): rank ≥ 2, b in range, m non-nil with matching shape.
// Stage 2 (Execute): copy m's data over the slice region.
// Complexity: O(rows*cols).
func (t *Dense[T]) SetMatrixAt(b int, m *matrix.Dense[T]) error {
	count, err := t.BatchCount()
	if err != nil {
		return err
	}
	if b < 0 || b >= count {
		return ErrBatchOutOfRange
	}
	if m == nil {
		return ErrNilMatrix
	}

	rows := t.shape[len(t.shape)-2]
	cols := t.shape[len(t.shape)-1]
	if m.Rows() != rows || m.Cols() != cols {
		return ErrShapeMismatch
	}

	copy(t.data[b*rows*cols:], m.Data())
	return nil
}

// VectorAt copies the trailing-dimension vector at batch index b, where
// the batch enumerates all leading dimensions but the last.
// Errors with ErrRankTooLow when rank < 1.
// Complexity: O(lastDim) time and memory.
func (t *Dense[T]) VectorAt(b int) ([]T, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if len(t.shape) < 1 {
		return nil, ErrRankTooLow
	}

	last := t.shape[len(t.shape)-1]
	count := len(t.data) / last
	if b < 0 || b >= count {
		return nil, ErrBatchOutOfRange
	}

	out := make([]T, last)
	copy(out, t.data[b*last:(b+1)*last])
	return out, nil
}

// SetVectorAt writes vals into the trailing-dimension vector at batch
// index b.
// Complexity: O(lastDim).
func (t *Dense[T]) SetVectorAt(b int, vals []T) error {
	if t == nil {
		return ErrNilTensor
	}
	if len(t.shape) < 1 {
		return ErrRankTooLow
	}

	last := t.shape[len(t.shape)-1]
	count := len(t.data) / last
	if b < 0 || b >= count {
		return ErrBatchOutOfRange
	}
	if len(vals) != last {
		return ErrShapeMismatch
	}

	copy(t.data[b*last:], vals)
	return nil
}

// FromMatrix wraps a rows×cols matrix as an unbatched rank-2 tensor.
// Complexity: O(rows*cols) time and memory.
func FromMatrix[T numeric.Scalar](m *matrix.Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return FromSlice(m.Data(), m.Rows(), m.Cols())
}
