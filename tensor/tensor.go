// Package tensor: Dense container construction and element access.
package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvlsvd/numeric"
)

// Dense is a dense row-major tensor of T values.
// shape lists the dimensions (possibly none: a rank-0 scalar holder);
// data holds the product of all dimensions in row-major order, with the
// last dimension varying fastest.
type Dense[T numeric.Scalar] struct {
	shape []int // dimensions, all > 0
	data  []T   // flat backing storage, length == product(shape)
}

// elementCount returns the product of dims, or an error on a non-positive dim.
// An empty dims list yields 1 (the rank-0 case).
func elementCount(dims []int) (int, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}
	return n, nil
}

// New creates a zeroed tensor of the given shape.
// New with no dimensions creates a rank-0 tensor holding one element.
// Stage 1 (Validate): every dimension > 0.
// Stage 2 (Prepare): allocate flat storage.
// Complexity: O(len(data)) time and memory.
func New[T numeric.Scalar](shape ...int) (*Dense[T], error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}

	owned := make([]int, len(shape))
	copy(owned, shape)

	return &Dense[T]{shape: owned, data: make([]T, n)}, nil
}

// FromSlice creates a tensor of the given shape from row-major data.
// The data slice is copied; the caller keeps ownership of the original.
// Stage 1 (Validate): dims > 0 and len(data) == product(shape).
// Stage 2 (Prepare): copy data into owned storage.
// Complexity: O(len(data)) time and memory.
func FromSlice[T numeric.Scalar](data []T, shape ...int) (*Dense[T], error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, ErrDataLength
	}

	ownedShape := make([]int, len(shape))
	copy(ownedShape, shape)
	ownedData := make([]T, n)
	copy(ownedData, data)

	return &Dense[T]{shape: ownedShape, data: ownedData}, nil
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (t *Dense[T]) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the dimension list.
// Complexity: O(rank).
func (t *Dense[T]) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)
	return out
}

// Len returns the total number of stored elements.
// Complexity: O(1).
func (t *Dense[T]) Len() int {
	return len(t.data)
}

// Data exposes the flat row-major backing slice. The slice is shared
// with the tensor; writes through it are visible to every reader.
// Complexity: O(1).
func (t *Dense[T]) Data() []T {
	return t.data
}

// flatIndex converts a multi-index into a flat offset.
// Stage 1 (Validate): index length equals rank, each component in bounds.
// Stage 2 (Execute): fold row-major strides.
// Complexity: O(rank).
func (t *Dense[T]) flatIndex(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("flatIndex(%v): %w", idx, ErrRankMismatch)
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			return 0, fmt.Errorf("flatIndex(%v): axis %d: %w", idx, d, ErrOutOfRange)
		}
		flat = flat*t.shape[d] + i
	}
	return flat, nil
}

// At retrieves the element at the multi-index.
// A rank-0 tensor is read with no indices.
// Complexity: O(rank).
func (t *Dense[T]) At(idx ...int) (T, error) {
	if t == nil {
		var zero T
		return zero, ErrNilTensor
	}
	flat, err := t.flatIndex(idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.data[flat], nil
}

// Set assigns v at the multi-index.
// Complexity: O(rank).
func (t *Dense[T]) Set(v T, idx ...int) error {
	if t == nil {
		return ErrNilTensor
	}
	flat, err := t.flatIndex(idx)
	if err != nil {
		return err
	}
	t.data[flat] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(len(data)) time and memory.
func (t *Dense[T]) Clone() *Dense[T] {
	shapeCopy := make([]int, len(t.shape))
	copy(shapeCopy, t.shape)
	dataCopy := make([]T, len(t.data))
	copy(dataCopy, t.data)

	return &Dense[T]{shape: shapeCopy, data: dataCopy}
}
