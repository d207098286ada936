// Package tensor defines the Dense container and its sentinel errors.
package tensor

import "errors"

// Sentinel errors for tensor operations.
var (
	// ErrBadShape indicates a non-positive dimension in a requested shape.
	ErrBadShape = errors.New("tensor: dimensions must be > 0")
	// ErrDataLength indicates that a backing slice does not hold the shape's element count.
	ErrDataLength = errors.New("tensor: data length does not match shape")
	// ErrOutOfRange indicates a multi-index outside the tensor bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")
	// ErrRankMismatch indicates a multi-index whose length differs from the tensor rank.
	ErrRankMismatch = errors.New("tensor: index length does not match rank")
	// ErrRankTooLow indicates a view that needs more trailing dimensions than the tensor has.
	ErrRankTooLow = errors.New("tensor: rank too low for requested view")
	// ErrBatchOutOfRange indicates a batch index outside [0, BatchCount).
	ErrBatchOutOfRange = errors.New("tensor: batch index out of range")
	// ErrShapeMismatch indicates a write whose operand shape differs from the slice shape.
	ErrShapeMismatch = errors.New("tensor: operand shape does not match slice shape")
	// ErrNilTensor indicates a nil *Dense receiver or argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
	// ErrNilMatrix indicates a nil matrix operand passed to a batch write.
	ErrNilMatrix = errors.New("tensor: nil matrix operand")
)
