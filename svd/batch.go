// SPDX-License-Identifier: MIT
// Package svd: batched decomposition across the leading tensor dimensions.

package svd

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsvd/numeric"
	"github.com/katalvlaran/lvlsvd/tensor"
)

// BatchSVD decomposes every rows×cols slice of a rank ≥ 2 tensor, treating
// the leading dimensions as a batch in row-major order.
//
// Implementation:
//   - Stage 1: Validate options, the tensor, and its rank (at least 2).
//   - Stage 2: Allocate the output tensors up front: Values with shape
//     batch+[k], U with batch+[rows, kU], V with batch+[cols, kV], where
//     k = min(rows, cols) and kU, kV follow FullMatrices.
//   - Stage 3: Fan the slices out over an errgroup bounded by Workers.
//     Every slice is copied out, decomposed independently, and written
//     into its own disjoint output region, so no locks are needed.
//
// Inputs:
//   - t: tensor with rank ≥ 2; a rank-2 input is a batch of one. Never
//     mutated.
//   - opts: see SVDOptions; Workers bounds the fan-out.
//
// Returns:
//   - *SVDBatchResult[T]: per-slice values and bases, at the batch index
//     of the slice they decompose.
//
// Errors:
//   - ErrInvalidOptions, ErrNilInput, ErrInvalidShape (rank < 2),
//     ErrNotConverged. Any slice failing discards the whole result.
//
// Determinism:
//   - Slice b's output depends only on slice b's input bits and the
//     options, so results are identical for any Workers value.
//
// Complexity:
//   - Time O(batch·rows·cols·min(rows,cols)) work divided across Workers;
//     Space O(batch·(rows·kU + cols·kV)) for the outputs.
//
// AI-Hints:
//   - Workers=1 forces sequential execution, useful when the caller
//     already parallelizes at a coarser level.
//   - The per-slice budget still applies individually: one pathological
//     slice fails the batch rather than stalling it.
func BatchSVD[T numeric.Scalar](t *tensor.Dense[T], opts SVDOptions) (*SVDBatchResult[T], error) {
	// Validate options via the shared invariants
	if err := opts.validate(); err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}
	// Validate input presence and rank
	if t == nil {
		return nil, svdErrorf(opBatchSVD, ErrNilInput)
	}
	if t.Rank() < 2 {
		return nil, svdErrorf(opBatchSVD, ErrInvalidShape)
	}

	// Stage 2: shared geometry and pre-allocated outputs.
	rows, cols, err := t.MatrixDims()
	if err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}
	batch, err := t.BatchShape()
	if err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}
	count, err := t.BatchCount()
	if err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}

	k := rows
	if cols < k {
		k = cols
	}
	kU, kV := k, k
	if opts.FullMatrices {
		kU, kV = rows, cols
	}

	values, err := tensor.New[float64](append(batch, k)...)
	if err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}
	var uT, vT *tensor.Dense[T]
	if opts.ComputeUV {
		if uT, err = tensor.New[T](append(batch, rows, kU)...); err != nil {
			return nil, svdErrorf(opBatchSVD, err)
		}
		if vT, err = tensor.New[T](append(batch, cols, kV)...); err != nil {
			return nil, svdErrorf(opBatchSVD, err)
		}
	}

	// Stage 3: bounded fan-out, one goroutine per slice.
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)

	// b is per-iteration scoped, so each closure sees its own index.
	for b := 0; b < count; b++ {
		b := b
		g.Go(func() error {
			m, sliceErr := t.MatrixAt(b)
			if sliceErr != nil {
				return sliceErr
			}
			res, sliceErr := decompose(m, opts)
			if sliceErr != nil {
				return sliceErr
			}

			// Writes land in slice b's region only.
			if sliceErr = values.SetVectorAt(b, res.Values); sliceErr != nil {
				return sliceErr
			}
			if opts.ComputeUV {
				if sliceErr = uT.SetMatrixAt(b, res.U); sliceErr != nil {
					return sliceErr
				}
				if sliceErr = vT.SetMatrixAt(b, res.V); sliceErr != nil {
					return sliceErr
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, svdErrorf(opBatchSVD, err)
	}

	return &SVDBatchResult[T]{Values: values, U: uT, V: vT}, nil
}
