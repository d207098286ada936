// Package svd: public decomposition entry points.
//
// Purpose:
//   - Expose the singular value decomposition A = U · diag(Σ) · Vᴴ over the
//     module's dense types: SVD for rank-2 tensors, MatrixSVD for matrices,
//     BatchSVD (batch.go) for stacked inputs.
//   - Route every shape through one internal pipeline: reduce to real
//     bidiagonal form (bidiagonalize.go), iterate to convergence
//     (iterate.go), then slice the bases to the requested convention.
//
// Notes:
//   - Wide inputs are decomposed through their conjugate transpose, so the
//     pipeline only ever sees rows ≥ cols; U and V swap on the way out.
//   - Singular values are real for all four element kinds and are always
//     returned as float64, non-negative and descending.

package svd

import (
	"fmt"

	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
	"github.com/katalvlaran/lvlsvd/tensor"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSVD       = "SVD"
	opMatrixSVD = "MatrixSVD"
	opBatchSVD  = "BatchSVD"
)

// svdErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SVD decomposes an unbatched rank-2 tensor: t = U · diag(Values) · Vᴴ.
//
// Implementation:
//   - Stage 1: Validate options, the tensor, and its rank (exactly 2).
//   - Stage 2: Copy the tensor out as a matrix and run the shared pipeline.
//
// Inputs:
//   - t: rank-2 tensor, any of the four element kinds; never mutated.
//   - opts: see SVDOptions; DefaultSVDOptions() for the common case.
//
// Returns:
//   - *SVDResult[T]: Values always; U, V per ComputeUV and FullMatrices.
//
// Errors:
//   - ErrInvalidOptions, ErrNilInput, ErrInvalidShape (rank ≠ 2),
//     ErrNotConverged.
//
// Determinism:
//   - Identical input bits and options yield identical output bits.
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)) for values alone, plus the
//     accumulator work when ComputeUV; Space O(rows·cols).
//
// AI-Hints:
//   - Batched input? Use BatchSVD; this entry point rejects rank > 2 so a
//     forgotten batch dimension fails loudly instead of silently slicing.
//   - Only singular values needed? Set ComputeUV=false; it skips all U/V
//     accumulation work, not just the final copies.
func SVD[T numeric.Scalar](t *tensor.Dense[T], opts SVDOptions) (*SVDResult[T], error) {
	// Validate options via the shared invariants
	if err := opts.validate(); err != nil {
		return nil, svdErrorf(opSVD, err)
	}
	// Validate input presence and rank
	if t == nil {
		return nil, svdErrorf(opSVD, ErrNilInput)
	}
	if t.Rank() != 2 {
		return nil, svdErrorf(opSVD, ErrInvalidShape)
	}

	// Copy the single slice out; the input stays untouched.
	m, err := t.MatrixAt(0)
	if err != nil {
		return nil, svdErrorf(opSVD, err)
	}

	res, err := decompose(m, opts)
	if err != nil {
		return nil, svdErrorf(opSVD, err)
	}

	return res, nil
}

// MatrixSVD decomposes a dense matrix: m = U · diag(Values) · Vᴴ.
// Same contract as SVD with the rank check replaced by a nil check; see
// SVD for the full option and error semantics.
func MatrixSVD[T numeric.Scalar](m *matrix.Dense[T], opts SVDOptions) (*SVDResult[T], error) {
	if err := opts.validate(); err != nil {
		return nil, svdErrorf(opMatrixSVD, err)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, svdErrorf(opMatrixSVD, ErrNilInput)
	}

	res, err := decompose(m, opts)
	if err != nil {
		return nil, svdErrorf(opMatrixSVD, err)
	}

	return res, nil
}

// decompose runs the full pipeline on one matrix. Options are assumed
// valid; m is never mutated.
//
// Stage 1 (Orient): wide matrices go through Aᴴ so the reduction always
// sees rows ≥ cols; the flip swaps U and V at the end.
// Stage 2 (Reduce + iterate): bidiagonalize, then bidiagonalQR.
// Stage 3 (Assemble): slice the accumulators to economy shapes unless
// FullMatrices, then undo the orientation flip.
func decompose[T numeric.Scalar](m *matrix.Dense[T], opts SVDOptions) (*SVDResult[T], error) {
	rows, cols := m.Rows(), m.Cols()
	flip := rows < cols

	// Working copy, conjugate-transposed when wide.
	var (
		work *matrix.Dense[T]
		err  error
	)
	if flip {
		if work, err = matrix.ConjTranspose(m); err != nil {
			return nil, err
		}
	} else {
		work = m.Clone()
	}

	d, e, u, v, err := bidiagonalize(work, opts.ComputeUV)
	if err != nil {
		return nil, err
	}
	if err = bidiagonalQR(d, e, u, v, opts.maxIterations()); err != nil {
		return nil, err
	}

	res := &SVDResult[T]{Values: d}
	if !opts.ComputeUV {
		return res, nil
	}

	// Economy shapes keep the first k = min(rows, cols) basis columns.
	if !opts.FullMatrices {
		k := len(d)
		if u, err = leadingColumns(u, k); err != nil {
			return nil, err
		}
		if v, err = leadingColumns(v, k); err != nil {
			return nil, err
		}
	}
	if flip {
		u, v = v, u
	}
	res.U, res.V = u, v

	return res, nil
}

// leadingColumns returns the first k columns of m, or m itself when k
// already equals its width.
// Complexity: O(rows·k) time and memory.
func leadingColumns[T numeric.Scalar](m *matrix.Dense[T], k int) (*matrix.Dense[T], error) {
	rows, cols := m.Rows(), m.Cols()
	if k == cols {
		return m, nil
	}

	res, err := matrix.NewDense[T](rows, k)
	if err != nil {
		return nil, err
	}

	src, dst := m.Data(), res.Data()
	var i int
	for i = 0; i < rows; i++ {
		copy(dst[i*k:(i+1)*k], src[i*cols:i*cols+k])
	}

	return res, nil
}
