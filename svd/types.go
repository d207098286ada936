// Package svd defines options, results, and sentinel errors
// for the svd subpackage of github.com/katalvlaran/lvlsvd.
package svd

import (
	"errors"

	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
	"github.com/katalvlaran/lvlsvd/tensor"
)

// Sentinel errors for svd operations.
var (
	// ErrNilInput indicates a nil tensor or matrix argument.
	ErrNilInput = errors.New("svd: nil input")
	// ErrInvalidShape indicates an input whose rank does not fit the entry
	// point: SVD requires rank exactly 2, BatchSVD rank at least 2.
	ErrInvalidShape = errors.New("svd: invalid input shape")
	// ErrInvalidOptions indicates a negative MaxIterations or Workers value.
	ErrInvalidOptions = errors.New("svd: invalid options")
	// ErrNotConverged indicates the bidiagonal QR iteration exhausted its
	// budget before every off-diagonal entry became negligible. The result
	// is discarded; no partial decomposition is returned.
	ErrNotConverged = errors.New("svd: bidiagonal QR iteration did not converge")
)

// DefaultMaxIterations is the per-singular-value QR step budget used when
// SVDOptions.MaxIterations is zero. Classic implementations of the
// Golub–Kahan iteration bound each value by 30 steps; typical inputs
// converge in 2–3.
const DefaultMaxIterations = 30

// SVDOptions configures the decomposition.
type SVDOptions struct {
	// ComputeUV selects whether singular vectors are accumulated. When
	// false, only singular values are computed and U/V stay nil.
	ComputeUV bool
	// FullMatrices selects the U/V convention: true yields square U
	// (rows×rows) and V (cols×cols) including null-space basis vectors;
	// false yields the economy shapes rows×k and cols×k, k=min(rows,cols).
	FullMatrices bool
	// MaxIterations caps the implicit-shift QR steps spent on each
	// singular value. 0 means DefaultMaxIterations; negative is invalid.
	MaxIterations int
	// Workers bounds the goroutines BatchSVD fans out across batch
	// slices. 0 means one per available CPU; negative is invalid.
	// Single-matrix entry points ignore it.
	Workers int
}

// DefaultSVDOptions returns the default configuration: singular vectors
// on, economy shapes, DefaultMaxIterations, one worker per CPU.
func DefaultSVDOptions() SVDOptions {
	return SVDOptions{
		ComputeUV:     true,
		FullMatrices:  false,
		MaxIterations: 0,
		Workers:       0,
	}
}

// validate checks the option invariants shared by every entry point.
func (o SVDOptions) validate() error {
	if o.MaxIterations < 0 {
		return ErrInvalidOptions
	}
	if o.Workers < 0 {
		return ErrInvalidOptions
	}
	return nil
}

// maxIterations resolves the per-value budget, applying the default.
func (o SVDOptions) maxIterations() int {
	if o.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

// SVDResult holds the decomposition of one matrix: A = U · diag(Values) · Vᴴ.
type SVDResult[T numeric.Scalar] struct {
	// Values are the singular values, non-negative and descending,
	// len = min(rows, cols). They are real for every element kind and
	// therefore always float64.
	Values []float64
	// U holds left singular vectors in its columns: rows×rows under
	// FullMatrices, rows×min(rows,cols) otherwise. Nil unless ComputeUV.
	U *matrix.Dense[T]
	// V holds right singular vectors in its columns: cols×cols under
	// FullMatrices, cols×min(rows,cols) otherwise. Nil unless ComputeUV.
	V *matrix.Dense[T]
}

// SVDBatchResult holds per-slice decompositions of a batched tensor.
type SVDBatchResult[T numeric.Scalar] struct {
	// Values has shape batchShape + [min(rows, cols)].
	Values *tensor.Dense[float64]
	// U has shape batchShape + [rows, k]; nil unless ComputeUV.
	U *tensor.Dense[T]
	// V has shape batchShape + [cols, k]; nil unless ComputeUV.
	V *tensor.Dense[T]
}
