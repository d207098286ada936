// SPDX-License-Identifier: MIT
// Package svd: Householder reduction of a dense matrix to real bidiagonal form.
//
// Purpose:
//   - Declare the reflector kernels shared by the reduction and the
//     accumulation of singular-vector bases.
//   - Reduce A (rows ≥ cols) to B = Uᴴ·A·V with B real bidiagonal, so the
//     iteration in iterate.go can run in float64 for every element kind.
//
// Notes:
//   - Reflectors follow the LAPACK larfg convention with v₀ = 1 and a REAL
//     diagonal result β: for complex kinds the element's phase is folded
//     into τ and v, so d and e need no second phase-chasing pass.
//   - One generic code path serves all four kinds; conjugation is a no-op
//     for the real kinds and the compiler drops it.

package svd

import (
	"math"

	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
)

// householderVector builds an elementary reflector H = I − τ·v·vᴴ from x,
// in place, such that H·x = β·e₁ with β real.
//
// Implementation:
//   - Stage 1: Accumulate ‖x[1:]‖² in float64 and widen x[0] to complex128.
//   - Stage 2: β = −copysign(‖x‖, re x[0]); τ = ((β − re x[0]) + i·im x[0])/β.
//   - Stage 3: Scale x[1:] by 1/(x[0] − β) and set x[0] = 1, so x becomes v.
//
// Behavior highlights:
//   - When x[1:] is zero and x[0] has no imaginary part there is nothing to
//     annihilate: τ = 0 (H = I) and β = re x[0].
//   - A purely imaginary lone x[0] still yields τ ≠ 0; the reflector is the
//     phase rotation that makes the diagonal entry real.
//
// Inputs:
//   - x: column segment, len ≥ 1; overwritten with v (v[0] = 1).
//
// Returns:
//   - tau: reflector coefficient in T.
//   - beta: the real value H·x lands on, always finite for finite input.
//
// Complexity:
//   - Time O(len(x)), Space O(1).
func householderVector[T numeric.Scalar](x []T) (tau T, beta float64) {
	// Stage 1: tail norm and widened head.
	var sum, a float64
	for _, xv := range x[1:] {
		a = numeric.Abs(xv)
		sum += a * a // accumulate |x_i|²
	}
	alpha := numeric.ToComplex(x[0])
	re, im := real(alpha), imag(alpha)

	// Nothing to annihilate and nothing to re-phase: identity reflector.
	if sum == 0 && im == 0 {
		x[0] = numeric.FromReal[T](1)
		return tau, re
	}

	// Stage 2: real target value and reflector coefficient.
	beta = -math.Copysign(math.Sqrt(re*re+im*im+sum), re)
	tau = numeric.FromComplex[T](complex((beta-re)/beta, im/beta))

	// Stage 3: normalize the tail so v₀ = 1.
	scal := x[0] - numeric.FromReal[T](beta)
	var i int
	for i = 1; i < len(x); i++ {
		x[i] /= scal
	}
	x[0] = numeric.FromReal[T](1)

	return tau, beta
}

// applyReflectorRows overwrites A ← H·A on the block with rows
// rowOff..rowOff+len(v)-1 and columns colStart.., where H = I − τ·v·vᴴ.
// scratch must hold at least Cols−colStart elements.
//
// The update runs in two row-major passes: w = vᴴ·A, then A −= τ·v·w.
// Complexity: O(len(v)·(Cols−colStart)).
func applyReflectorRows[T numeric.Scalar](a *matrix.Dense[T], v []T, rowOff, colStart int, tau T, scratch []T) {
	var zero T
	cols := a.Cols()
	if tau == zero || colStart >= cols {
		return
	}
	data := a.Data()

	w := scratch[:cols-colStart]
	var i, j, off int
	for j = range w {
		w[j] = zero
	}

	// First pass: w = vᴴ · A[rowOff:, colStart:].
	var cv T
	for i = range v {
		cv = numeric.Conj(v[i])
		if cv == zero {
			continue // skip zero for performance
		}
		off = (rowOff + i) * cols
		row := data[off+colStart : off+cols]
		for j = range row {
			w[j] += cv * row[j]
		}
	}

	// Second pass: A -= τ · v · w.
	var tv T
	for i = range v {
		tv = tau * v[i]
		if tv == zero {
			continue
		}
		off = (rowOff + i) * cols
		row := data[off+colStart : off+cols]
		for j = range row {
			row[j] -= tv * w[j]
		}
	}
}

// applyReflectorColumns overwrites A ← A·(I − s·v·vᴴ) on the block with
// rows rowStart.. and columns colOff..colOff+len(v)-1.
//
// Each row i needs only the scalar w = A[i,·]·v, so the update stays
// row-major with no scratch. Passing s = conj(τ) applies Hᴴ from the
// right, which is how U and V accumulate their reflector products.
// Complexity: O((Rows−rowStart)·len(v)).
func applyReflectorColumns[T numeric.Scalar](a *matrix.Dense[T], v []T, rowStart, colOff int, s T) {
	var zero T
	if s == zero {
		return
	}
	data := a.Data()
	rows, cols := a.Rows(), a.Cols()

	var (
		i, j, off int
		w         T
	)
	for i = rowStart; i < rows; i++ {
		off = i * cols
		row := data[off+colOff : off+colOff+len(v)]
		w = zero
		for j = range row {
			w += row[j] * v[j]
		}
		w = s * w
		if w == zero {
			continue
		}
		for j = range row {
			row[j] -= w * numeric.Conj(v[j])
		}
	}
}

// bidiagonalize reduces a (rows ≥ cols, overwritten) to real bidiagonal
// form with alternating left and right Householder reflectors, following
// the Golub–Kahan scheme.
//
// Implementation:
//   - Stage 1: Allocate d, e and, when wantUV, seed u = I_rows, v = I_cols.
//   - Stage 2: For every column k, a left reflector annihilates a[k+1:, k]
//     and lands the real d[k]; for k < cols−1 a right reflector built from
//     the conjugated row segment a[k, k+1:] annihilates everything past the
//     superdiagonal and lands the real e[k].
//   - Stage 3: Reflectors are folded eagerly into the accumulators:
//     u ← u·Hᴴ and v ← v·G, so u·B·vᴴ equals the original a throughout.
//
// Inputs:
//   - a: working matrix, destroyed; the caller guarantees rows ≥ cols.
//   - wantUV: accumulate the orthonormal bases, or leave u, v nil.
//
// Returns:
//   - d: diagonal, len cols.
//   - e: superdiagonal, len cols; only the leading cols−1 entries carry
//     data, the last is always zero.
//   - u: rows×rows accumulator (nil unless wantUV).
//   - v: cols×cols accumulator (nil unless wantUV).
//
// Complexity:
//   - Time O(rows·cols²) without accumulation, O(rows²·cols) with it;
//     Space O(rows) scratch beyond the outputs.
func bidiagonalize[T numeric.Scalar](a *matrix.Dense[T], wantUV bool) (d, e []float64, u, v *matrix.Dense[T], err error) {
	rows, cols := a.Rows(), a.Cols()
	d = make([]float64, cols)
	e = make([]float64, cols)

	if wantUV {
		if u, err = matrix.Identity[T](rows); err != nil {
			return nil, nil, nil, nil, err
		}
		if v, err = matrix.Identity[T](cols); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	data := a.Data()
	var (
		k, i, j int     // loop iterators
		tau     T       // reflector coefficient
		beta    float64 // real diagonal value
		zero    T       // comparison zero
	)
	colBuf := make([]T, rows)  // left reflector vectors
	rowBuf := make([]T, cols)  // right reflector vectors
	scratch := make([]T, cols) // row-update workspace

	for k = 0; k < cols; k++ {
		// Left reflector: zero column k below the diagonal.
		hv := colBuf[:rows-k]
		for i = range hv {
			hv[i] = data[(k+i)*cols+k]
		}
		tau, beta = householderVector(hv)
		d[k] = beta
		if tau != zero {
			applyReflectorRows(a, hv, k, k+1, tau, scratch)
			if wantUV {
				applyReflectorColumns(u, hv, 0, k, numeric.Conj(tau))
			}
		}

		if k >= cols-1 {
			continue // no superdiagonal entry in the last column
		}

		// Right reflector: zero row k beyond the superdiagonal. The vector
		// is built from the conjugated row segment so that row·G = β·e₁ᵀ
		// holds with the same larfg kernel.
		gv := rowBuf[:cols-k-1]
		for j = range gv {
			gv[j] = numeric.Conj(data[k*cols+k+1+j])
		}
		tau, beta = householderVector(gv)
		e[k] = beta
		if tau != zero {
			s := numeric.Conj(tau)
			applyReflectorColumns(a, gv, k+1, k+1, s)
			if wantUV {
				applyReflectorColumns(v, gv, 0, k+1, s)
			}
		}
	}

	return d, e, u, v, nil
}
