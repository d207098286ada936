// SPDX-License-Identifier: MIT
// Package svd: implicit-shift QR iteration on a real bidiagonal matrix.
//
// Purpose:
//   - Drive d (diagonal) and e (superdiagonal) to diagonal form with Givens
//     rotations, accumulating the same rotations into the U and V bases.
//   - The sweep logic follows LAPACK's dbdsqr: deflation thresholds are
//     relative to a running estimate of the local singular value scale, the
//     bulge chase direction adapts to the grading of the block, a trailing
//     2×2 block is solved directly, and the shift degrades to the
//     Demmel–Kahan zero-shift form whenever an ordinary shift would erase
//     the small singular values of a graded block.
//
// Notes:
//   - d and e are float64 for every element kind, so the whole iteration is
//     scalar real arithmetic; only the U/V column rotations touch T.
//   - Rotation selection is branch-safe: givens never divides by zero, so a
//     fully deflated or zero block cannot produce NaN.

package svd

import (
	"math"

	"github.com/katalvlaran/lvlsvd/matrix"
	"github.com/katalvlaran/lvlsvd/numeric"
)

// Precision constants of the iteration, uniform across element kinds
// because d and e always carry float64 values.
const (
	// qrEps is the relative float64 precision the negligibility tests are
	// built from.
	qrEps = 0x1p-53
	// qrUnfl is the smallest positive normal float64; it floors the
	// deflation threshold for inputs that underflow wholesale.
	qrUnfl = 0x1p-1022
)

// givens returns a plane rotation (c, s, r) with c·f + s·g = r and
// −s·f + c·g = 0. The zero-argument branches keep the rotation exact and
// division-free; r inherits f's sign when g = 0, matching LAPACK's dlartg.
func givens(f, g float64) (c, s, r float64) {
	switch {
	case g == 0:
		return 1, 0, f
	case f == 0:
		return 0, 1, g
	default:
		r = math.Hypot(f, g)
		return f / r, g / r, r
	}
}

// rotateColumns applies the plane rotation to columns j1, j2 of m:
// col_j1 ← c·col_j1 + s·col_j2 and col_j2 ← c·col_j2 − s·col_j1.
// c and s are widened into T once, outside the row loop.
func rotateColumns[T numeric.Scalar](m *matrix.Dense[T], j1, j2 int, c, s float64) {
	cT := numeric.FromReal[T](c)
	sT := numeric.FromReal[T](s)
	data := m.Data()
	rows, cols := m.Rows(), m.Cols()

	var (
		i, off int
		t      T
	)
	for i = 0; i < rows; i++ {
		off = i * cols
		t = cT*data[off+j1] + sT*data[off+j2]
		data[off+j2] = cT*data[off+j2] - sT*data[off+j1]
		data[off+j1] = t
	}
}

// swapColumns exchanges columns j1 and j2 of m.
func swapColumns[T numeric.Scalar](m *matrix.Dense[T], j1, j2 int) {
	data := m.Data()
	rows, cols := m.Rows(), m.Cols()

	var i, off int
	for i = 0; i < rows; i++ {
		off = i * cols
		data[off+j1], data[off+j2] = data[off+j2], data[off+j1]
	}
}

// negateColumn flips the sign of column j of m.
func negateColumn[T numeric.Scalar](m *matrix.Dense[T], j int) {
	data := m.Data()
	rows, cols := m.Rows(), m.Cols()

	var i int
	for i = 0; i < rows; i++ {
		data[i*cols+j] = -data[i*cols+j]
	}
}

// singularValues2x2 returns the singular values of the upper triangular
// 2×2 [[f, g], [0, h]], smaller first, without squaring any input
// (LAPACK's dlas2). Results are non-negative.
func singularValues2x2(f, g, h float64) (ssmin, ssmax float64) {
	fa, ga, ha := math.Abs(f), math.Abs(g), math.Abs(h)
	fhmn, fhmx := fa, ha
	if ha < fa {
		fhmn, fhmx = ha, fa
	}

	if fhmn == 0 {
		if fhmx == 0 {
			return 0, ga
		}
		mn2, mx2 := fhmx, ga
		if ga < fhmx {
			mn2, mx2 = ga, fhmx
		}
		return 0, mx2 * math.Sqrt(1+(mn2/mx2)*(mn2/mx2))
	}

	if ga < fhmx {
		as := 1 + fhmn/fhmx
		at := (fhmx - fhmn) / fhmx
		au := (ga / fhmx) * (ga / fhmx)
		c := 2 / (math.Sqrt(as*as+au) + math.Sqrt(at*at+au))
		return fhmn * c, fhmx / c
	}

	au := fhmx / ga
	if au == 0 {
		// fhmx/ga underflowed; the true product below need not.
		return (fhmn * fhmx) / ga, ga
	}
	as := 1 + fhmn/fhmx
	at := (fhmx - fhmn) / fhmx
	c := 1 / (math.Sqrt(1+(as*au)*(as*au)) + math.Sqrt(1+(at*au)*(at*au)))
	ssmin = (fhmn * c) * au
	ssmin += ssmin

	return ssmin, ga / (c + c)
}

// svd2x2 computes the SVD of the upper triangular 2×2 [[f, g], [0, h]]
// following LAPACK's dlasv2:
//
//	[ csl snl ] [ f g ] [ csr -snr ]   [ ssmax   0   ]
//	[-snl csl ] [ 0 h ] [ snr  csr ] = [   0   ssmin ]
//
// ssmax and ssmin carry signs with |ssmax| ≥ |ssmin|; the final sign pass
// of the iteration makes the stored values non-negative.
func svd2x2(f, g, h float64) (ssmin, ssmax, snr, csr, snl, csl float64) {
	ft, fa := f, math.Abs(f)
	ht, ha := h, math.Abs(h)

	// pmax points at the largest entry: 1 for f, 2 for g, 3 for h.
	pmax := 1
	swap := ha > fa
	if swap {
		pmax = 3
		ft, ht = ht, ft
		fa, ha = ha, fa
	}
	gt, ga := g, math.Abs(g)

	var clt, crt, slt, srt float64
	if ga == 0 {
		// Already diagonal.
		ssmin, ssmax = ha, fa
		clt, crt = 1, 1
	} else {
		gasmal := true
		if ga > fa {
			pmax = 2
			if fa/ga < qrEps {
				// g dominates everything else.
				gasmal = false
				ssmax = ga
				if ha > 1 {
					ssmin = fa / (ga / ha)
				} else {
					ssmin = (fa / ga) * ha
				}
				clt, slt = 1, ht/gt
				srt, crt = 1, ft/gt
			}
		}
		if gasmal {
			d := fa - ha
			l := 1.0
			if d != fa {
				l = d / fa // 0 ≤ l ≤ 1; d == fa covers infinite f or h
			}
			mr := gt / ft // |mr| ≤ 1/eps
			t := 2 - l    // t ≥ 1
			mm, tt := mr*mr, t*t
			s := math.Sqrt(tt + mm) // 1 ≤ s ≤ 1 + 1/eps
			r := math.Abs(mr)
			if l != 0 {
				r = math.Sqrt(l*l + mm)
			}
			a := 0.5 * (s + r) // 1 ≤ a ≤ 1 + |mr|
			ssmin = ha / a
			ssmax = fa * a
			if mm == 0 {
				// mr underflowed; build the rotation tangent directly.
				if l == 0 {
					t = math.Copysign(2, ft) * math.Copysign(1, gt)
				} else {
					t = gt/math.Copysign(d, ft) + mr/t
				}
			} else {
				t = (mr/(s+t) + mr/(r+l)) * (1 + a)
			}
			l = math.Sqrt(t*t + 4)
			crt = 2 / l
			srt = t / l
			clt = (crt + srt*mr) / a
			slt = (ht / ft) * srt / a
		}
	}
	if swap {
		csl, snl = srt, crt
		csr, snr = slt, clt
	} else {
		csl, snl = clt, slt
		csr, snr = crt, srt
	}

	// Transfer the sign of the largest entry onto the values.
	var tsign float64
	switch pmax {
	case 1:
		tsign = math.Copysign(1, csr) * math.Copysign(1, csl) * math.Copysign(1, f)
	case 2:
		tsign = math.Copysign(1, snr) * math.Copysign(1, csl) * math.Copysign(1, g)
	case 3:
		tsign = math.Copysign(1, snr) * math.Copysign(1, snl) * math.Copysign(1, h)
	}
	ssmax = math.Copysign(ssmax, tsign)
	ssmin = math.Copysign(ssmin, tsign*math.Copysign(1, f)*math.Copysign(1, h))

	return ssmin, ssmax, snr, csr, snl, csl
}

// bidiagonalQR diagonalizes the bidiagonal pair (d, e) in place and leaves
// d holding the singular values, non-negative and descending.
//
// Implementation:
//   - Stage 1 (Deflate): scan the superdiagonal bottom-up for an entry
//     below the threshold; a hit either retires the bottom value or splits
//     the problem, and a trailing 2×2 block is solved directly by svd2x2.
//   - Stage 2 (Sweep): pick the chase direction from the grading of the
//     block, zero entries that are negligible relative to the running
//     local scale, then run one QR sweep: the shift comes from the 2×2 at
//     the small end of the block, replaced by zero (the Demmel–Kahan form)
//     when the block is graded so far that shifting would erase its small
//     values. Every rotation is folded into U and V as it is generated.
//   - Stage 3 (Order): once every superdiagonal entry is zero, flip the
//     sign of each negative value into the matching V column and sort
//     descending with one column transposition per value.
//
// Inputs:
//   - d, e: bidiagonal from bidiagonalize; only the leading len(d)−1
//     entries of e participate.
//   - u, v: rotation accumulators, either both from bidiagonalize or both
//     nil when vectors are not wanted.
//   - maxIter: positive budget of QR sweeps per singular value; the count
//     resets every time the bottom value of the active block converges.
//
// Returns:
//   - error: nil, or ErrNotConverged with d, e, u, v unspecified.
//
// Complexity:
//   - Time O(n²) on d, e plus O(rows·n) per sweep for the accumulators;
//     Space O(1).
func bidiagonalQR[T numeric.Scalar](d, e []float64, u, v *matrix.Dense[T], maxIter int) error {
	n := len(d)
	if n == 0 {
		return nil
	}
	if n == 1 {
		if d[0] < 0 {
			d[0] = -d[0]
			if v != nil {
				negateColumn(v, 0)
			}
		} else if d[0] == 0 {
			d[0] = 0 // normalize -0
		}
		return nil
	}

	// Relative tolerance, and the absolute deflation threshold scaled by a
	// lower bound on the smallest singular value.
	tol := math.Max(10, math.Min(100, math.Pow(qrEps, -0.125))) * qrEps
	var i int
	sminoa := math.Abs(d[0])
	if sminoa != 0 {
		mu := sminoa
		for i = 1; i < n; i++ {
			mu = math.Abs(d[i]) * (mu / (mu + math.Abs(e[i-1])))
			if mu < sminoa {
				sminoa = mu
			}
			if sminoa == 0 {
				break
			}
		}
	}
	sminoa /= math.Sqrt(float64(n))
	thresh := math.Max(tol*sminoa, float64(maxIter*n*n)*qrUnfl)

	var (
		m     = n - 1 // last index of the unconverged part
		iters = 0     // sweeps spent on the current bottom value
		idir  = 0     // 1: chase top→bottom, 2: chase bottom→top
		oldll = -1    // block bounds of the previous sweep
		oldm  = -1
		sminl = 0.0 // smallest local scale seen by the negligibility scans

		lll, ll    int
		smax, mu   float64
		shift, sll float64
		f, g, r, h float64
	)
	for m > 0 {
		// Stage 1: find the trailing block with nonzero superdiagonal.
		smax = math.Abs(d[m])
		split := false
		ll = 0
		for lll = 1; lll <= m; lll++ {
			ll = m - lll
			if math.Abs(e[ll]) <= thresh {
				split = true
				break
			}
			smax = math.Max(smax, math.Max(math.Abs(d[ll]), math.Abs(e[ll])))
		}
		if split {
			e[ll] = 0
			if ll == m-1 {
				// Bottom singular value converged; shrink the block.
				m--
				iters = 0
				continue
			}
			ll++
		} else {
			ll = 0
		}

		if ll == m-1 {
			// 2×2 block: close it in one exact step.
			sigmn, sigmx, sinr, cosr, sinl, cosl := svd2x2(d[m-1], e[m-1], d[m])
			d[m-1], d[m] = sigmx, sigmn
			e[m-1] = 0
			if v != nil {
				rotateColumns(v, m-1, m, cosr, sinr)
			}
			if u != nil {
				rotateColumns(u, m-1, m, cosl, sinl)
			}
			m -= 2
			iters = 0
			continue
		}

		// New submatrix: chase toward its small end.
		if ll > oldm || m < oldll {
			if math.Abs(d[ll]) >= math.Abs(d[m]) {
				idir = 1
			} else {
				idir = 2
			}
		}

		// Stage 2a: negligibility tests relative to the running local
		// scale, swept in the chase direction.
		if idir == 1 {
			if math.Abs(e[m-1]) <= tol*math.Abs(d[m]) {
				e[m-1] = 0
				continue
			}
			mu = math.Abs(d[ll])
			sminl = mu
			deflated := false
			for lll = ll; lll < m; lll++ {
				if math.Abs(e[lll]) <= tol*mu {
					e[lll] = 0
					deflated = true
					break
				}
				mu = math.Abs(d[lll+1]) * (mu / (mu + math.Abs(e[lll])))
				if mu < sminl {
					sminl = mu
				}
			}
			if deflated {
				continue
			}
		} else {
			if math.Abs(e[ll]) <= tol*math.Abs(d[ll]) {
				e[ll] = 0
				continue
			}
			mu = math.Abs(d[m])
			sminl = mu
			deflated := false
			for lll = m - 1; lll >= ll; lll-- {
				if math.Abs(e[lll]) <= tol*mu {
					e[lll] = 0
					deflated = true
					break
				}
				mu = math.Abs(d[lll]) * (mu / (mu + math.Abs(e[lll])))
				if mu < sminl {
					sminl = mu
				}
			}
			if deflated {
				continue
			}
		}
		oldll, oldm = ll, m

		if iters >= maxIter {
			return ErrNotConverged
		}
		iters++

		// Stage 2b: shift from the 2×2 at the small end of the block,
		// zeroed when shifting would erase the block's small values.
		shift = 0
		if float64(n)*tol*(sminl/smax) > math.Max(qrEps, 0.01*tol) {
			if idir == 1 {
				sll = math.Abs(d[ll])
				shift, _ = singularValues2x2(d[m-1], e[m-1], d[m])
			} else {
				sll = math.Abs(d[m])
				shift, _ = singularValues2x2(d[ll], e[ll], d[ll+1])
			}
			// A negligible shift degrades to the zero-shift sweep.
			if sll > 0 && (shift/sll)*(shift/sll) < qrEps {
				shift = 0
			}
		}

		// Stage 2c: one bulge chase over d[ll..m].
		switch {
		case shift == 0 && idir == 1:
			// Zero-shift sweep, top to bottom: coupled rotation pairs
			// whose products never subtract, keeping relative accuracy.
			cs, oldcs := 1.0, 1.0
			var sn, oldsn float64
			for i = ll; i < m; i++ {
				cs, sn, r = givens(d[i]*cs, e[i])
				if i > ll {
					e[i-1] = oldsn * r
				}
				oldcs, oldsn, d[i] = givens(oldcs*r, d[i+1]*sn)
				if v != nil {
					rotateColumns(v, i, i+1, cs, sn)
				}
				if u != nil {
					rotateColumns(u, i, i+1, oldcs, oldsn)
				}
			}
			h = d[m] * cs
			d[m] = h * oldcs
			e[m-1] = h * oldsn
			if math.Abs(e[m-1]) <= thresh {
				e[m-1] = 0
			}

		case shift == 0 && idir == 2:
			// Zero-shift sweep, bottom to top.
			cs, oldcs := 1.0, 1.0
			var sn, oldsn float64
			for i = m; i > ll; i-- {
				cs, sn, r = givens(d[i]*cs, e[i-1])
				if i < m {
					e[i] = oldsn * r
				}
				oldcs, oldsn, d[i] = givens(oldcs*r, d[i-1]*sn)
				if u != nil {
					rotateColumns(u, i-1, i, cs, -sn)
				}
				if v != nil {
					rotateColumns(v, i-1, i, oldcs, -oldsn)
				}
			}
			h = d[ll] * cs
			d[ll] = h * oldcs
			e[ll] = h * oldsn
			if math.Abs(e[ll]) <= thresh {
				e[ll] = 0
			}

		case idir == 1:
			// Shifted sweep, top to bottom.
			f = (math.Abs(d[ll]) - shift) * (math.Copysign(1, d[ll]) + shift/d[ll])
			g = e[ll]
			var cosr, sinr, cosl, sinl float64
			for i = ll; i < m; i++ {
				cosr, sinr, r = givens(f, g)
				if i > ll {
					e[i-1] = r
				}
				f = cosr*d[i] + sinr*e[i]
				e[i] = cosr*e[i] - sinr*d[i]
				g = sinr * d[i+1]
				d[i+1] = cosr * d[i+1]
				cosl, sinl, r = givens(f, g)
				d[i] = r
				f = cosl*e[i] + sinl*d[i+1]
				d[i+1] = cosl*d[i+1] - sinl*e[i]
				if i < m-1 {
					g = sinl * e[i+1]
					e[i+1] = cosl * e[i+1]
				}
				if v != nil {
					rotateColumns(v, i, i+1, cosr, sinr)
				}
				if u != nil {
					rotateColumns(u, i, i+1, cosl, sinl)
				}
			}
			e[m-1] = f
			if math.Abs(e[m-1]) <= thresh {
				e[m-1] = 0
			}

		default:
			// Shifted sweep, bottom to top.
			f = (math.Abs(d[m]) - shift) * (math.Copysign(1, d[m]) + shift/d[m])
			g = e[m-1]
			var cosr, sinr, cosl, sinl float64
			for i = m; i > ll; i-- {
				cosr, sinr, r = givens(f, g)
				if i < m {
					e[i] = r
				}
				f = cosr*d[i] + sinr*e[i-1]
				e[i-1] = cosr*e[i-1] - sinr*d[i]
				g = sinr * d[i-1]
				d[i-1] = cosr * d[i-1]
				cosl, sinl, r = givens(f, g)
				d[i] = r
				f = cosl*e[i-1] + sinl*d[i-1]
				d[i-1] = cosl*d[i-1] - sinl*e[i-1]
				if i > ll+1 {
					g = sinl * e[i-2]
					e[i-2] = cosl * e[i-2]
				}
				if u != nil {
					rotateColumns(u, i-1, i, cosr, -sinr)
				}
				if v != nil {
					rotateColumns(v, i-1, i, cosl, -sinl)
				}
			}
			e[ll] = f
			if math.Abs(e[ll]) <= thresh {
				e[ll] = 0
			}
		}
	}

	// Stage 3: sign fixup, then descending order.
	for i = 0; i < n; i++ {
		if d[i] < 0 {
			d[i] = -d[i]
			if v != nil {
				negateColumn(v, i)
			}
		} else if d[i] == 0 {
			d[i] = 0 // normalize -0
		}
	}
	var j, isub int
	var smin float64
	for i = 0; i < n-1; i++ {
		isub = 0
		smin = d[0]
		for j = 1; j <= n-1-i; j++ {
			if d[j] <= smin {
				isub = j
				smin = d[j]
			}
		}
		if isub != n-1-i {
			d[isub] = d[n-1-i]
			d[n-1-i] = smin
			if v != nil {
				swapColumns(v, isub, n-1-i)
			}
			if u != nil {
				swapColumns(u, isub, n-1-i)
			}
		}
	}

	return nil
}
