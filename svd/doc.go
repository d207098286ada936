// Package svd computes the singular value decomposition A = U·Σ·Vᴴ for
// dense matrices and batched tensors over float32, float64, complex64,
// and complex128, through one generic Golub–Kahan–Reinsch pipeline.
//
// 🚀 What is svd?
//
//	The module's reason to exist:
//	  • SVD / MatrixSVD — decompose one rank-2 tensor or one matrix
//	  • BatchSVD — decompose every slice of a rank ≥ 2 tensor, fanned
//	    out across a bounded worker pool
//	  • SVDOptions — ComputeUV, FullMatrices, MaxIterations, Workers
//
// ✨ Why this shape?
//
//   - Householder bidiagonalization produces a REAL bidiagonal matrix
//     for all four kinds, so one float64 QR iteration serves them all;
//     only the U/V rotations run in the element kind.
//   - Singular values come back as float64 for every kind, non-negative
//     and descending, len = min(rows, cols).
//   - Convergence is budgeted per singular value: a matrix that refuses
//     to converge fails with ErrNotConverged instead of spinning.
//
// ⚙️ Usage:
//
//	t, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	res, err := svd.SVD(t, svd.DefaultSVDOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.6f\n", res.Values) // [5.464986 0.365966]
//
// Wide matrices (rows < cols) cost one conjugate transpose: the pipeline
// decomposes Aᴴ and swaps U with V on the way out.
package svd
