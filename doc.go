// Package lvlsvd is your in-memory toolkit for singular value
// decomposition — from dense matrix primitives to batched, parallel
// factorization of real and complex tensors.
//
// 🚀 What is lvlsvd?
//
//	A modern, generic, pure-Go library that brings together:
//		• Numeric kernel: one Scalar constraint spanning float32/64 & complex64/128
//		• Dense primitives: matrices & rank-N tensors in row-major layout
//		• Decomposition: Golub–Kahan bidiagonalization + implicit-shift QR
//		• Batching: decompose every slice of a tensor across a worker pool
//		• Verification: reconstruction, orthonormality & spectrum laws in the tests
//
// ✨ Why choose lvlsvd?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit errors, documented invariants, no panics
//   - Pure Go – no cgo, no BLAS or LAPACK binding to ship
//   - Deterministic – same input bits, same output bits, whatever Workers says
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/ — the Scalar constraint & elementwise helpers
//	matrix/  — dense matrices: products, conjugate transpose, norms
//	tensor/  — rank-N containers and their batch views
//	svd/     — the decomposition itself: SVD, MatrixSVD, BatchSVD
//
// Quick ASCII example:
//
//	   A   =   U  ·  Σ  ·  Vᴴ
//	(m×n)   (m×k) (k×k) (k×n)
//
//	every matrix factors into two orthonormal bases around a non-negative
//	spectrum, and k = min(m, n) keeps the economy shapes tight.
//
// Next up: randomized range finders, truncated variants and beyond. Dive
// into examples/ for image compression, batched PCA and beamforming
// walkthroughs.
//
//	go get github.com/katalvlaran/lvlsvd
package lvlsvd
