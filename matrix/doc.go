// Package matrix provides the dense 2-D building block for lvlsvd:
// a generic row-major matrix over the four numeric kinds, plus the
// product, transpose, and norm kernels the decomposition engine and its
// verification suite are built on.
//
// 🚀 What is matrix?
//
//	A minimal, allocation-conscious dense matrix:
//	  • Dense[T] — rows×cols, flat row-major storage, bounds-checked At/Set
//	  • Mul / MulConjTranspose / ConjTransposeMul — the three product
//	    shapes a factorization pipeline needs (A·B, A·Bᴴ, Aᴴ·B)
//	  • ConjTranspose, Identity, DiagFromValues, FrobeniusNorm
//
// ✨ Why its own package?
//
//   - One concrete type, no interface indirection in hot loops
//   - Works identically for float32, float64, complex64, complex128
//     (conjugation degenerates to a plain transpose for real kinds)
//   - Strict fail-fast validation with sentinel errors, never panics
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3, 4})
//	at, _ := matrix.ConjTranspose(a)
//	g, _ := matrix.Mul(at, a) // Gram matrix AᵀA
//
// All kernels are deterministic: fixed loop orders, results independent
// of data values.
package matrix
