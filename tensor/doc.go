// Package tensor provides the batched N-D container for lvlsvd: a dense,
// row-major tensor whose trailing two dimensions are treated as a matrix
// and whose leading dimensions enumerate independent batch instances.
//
// 🚀 What is tensor?
//
//	The thin layer between flat storage and per-matrix computation:
//	  • Dense[T] — shape + flat row-major data, any rank (including 0)
//	  • MatrixAt / SetMatrixAt — copy a batch slice out as a
//	    matrix.Dense[T], or write one back at the same index
//	  • VectorAt / SetVectorAt — the same for trailing-1-dim values
//	    (batched singular values)
//
// ✨ Why its own package?
//
//   - The decomposition kernel thinks in matrices; the API boundary
//     thinks in batches. This package owns the index arithmetic between
//     the two so neither side duplicates it.
//   - Rank-0 and rank-1 tensors are constructible on purpose: the engine
//     must be able to receive them and reject them with a shape error.
//
// ⚙️ Usage:
//
//	batch, _ := tensor.New[complex128](3, 5, 5) // three 5×5 matrices
//	m, _ := batch.MatrixAt(1)                   // second slice as a matrix
//
// Batch slices are copies: mutating the returned matrix never touches
// the tensor until SetMatrixAt writes it back.
package tensor
