// Package numeric defines the scalar kinds shared by all lvlsvd packages
// and the small set of generic operations the decomposition kernels need.
//
// 🚀 What is numeric?
//
//	A single place where the four supported element kinds
//	(float32, float64, complex64, complex128) meet the generic code
//	that has to treat them uniformly:
//	  • Scalar / Real / Complex — the type-set constraints
//	  • Conj, Abs, Scale, FromReal, … — per-kind scalar operations
//	  • Eps — machine epsilon of the kind's real component
//
// ✨ Why a trait package?
//
//   - One kernel code path for real and complex input — no per-kind
//     copies of the bidiagonalization or the QR sweep
//   - 32-bit kinds keep native precision: float32/complex64 paths run
//     on github.com/chewxy/math32, not on widened float64 math
//   - Exhaustive type switches, one per operation — no reflection
//
// ⚙️ Usage:
//
//	func norm[T numeric.Scalar](xs []T) float64 {
//	  var s float64
//	  for _, x := range xs {
//	    a := numeric.Abs(x)
//	    s += a * a
//	  }
//	  return math.Sqrt(s)
//	}
//
// All operations are O(1); none allocate.
package numeric
