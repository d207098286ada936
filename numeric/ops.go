// Package numeric: generic scalar operations.
//
// Every operation dispatches with one exhaustive type switch over the four
// Scalar kinds. The 32-bit branches use github.com/chewxy/math32 so that
// float32/complex64 arithmetic stays in native precision instead of round
// tripping through float64.
package numeric

import (
	"math"
	"math/cmplx"

	"github.com/chewxy/math32"
)

// FromReal converts a float64 into T: a plain narrowing for real kinds,
// a zero-imaginary value for complex kinds.
// Complexity: O(1).
func FromReal[T Scalar](r float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(r)).(T)
	case float64:
		return any(r).(T)
	case complex64:
		return any(complex(float32(r), 0)).(T)
	case complex128:
		return any(complex(r, 0)).(T)
	default:
		panic("numeric: unsupported scalar kind")
	}
}

// ToComplex widens v into a complex128, the common exchange kind.
// Real kinds map to a zero-imaginary value.
// Complexity: O(1).
func ToComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("numeric: unsupported scalar kind")
	}
}

// FromComplex narrows a complex128 into T. For real kinds the imaginary
// part is discarded; callers must only pass values whose imaginary part
// is already zero (or negligible) when T is real.
// Complexity: O(1).
func FromComplex[T Scalar](c complex128) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(real(c))).(T)
	case float64:
		return any(real(c)).(T)
	case complex64:
		return any(complex64(c)).(T)
	case complex128:
		return any(c).(T)
	default:
		panic("numeric: unsupported scalar kind")
	}
}

// Conj returns the complex conjugate of v. Real kinds are returned as-is.
// Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float32, float64:
		return v
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		panic("numeric: unsupported scalar kind")
	}
}

// Abs returns the modulus |v| as a float64.
// The complex64 branch uses math32.Hypot so the magnitude is computed in
// the kind's native precision before widening.
// Complexity: O(1).
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(math32.Abs(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return float64(math32.Hypot(real(x), imag(x)))
	case complex128:
		return cmplx.Abs(x)
	default:
		panic("numeric: unsupported scalar kind")
	}
}

// Scale multiplies v by the real factor r without leaving T's kind.
// Complexity: O(1).
func Scale[T Scalar](v T, r float64) T {
	switch x := any(v).(type) {
	case float32:
		return any(x * float32(r)).(T)
	case float64:
		return any(x * r).(T)
	case complex64:
		return any(x * complex(float32(r), 0)).(T)
	case complex128:
		return any(x * complex(r, 0)).(T)
	default:
		panic("numeric: unsupported scalar kind")
	}
}
