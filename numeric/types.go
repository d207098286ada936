// Package numeric: scalar kind constraints.
package numeric

// Real enumerates the supported real element kinds.
type Real interface {
	float32 | float64
}

// Complex enumerates the supported complex element kinds.
type Complex interface {
	complex64 | complex128
}

// Scalar enumerates every element kind the decomposition engine accepts.
// The set is deliberately closed: each generic operation in this package
// dispatches with an exhaustive type switch over exactly these four kinds.
type Scalar interface {
	Real | Complex
}

// Machine epsilons of the two supported precisions (2⁻²³ and 2⁻⁵²).
const (
	eps32 = 0x1p-23
	eps64 = 0x1p-52
)

// IsComplex reports whether T is one of the complex kinds.
// Complexity: O(1).
func IsComplex[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}

// Eps returns the machine epsilon of T's real component kind:
// 2⁻²³ for float32/complex64 and 2⁻⁵² for float64/complex128.
// Complexity: O(1).
func Eps[T Scalar]() float64 {
	var zero T
	switch any(zero).(type) {
	case float32, complex64:
		return eps32
	default:
		return eps64
	}
}
