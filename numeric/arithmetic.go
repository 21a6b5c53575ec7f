// Package numeric provides dtype-polymorphic arithmetic for the tensor package.
package numeric

// Arithmetic defines the scalar operations a tensor's backing element type
// must provide. It lets the tensor adapter stay agnostic of the concrete
// numeric representation (float32, float64, or one of the reduced-precision
// types) used to store each element.
type Arithmetic[T any] interface {
	// Basic binary operations
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(x T) T

	// Conversion from standard types
	FromFloat32(f float32) T
	FromFloat64(f float64) T
	One() T

	// IsZero checks if a value is zero.
	IsZero(v T) bool
}
