// Package scalar provides the simplest element type satisfying
// graph.Element: a bare float64 value with no shape. It exists so that the
// graph package's Value/Eval/Backward machinery can run over plain numbers
// exactly as it does over tensors, with no special-casing anywhere in graph.
package scalar

import "fmt"

// Scalar is a 0-dimensional differentiable value.
type Scalar float64

// Add implements graph.Element.
func (s Scalar) Add(other Scalar) (Scalar, error) { return s + other, nil }

// Sub implements graph.Element.
func (s Scalar) Sub(other Scalar) (Scalar, error) { return s - other, nil }

// Mul implements graph.Element.
func (s Scalar) Mul(other Scalar) (Scalar, error) { return s * other, nil }

// Div implements graph.Element.
func (s Scalar) Div(other Scalar) (Scalar, error) { return s / other, nil }

// Neg implements graph.Element.
func (s Scalar) Neg() (Scalar, error) { return -s, nil }

// Dot implements graph.Element. For scalars, Dot degenerates to Mul: there
// is no axis to contract over.
func (s Scalar) Dot(other Scalar) (Scalar, error) { return s * other, nil }

// Shape implements graph.Element. A Scalar always reports rank 0.
func (s Scalar) Shape() []int { return []int{} }

// Transpose implements graph.Element. A Scalar has no axes to reverse, so
// Transpose is the identity.
func (s Scalar) Transpose() (Scalar, error) { return s, nil }

// SumAxis implements graph.Element. A Scalar has no axes, so any axis index
// is out of range.
func (s Scalar) SumAxis(axis int) (Scalar, error) {
	return 0, fmt.Errorf("scalar: SumAxis(%d) invalid on a rank-0 value", axis)
}

// Reshape implements graph.Element. The only shape a Scalar can validly be
// reshaped to is the empty shape.
func (s Scalar) Reshape(shape []int) (Scalar, error) {
	if len(shape) != 0 {
		return 0, fmt.Errorf("scalar: cannot reshape rank-0 value to shape %v", shape)
	}

	return s, nil
}

// Zero implements graph.Element.
func (s Scalar) Zero() (Scalar, error) { return 0, nil }

// Ones implements graph.Element.
func (s Scalar) Ones() (Scalar, error) { return 1, nil }
