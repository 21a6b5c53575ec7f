package tensor

import "github.com/ariaghora/go-autograd/numeric"

// Element adapts Tensor to the graph package's Element[E] capability
// interface for a fixed arithmetic implementation Ops. A concrete
// instantiation (e.g. Element[float64]{Ops: numeric.Float64Ops{}}) wraps
// *Tensor[T] values into the *Bound[T] values the graph package uses, since the
// arithmetic to use (which Add/Sub/Mul/Div/Neg to call) depends on T in a
// way Go's method sets alone can't express for a generic pointer receiver.
type Element[T Numeric] struct {
	Ops numeric.Arithmetic[T]
}

// Wrap returns the graph.Element-compatible view of t under e's arithmetic.
// *Tensor[T] cannot satisfy graph.Element directly without knowing which ops
// to use, so the tensor package exposes free functions (Add, Sub, Mul, Div,
// Neg, Dot) and methods (Transpose, SumAxis, Reshape) over tensors, and the
// *Bound[T] returned here adapts them to graph.Element[*Bound[T]].
func (e Element[T]) Wrap(t *Tensor[T]) *Bound[T] {
	return &Bound[T]{t: t, ops: e.Ops}
}

// Bound pairs a Tensor with the arithmetic implementation to use for it,
// and is the concrete type that satisfies graph.Element[*Bound[T]]. The
// graph package is generic over the element type E = *Bound[T]; every Value
// built over tensors is a Value[*Bound[T]] for some numeric.Arithmetic[T].
type Bound[T Numeric] struct {
	t   *Tensor[T]
	ops numeric.Arithmetic[T]
}

// Unwrap returns the underlying Tensor, e.g. to read out a result after
// Eval/Backward.
func (b *Bound[T]) Unwrap() *Tensor[T] { return b.t }

func (b *Bound[T]) rewrap(t *Tensor[T]) *Bound[T] {
	return &Bound[T]{t: t, ops: b.ops}
}

// Add implements graph.Element.
func (b *Bound[T]) Add(other *Bound[T]) (*Bound[T], error) {
	out, err := Add(b.t, other.t, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Sub implements graph.Element.
func (b *Bound[T]) Sub(other *Bound[T]) (*Bound[T], error) {
	out, err := Sub(b.t, other.t, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Mul implements graph.Element.
func (b *Bound[T]) Mul(other *Bound[T]) (*Bound[T], error) {
	out, err := Mul(b.t, other.t, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Div implements graph.Element.
func (b *Bound[T]) Div(other *Bound[T]) (*Bound[T], error) {
	out, err := Div(b.t, other.t, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Neg implements graph.Element.
func (b *Bound[T]) Neg() (*Bound[T], error) {
	out, err := Neg(b.t, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Dot implements graph.Element.
func (b *Bound[T]) Dot(other *Bound[T]) (*Bound[T], error) {
	out, err := Dot(b.t, other.t)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Shape implements graph.Element.
func (b *Bound[T]) Shape() []int { return b.t.Shape() }

// Transpose implements graph.Element.
func (b *Bound[T]) Transpose() (*Bound[T], error) {
	out, err := b.t.Transpose()
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// SumAxis implements graph.Element.
func (b *Bound[T]) SumAxis(axis int) (*Bound[T], error) {
	out, err := b.t.SumAxis(axis, b.ops)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Reshape implements graph.Element.
func (b *Bound[T]) Reshape(shape []int) (*Bound[T], error) {
	out, err := b.t.Reshape(shape)
	if err != nil {
		return nil, err
	}

	return b.rewrap(out), nil
}

// Zero implements graph.Element: a tensor of the same shape as b, filled
// with the additive identity of T.
func (b *Bound[T]) Zero() (*Bound[T], error) {
	out, err := New[T](b.t.Shape(), nil)
	if err != nil {
		return nil, err
	}

	zero := b.ops.FromFloat64(0)
	for i := range out.data {
		out.data[i] = zero
	}

	return b.rewrap(out), nil
}

// Ones implements graph.Element: a tensor of the same shape as b, filled
// with the multiplicative identity of T.
func (b *Bound[T]) Ones() (*Bound[T], error) {
	out, err := New[T](b.t.Shape(), nil)
	if err != nil {
		return nil, err
	}

	one := b.ops.One()
	for i := range out.data {
		out.data[i] = one
	}

	return b.rewrap(out), nil
}
