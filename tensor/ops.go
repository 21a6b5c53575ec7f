package tensor

import (
	"fmt"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"

	"github.com/ariaghora/go-autograd/graph"
	"github.com/ariaghora/go-autograd/internal/xblas"
	"github.com/ariaghora/go-autograd/numeric"
)

// elementwise applies op over every pair of elements of a and b, broadcasting
// their shapes numpy-style. The result shape is the broadcast of a.Shape()
// and b.Shape().
func elementwise[T Numeric](a, b *Tensor[T], ops numeric.Arithmetic[T], op func(ops numeric.Arithmetic[T], x, y T) T) (*Tensor[T], error) {
	outShape, _, _, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out, err := New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	for i := range out.data {
		ai := BroadcastIndex(i, a.shape, outShape)
		bi := BroadcastIndex(i, b.shape, outShape)
		out.data[i] = op(ops, a.data[ai], b.data[bi])
	}

	return out, nil
}

// Add returns the broadcasted elementwise sum a + b.
func Add[T Numeric](a, b *Tensor[T], ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	return elementwise(a, b, ops, func(ops numeric.Arithmetic[T], x, y T) T { return ops.Add(x, y) })
}

// Sub returns the broadcasted elementwise difference a - b.
func Sub[T Numeric](a, b *Tensor[T], ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	return elementwise(a, b, ops, func(ops numeric.Arithmetic[T], x, y T) T { return ops.Sub(x, y) })
}

// Mul returns the broadcasted elementwise product a * b.
func Mul[T Numeric](a, b *Tensor[T], ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	return elementwise(a, b, ops, func(ops numeric.Arithmetic[T], x, y T) T { return ops.Mul(x, y) })
}

// Div returns the broadcasted elementwise quotient a / b.
func Div[T Numeric](a, b *Tensor[T], ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	return elementwise(a, b, ops, func(ops numeric.Arithmetic[T], x, y T) T { return ops.Div(x, y) })
}

// Neg returns the elementwise negation of t.
func Neg[T Numeric](t *Tensor[T], ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	out := t.Copy()
	for i, v := range out.data {
		out.data[i] = ops.Neg(v)
	}

	return out, nil
}

// Transpose reverses the axis order of t, producing a new owned tensor.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	rank := t.Dims()

	revShape := make([]int, rank)
	for i, d := range t.shape {
		revShape[rank-1-i] = d
	}

	out, err := New[T](revShape, nil)
	if err != nil {
		return nil, err
	}

	idx := make([]int, rank)
	revIdx := make([]int, rank)

	for flat := 0; flat < t.Size(); flat++ {
		rem := flat
		for i := 0; i < rank; i++ {
			idx[i] = rem / t.strides[i]
			rem %= t.strides[i]
		}

		for i := 0; i < rank; i++ {
			revIdx[rank-1-i] = idx[i]
		}

		outOffset := 0
		for i := 0; i < rank; i++ {
			outOffset += revIdx[i] * out.strides[i]
		}

		out.data[outOffset] = t.data[flat]
	}

	return out, nil
}

// SumAxis reduces t along the given axis by summation, removing that axis
// from the result shape entirely (the result has rank t.Dims()-1). This
// mirrors ndarray's sum_axis: the axis is always dropped, never kept at
// extent 1 -- callers that need to preserve rank (e.g. gradient
// un-broadcasting) must Reshape the result themselves.
func (t *Tensor[T]) SumAxis(axis int, ops numeric.Arithmetic[T]) (*Tensor[T], error) {
	rank := t.Dims()
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("tensor: axis %d out of range for rank %d tensor", axis, rank)
	}

	outShape := make([]int, 0, rank-1)
	for i, d := range t.shape {
		if i != axis {
			outShape = append(outShape, d)
		}
	}

	out, err := New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	zero := ops.FromFloat64(0)
	for i := range out.data {
		out.data[i] = zero
	}

	idx := make([]int, rank)

	for flat := 0; flat < t.Size(); flat++ {
		rem := flat
		for i := 0; i < rank; i++ {
			idx[i] = rem / t.strides[i]
			rem %= t.strides[i]
		}

		outOffset := 0
		dimIdx := 0

		for i := 0; i < rank; i++ {
			if i == axis {
				continue
			}

			outOffset += idx[i] * out.strides[dimIdx]
			dimIdx++
		}

		out.data[outOffset] = ops.Add(out.data[outOffset], t.data[flat])
	}

	return out, nil
}

// Dot computes the matrix product of two rank-2 tensors, a (m, k) and
// b (k, n), producing a (m, n) tensor. It routes through gonum's BLAS Gemm
// via internal/xblas; float16 and float8 operands are promoted to float32
// for the multiply and truncated back on the way out, the same strategy
// internal/xblas already uses for its own reduced-precision Gemm wrappers.
func Dot[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if a.Dims() != 2 || b.Dims() != 2 {
		return nil, fmt.Errorf("tensor: Dot requires rank-2 operands, got ranks %d and %d: %w", a.Dims(), b.Dims(), graph.ErrDotRankMismatch)
	}

	m, k := a.shape[0], a.shape[1]
	k2, n := b.shape[0], b.shape[1]

	if k != k2 {
		return nil, fmt.Errorf("tensor: Dot shape mismatch: %v vs %v: %w", a.shape, b.shape, graph.ErrDotRankMismatch)
	}

	out, err := New[T]([]int{m, n}, nil)
	if err != nil {
		return nil, err
	}

	switch aData := any(a.data).(type) {
	case []float32:
		xblas.GemmF32(m, n, k, aData, any(b.data).([]float32), any(out.data).([]float32))
	case []float64:
		xblas.GemmF64(m, n, k, aData, any(b.data).([]float64), any(out.data).([]float64))
	case []float16.Float16:
		xblas.GemmF16(m, n, k, aData, any(b.data).([]float16.Float16), any(out.data).([]float16.Float16))
	case []float8.Float8:
		xblas.GemmF8(m, n, k, aData, any(b.data).([]float8.Float8), any(out.data).([]float8.Float8))
	default:
		return nil, fmt.Errorf("tensor: Dot has no BLAS routine for element type %T", a.data)
	}

	return out, nil
}
