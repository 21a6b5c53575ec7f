// Package tensor provides an owned, dynamically-shaped n-dimensional array
// that satisfies the element-type capability required by the graph package,
// so that differentiable expressions can be built over tensors exactly as
// they are over scalars.
package tensor

import (
	"errors"
	"fmt"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

// Numeric constrains the backing element type of a Tensor.
type Numeric interface {
	~float32 | ~float64 | float8.Float8 | float16.Float16
}

// Tensor is a dense, row-major, owned n-dimensional array of a generic
// floating-point element type T. Unlike views in some array libraries, a
// Tensor never aliases another Tensor's backing slice: every operation that
// produces a Tensor allocates a fresh one. This keeps the data/grad cells of
// the graph package free of surprising aliasing across nodes.
type Tensor[T Numeric] struct {
	shape   []int
	strides []int
	data    []T
}

// New creates a Tensor with the given shape, initialized from data. If data
// is nil, the Tensor is zero-filled. A shape of length 0 denotes a scalar
// (rank 0) tensor, which holds exactly one element.
func New[T Numeric](shape []int, data []T) (*Tensor[T], error) {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("tensor: invalid shape dimension %d: must be non-negative", dim)
		}

		size *= dim
	}

	if data == nil {
		data = make([]T, size)
	}

	if len(data) != size {
		return nil, fmt.Errorf("tensor: data length (%d) does not match shape %v (size %d)", len(data), shape, size)
	}

	shapeCopy := make([]int, len(shape))
	copy(shapeCopy, shape)

	return &Tensor[T]{
		shape:   shapeCopy,
		strides: stridesFor(shapeCopy),
		data:    data,
	}, nil
}

// stridesFor computes row-major strides for shape.
func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1

	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return strides
}

// Shape returns a copy of the tensor's shape. An empty slice denotes a scalar.
func (t *Tensor[T]) Shape() []int {
	shapeCopy := make([]int, len(t.shape))
	copy(shapeCopy, t.shape)

	return shapeCopy
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	stridesCopy := make([]int, len(t.strides))
	copy(stridesCopy, t.strides)

	return stridesCopy
}

// Data returns the tensor's backing slice. Callers that mutate it are
// responsible for not violating the "Tensor never aliases" contract of any
// other Tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Dims returns the number of axes (rank) of the tensor. Scalars have rank 0.
func (t *Tensor[T]) Dims() int {
	return len(t.shape)
}

// Size returns the total number of elements in the tensor.
func (t *Tensor[T]) Size() int {
	size := 1
	for _, dim := range t.shape {
		size *= dim
	}

	return size
}

// SameShape reports whether t and other have identical shapes.
func (t *Tensor[T]) SameShape(other *Tensor[T]) bool {
	return SameShape(t.shape, other.shape)
}

// At retrieves the value at the given multi-index.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	var zero T

	if t.Dims() == 0 {
		if len(indices) != 0 {
			return zero, errors.New("tensor: 0-dimensional tensor cannot be indexed")
		}

		return t.data[0], nil
	}

	if len(indices) != t.Dims() {
		return zero, fmt.Errorf("tensor: %d indices given, tensor has %d dimensions", len(indices), t.Dims())
	}

	offset := 0

	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return zero, fmt.Errorf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}

		offset += idx * t.strides[i]
	}

	return t.data[offset], nil
}

// Set assigns value at the given multi-index.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	if t.Dims() == 0 {
		if len(indices) != 0 {
			return errors.New("tensor: 0-dimensional tensor cannot be indexed")
		}

		t.data[0] = value

		return nil
	}

	if len(indices) != t.Dims() {
		return fmt.Errorf("tensor: %d indices given, tensor has %d dimensions", len(indices), t.Dims())
	}

	offset := 0

	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return fmt.Errorf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}

		offset += idx * t.strides[i]
	}

	t.data[offset] = value

	return nil
}

// Copy returns a deep copy of t.
func (t *Tensor[T]) Copy() *Tensor[T] {
	dataCopy := make([]T, len(t.data))
	copy(dataCopy, t.data)

	out, _ := New(t.shape, dataCopy)

	return out
}

// String returns a debug representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor(shape=%v, data=%v)", t.shape, t.data)
}
