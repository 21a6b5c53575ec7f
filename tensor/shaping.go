package tensor

import (
	"errors"
	"fmt"
)

// Reshape returns a new Tensor with a different shape, copying the
// underlying data so that the result never aliases t. The new shape must
// have the same total number of elements as the original tensor; exactly one
// dimension may be given as -1, in which case it is inferred from the
// remaining dimensions and the tensor's size.
func (t *Tensor[T]) Reshape(newShape []int) (*Tensor[T], error) {
	resolved := make([]int, len(newShape))
	copy(resolved, newShape)

	knownSize := 1
	inferredDim := -1

	for i, dim := range resolved {
		switch {
		case dim > 0:
			knownSize *= dim
		case dim == -1:
			if inferredDim != -1 {
				return nil, errors.New("tensor: only one dimension can be inferred in Reshape")
			}

			inferredDim = i
		default:
			return nil, fmt.Errorf("tensor: invalid shape dimension %d in Reshape; must be positive or -1", dim)
		}
	}

	if inferredDim != -1 {
		if knownSize == 0 || t.Size()%knownSize != 0 {
			return nil, fmt.Errorf("tensor: cannot infer dimension for size %d against known size %d", t.Size(), knownSize)
		}

		resolved[inferredDim] = t.Size() / knownSize
		knownSize = t.Size()
	}

	if knownSize != t.Size() {
		return nil, fmt.Errorf("tensor: cannot reshape tensor of size %d into shape %v (size %d)", t.Size(), resolved, knownSize)
	}

	dataCopy := make([]T, len(t.data))
	copy(dataCopy, t.data)

	return New(resolved, dataCopy)
}
