package tensor

import (
	"fmt"

	"github.com/ariaghora/go-autograd/graph"
)

// BroadcastShapes computes the resulting shape of a broadcast operation
// between two shapes, along with whether each operand needed broadcasting to
// reach it. Shapes are aligned on their trailing axes, numpy-style: a missing
// leading axis or an axis of extent 1 stretches to match the other operand.
func BroadcastShapes(a, b []int) (shape []int, broadcastA, broadcastB bool, err error) {
	lenA := len(a)
	lenB := len(b)

	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	result := make([]int, maxLen)

	for i := 1; i <= maxLen; i++ {
		dimA := 1
		if i <= lenA {
			dimA = a[lenA-i]
		}

		dimB := 1
		if i <= lenB {
			dimB = b[lenB-i]
		}

		if dimA != dimB && dimA != 1 && dimB != 1 {
			return nil, false, false, fmt.Errorf("tensor: shapes %v and %v are not broadcast compatible (dimension %d: %d vs %d): %w", a, b, i, dimA, dimB, graph.ErrShapeMismatch)
		}

		if dimA > dimB {
			result[maxLen-i] = dimA
		} else {
			result[maxLen-i] = dimB
		}
	}

	return result, !SameShape(a, result), !SameShape(b, result), nil
}

// BroadcastIndex maps a flat index in the broadcast output shape back to the
// corresponding flat index in the original (pre-broadcast) shape.
func BroadcastIndex(index int, shape, outputShape []int) int {
	if SameShape(shape, outputShape) {
		return index
	}

	outputStrides := stridesFor(outputShape)
	originalStrides := stridesFor(shape)
	originalIndex := 0

	for i := 0; i < len(outputShape); i++ {
		coord := (index / outputStrides[i]) % outputShape[i]
		shapeI := len(shape) - 1 - (len(outputShape) - 1 - i)

		if shapeI >= 0 && shape[shapeI] != 1 {
			originalIndex += coord * originalStrides[shapeI]
		}
	}

	return originalIndex
}

// SameShape checks if two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
