package graph

// unbroadcast collapses grad, whose shape reflects a broadcasted operation's
// output, down to targetShape so it can be accumulated into the dependency
// that originally had that shape. Two kinds of collapsing happen:
//
//  1. Leading axes that targetShape doesn't have at all (broadcasting added
//     them) are summed away entirely, one axis at a time, until the ranks
//     match.
//  2. Axes that both shapes have, but where targetShape is 1 and grad's is
//     not, are summed and the resulting size-1 axis is reinserted via
//     Reshape so the rank stays aligned with targetShape.
func unbroadcast[E Element[E]](grad E, targetShape []int) (E, error) {
	gradShape := grad.Shape()

	for len(gradShape) > len(targetShape) {
		reduced, err := grad.SumAxis(0)
		if err != nil {
			var zero E

			return zero, err
		}

		grad = reduced
		gradShape = grad.Shape()
	}

	for axis := 0; axis < len(targetShape); axis++ {
		if targetShape[axis] != 1 || gradShape[axis] == 1 {
			continue
		}

		reduced, err := grad.SumAxis(axis)
		if err != nil {
			var zero E

			return zero, err
		}

		reshaped := make([]int, 0, len(targetShape))
		reshaped = append(reshaped, reduced.Shape()[:axis]...)
		reshaped = append(reshaped, 1)
		reshaped = append(reshaped, reduced.Shape()[axis:]...)

		grad, err = reduced.Reshape(reshaped)
		if err != nil {
			var zero E

			return zero, err
		}

		gradShape = grad.Shape()
	}

	return grad, nil
}
