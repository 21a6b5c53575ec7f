package graph

import "fmt"

// Backward runs the reverse-mode differentiation pass rooted at root. It
// first evaluates root (and anything not yet evaluated) via Eval, since a
// backward pass over an unevaluated graph is otherwise meaningless; callers
// who already called Eval pay only the no-op cost of the second pass.
//
// root is seeded with ones of its own shape -- a scalar root gets the
// multiplicative identity, a tensor-shaped root gets an all-ones tensor of
// that shape -- and every other reachable requires_grad node ends up with
// the sum, over every path to root, of the local Jacobians along that path
// applied to the seed.
//
// Backward accumulates into existing grad cells rather than resetting them,
// so calling it twice in a row on the same (or overlapping) graphs sums the
// two passes' gradients. Call ResetGrad on the nodes you care about between
// passes if that's not what you want.
func Backward[E Element[E]](root *Value[E]) error {
	if err := Eval(root); err != nil {
		return err
	}

	rootData, err := root.MustData()
	if err != nil {
		return err
	}

	seed, err := rootData.Ones()
	if err != nil {
		return err
	}

	order := topoSort(root)

	// Propagate this pass over empty cells, then add back what they held.
	prior := make(map[int64]E)
	for _, node := range order {
		if g, ok := node.Grad(); ok {
			prior[node.id] = g
			node.grad = nil
		}
	}

	if err := root.accumulateGrad(seed); err != nil {
		return err
	}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]

		if node.backward == nil {
			continue
		}

		outGrad, ok := node.Grad()
		if !ok {
			continue
		}

		depGrads, err := node.backward(outGrad)
		if err != nil {
			return fmt.Errorf("graph: backward through node %d (%s): %w", node.id, node.op, err)
		}

		for j, dep := range node.deps {
			if !dep.requiresGrad {
				continue
			}

			if err := dep.accumulateGrad(depGrads[j]); err != nil {
				return fmt.Errorf("graph: accumulating grad into node %d (%s): %w", dep.id, dep.op, err)
			}
		}
	}

	for _, node := range order {
		if g, ok := prior[node.id]; ok {
			if err := node.accumulateGrad(g); err != nil {
				return err
			}
		}
	}

	return nil
}
