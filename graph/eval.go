package graph

import "fmt"

// Eval populates the data cell of root and every node it transitively
// depends on, in dependency order, so that every node's data cell holds a
// valid value by the time Eval returns. Nodes whose data cell is already
// populated (leaves, and any node a previous Eval call already visited) are
// left untouched -- Eval is safe to call repeatedly on overlapping graphs.
func Eval[E Element[E]](root *Value[E]) error {
	for _, node := range topoSort(root) {
		if node.HasData() {
			continue
		}

		value, err := forward(node)
		if err != nil {
			return fmt.Errorf("graph: evaluating node %d (%s): %w", node.id, node.op, err)
		}

		node.setData(value)
	}

	return nil
}

// forward computes a single node's value from its already-evaluated deps.
// It assumes topoSort has guaranteed every dep's data cell is populated
// before this call.
func forward[E Element[E]](node *Value[E]) (E, error) {
	var zero E

	switch node.op {
	case OpLeaf:
		// Leaves are seeded with data at construction; HasData already
		// short-circuited this case in Eval, but return cleanly if reached.
		if value, ok := node.Data(); ok {
			return value, nil
		}

		return zero, ErrUnsetLeaf

	case OpAdd:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		b, err := node.deps[1].MustData()
		if err != nil {
			return zero, err
		}

		return a.Add(b)

	case OpSub:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		b, err := node.deps[1].MustData()
		if err != nil {
			return zero, err
		}

		return a.Sub(b)

	case OpMul:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		b, err := node.deps[1].MustData()
		if err != nil {
			return zero, err
		}

		return a.Mul(b)

	case OpDiv:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		b, err := node.deps[1].MustData()
		if err != nil {
			return zero, err
		}

		return a.Div(b)

	case OpNeg:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		return a.Neg()

	case OpDot:
		a, err := node.deps[0].MustData()
		if err != nil {
			return zero, err
		}

		b, err := node.deps[1].MustData()
		if err != nil {
			return zero, err
		}

		return a.Dot(b)

	default:
		return zero, fmt.Errorf("graph: unknown op kind %d", node.op)
	}
}
