package graph

// TopoSort returns root's dependency graph in dependency-first (post-order)
// order, with each node appearing exactly once keyed by id. This is the
// traversal Eval and Backward use internally: every op must execute once
// per call even when it is referenced from more than one place in the
// graph.
func TopoSort[E Element[E]](root *Value[E]) []*Value[E] {
	return topoSort(root)
}

// TopoSortRevisit returns root's dependency graph in post-order without
// deduplication: a node shared by multiple parents appears once per
// distinct path that reaches it. It is not used by Eval or Backward and
// exists only as a diagnostic/pedagogical utility for inspecting how many
// times a node would be reached along every path from root.
func TopoSortRevisit[E Element[E]](root *Value[E]) []*Value[E] {
	order := make([]*Value[E], 0)

	var visit func(v *Value[E])

	visit = func(v *Value[E]) {
		for _, dep := range v.deps {
			visit(dep)
		}

		order = append(order, v)
	}

	visit(root)

	return order
}

// topoSort is the unique-mode traversal used internally by Eval and
// Backward. See TopoSort for the exported equivalent.
func topoSort[E Element[E]](root *Value[E]) []*Value[E] {
	visited := make(map[int64]bool)
	order := make([]*Value[E], 0)

	var visit func(v *Value[E])

	visit = func(v *Value[E]) {
		if visited[v.id] {
			return
		}

		visited[v.id] = true

		for _, dep := range v.deps {
			visit(dep)
		}

		order = append(order, v)
	}

	visit(root)

	return order
}
