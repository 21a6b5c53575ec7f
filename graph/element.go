// Package graph implements the dynamic computation graph at the heart of the
// autograd engine: Value nodes linked into a DAG by the operation that
// produced them, a topological evaluator, and a reverse-mode backward pass
// that accumulates gradients into each node's grad cell.
package graph

// Element is the capability an engine element type E must provide for
// Value[E] to support forward evaluation and reverse-mode differentiation.
// Both plain scalars (see the scalar package) and n-dimensional tensors (see
// the tensor package) satisfy Element, which is what lets the same Value
// machinery drive both without duplicating the DAG/eval/backward logic.
type Element[E any] interface {
	// Add, Sub, Mul, Div, Neg implement the elementwise arithmetic operations
	// a Value's forward pass and backward handlers are built from. Add/Sub/
	// Mul/Div are expected to broadcast shapes the way the underlying engine
	// defines broadcasting; scalars trivially "broadcast" since they have no
	// shape to mismatch.
	Add(other E) (E, error)
	Sub(other E) (E, error)
	Mul(other E) (E, error)
	Div(other E) (E, error)
	Neg() (E, error)

	// Dot implements the contraction used by the Dot operation: matrix
	// product for rank-2 tensors, plain multiplication for scalars.
	Dot(other E) (E, error)

	// Shape reports the element's shape. Scalars report an empty shape.
	Shape() []int

	// Transpose reverses the element's axis order, used by Dot's backward
	// handler. Scalars return themselves unchanged.
	Transpose() (E, error)

	// SumAxis reduces along axis by summation, dropping that axis from the
	// result (rank decreases by one). Used during un-broadcasting of
	// gradients flowing back through a broadcasted operation.
	SumAxis(axis int) (E, error)

	// Reshape returns a copy of the element with a new shape of the same
	// total size. Used to reinsert a size-1 axis after SumAxis collapses it,
	// when un-broadcasting needs to preserve rank.
	Reshape(shape []int) (E, error)

	// Zero returns an additive-identity element with the same shape as the
	// receiver, used to seed a node's grad accumulation cell.
	Zero() (E, error)

	// Ones returns an element with the same shape as the receiver filled
	// with the multiplicative identity, used to seed the gradient of the
	// node Backward is called on.
	Ones() (E, error)
}
