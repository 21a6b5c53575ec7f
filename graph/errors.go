package graph

import "errors"

// Sentinel errors returned by the graph package. Wrap with fmt.Errorf("%w",
// ...) when adding context; callers can still match with errors.Is.
var (
	// ErrNotEvaluated is returned by Value.MustData when a node's data cell
	// is still empty because Eval has not visited it.
	ErrNotEvaluated = errors.New("graph: value has not been evaluated")

	// ErrShapeMismatch is returned (wrapped) by Eval or Backward when operand
	// shapes cannot be reconciled, including by broadcasting; operation
	// constructors do not check shapes. Element implementations (e.g. the tensor package) wrap
	// it with fmt.Errorf("%w", ...) at the point shapes are found
	// incompatible, so callers can match with errors.Is regardless of which
	// Element type raised it.
	ErrShapeMismatch = errors.New("graph: shape mismatch")

	// ErrUnsetLeaf is returned by Eval when it reaches a leaf node whose data
	// cell was never populated at construction.
	ErrUnsetLeaf = errors.New("graph: leaf value was never set")

	// ErrDotRankMismatch is returned when Dot is evaluated over operands
	// that are not both rank 2, or whose inner dimensions disagree. Element
	// implementations wrap it with fmt.Errorf("%w", ...) at the point the
	// rank or inner-dimension check fails.
	ErrDotRankMismatch = errors.New("graph: dot requires rank-2 operands with matching inner dimension")

	// ErrInvalidRequiresGradTarget is returned by SetRequiresGrad when called
	// on a non-leaf node; only leaves can be opted into gradient tracking
	// directly, since a non-leaf's requires_grad is derived from its deps.
	ErrInvalidRequiresGradTarget = errors.New("graph: set_requires_grad called on a non-leaf node")
)
