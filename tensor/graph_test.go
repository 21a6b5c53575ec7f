package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/go-autograd/graph"
	"github.com/ariaghora/go-autograd/numeric"
	"github.com/ariaghora/go-autograd/tensor"
)

var f64 = tensor.Element[float64]{Ops: numeric.Float64Ops{}}

func leaf(t *testing.T, shape []int, data []float64, requiresGrad bool) *graph.Value[*tensor.Bound[float64]] {
	t.Helper()

	tt, err := tensor.New(shape, data)
	require.NoError(t, err)

	return graph.Leaf[*tensor.Bound[float64]](f64.Wrap(tt), requiresGrad)
}

// TestDotGradientMatchesTransposeFormula reproduces the spec's concrete Dot
// scenario: x is (2,2), y is (2,1), z = x.dot(y) is (2,1) -- a non-scalar
// root, whose backward seed is ones of its own shape, not a reduction to a
// scalar loss.
func TestDotGradientMatchesTransposeFormula(t *testing.T) {
	x := leaf(t, []int{2, 2}, []float64{1, 1, 2, 2}, true)
	y := leaf(t, []int{2, 1}, []float64{3, 5}, true)

	z := graph.Dot(x, y)

	require.NoError(t, graph.Backward(z))

	out, ok := z.Data()
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, out.Unwrap().Shape())
	assert.Equal(t, []float64{8, 16}, out.Unwrap().Data())

	xGrad, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{3, 5, 3, 5}, xGrad.Unwrap().Data())

	yGrad, ok := y.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{3, 3}, yGrad.Unwrap().Data())
}

func TestAddBackwardOnEqualShapes(t *testing.T) {
	x := leaf(t, []int{2}, []float64{2, 2}, true)

	z := graph.Add(x, x)

	require.NoError(t, graph.Backward(z))

	grad, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, []float64{2, 2}, grad.Unwrap().Data())
}

// TestMulBroadcastGradientUnreducesToInputShape reproduces the spec's
// broadcast scenario: x is (1,3), y is (2,3), z = x*y; x's gradient must
// come back with x's original shape, not z's broadcasted shape.
func TestMulBroadcastGradientUnreducesToInputShape(t *testing.T) {
	x := leaf(t, []int{1, 3}, []float64{1, 2, 3}, true)
	y := leaf(t, []int{2, 3}, []float64{1, 1, 1, 1, 1, 1}, false)

	z := graph.Mul(x, y)

	require.NoError(t, graph.Backward(z))

	grad, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, []int{1, 3}, grad.Unwrap().Shape())
	assert.Equal(t, []float64{2, 2, 2}, grad.Unwrap().Data())
}

func TestSubAndDivBackward(t *testing.T) {
	a := leaf(t, []int{2}, []float64{10, 20}, true)
	b := leaf(t, []int{2}, []float64{2, 4}, true)

	z := graph.Div(graph.Sub(a, b), b)

	require.NoError(t, graph.Backward(z))

	aGrad, ok := a.Grad()
	require.True(t, ok)
	// d/da[(a-b)/b] = 1/b
	assert.InDelta(t, 0.5, aGrad.Unwrap().Data()[0], 1e-9)
	assert.InDelta(t, 0.25, aGrad.Unwrap().Data()[1], 1e-9)

	bGrad, ok := b.Grad()
	require.True(t, ok)
	// d/db[(a-b)/b] = -a/b^2
	assert.InDelta(t, -2.5, bGrad.Unwrap().Data()[0], 1e-9)
	assert.InDelta(t, -1.25, bGrad.Unwrap().Data()[1], 1e-9)
}

func TestResetGradOnTensorLeaf(t *testing.T) {
	x := leaf(t, []int{2}, []float64{1, 2}, true)
	y := leaf(t, []int{2}, []float64{3, 4}, false)
	z := graph.Add(x, y)

	require.NoError(t, graph.Backward(z))

	_, ok := x.Grad()
	require.True(t, ok)

	z.ResetGrad()

	_, ok = x.Grad()
	assert.False(t, ok)
}

// TestResetGradWalksReachableTensorNodes mirrors spec §8.6 on a tensor
// graph: ResetGrad on a node reachable from several interior nodes must
// clear every one of them, not just the node it's called on.
func TestResetGradWalksReachableTensorNodes(t *testing.T) {
	x := leaf(t, []int{2}, []float64{1, 2}, true)
	y := leaf(t, []int{2}, []float64{3, 4}, true)
	inner := graph.Add(x, y)
	root := graph.Mul(inner, inner)

	require.NoError(t, graph.Backward(root))

	_, ok := inner.Grad()
	require.True(t, ok)
	_, ok = x.Grad()
	require.True(t, ok)

	root.ResetGrad()

	_, ok = inner.Grad()
	assert.False(t, ok)
	_, ok = x.Grad()
	assert.False(t, ok)
	_, ok = y.Grad()
	assert.False(t, ok)
}

func TestBroadcastShapeMismatchMatchesSentinel(t *testing.T) {
	a, _ := tensor.New([]int{2, 3}, nil)
	b, _ := tensor.New([]int{2, 4}, nil)

	_, err := tensor.Add(a, b, numeric.Float64Ops{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrShapeMismatch))
}

func TestDotRankMismatchMatchesSentinel(t *testing.T) {
	a, _ := tensor.New([]int{2}, []float64{1, 2})
	b, _ := tensor.New([]int{2}, []float64{1, 2})

	_, err := tensor.Dot(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDotRankMismatch))

	c, _ := tensor.New([]int{2, 3}, nil)
	d, _ := tensor.New([]int{4, 2}, nil)

	_, err = tensor.Dot(c, d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDotRankMismatch))
}
