package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/go-autograd/scalar"
)

func TestArithmetic(t *testing.T) {
	a := scalar.Scalar(3)
	b := scalar.Scalar(4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(7), sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(-1), diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(12), prod)

	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(0.75), quot)

	neg, err := a.Neg()
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(-3), neg)
}

func TestDotDegeneratesToMul(t *testing.T) {
	a := scalar.Scalar(3)
	b := scalar.Scalar(4)

	dot, err := a.Dot(b)
	require.NoError(t, err)

	mul, err := a.Mul(b)
	require.NoError(t, err)

	assert.Equal(t, mul, dot)
}

func TestTransposeIsIdentity(t *testing.T) {
	a := scalar.Scalar(5)

	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.Equal(t, a, tr)
}

func TestShapeIsEmpty(t *testing.T) {
	a := scalar.Scalar(5)
	assert.Equal(t, []int{}, a.Shape())
}

func TestSumAxisErrors(t *testing.T) {
	a := scalar.Scalar(5)

	_, err := a.SumAxis(0)
	assert.Error(t, err)
}

func TestReshapeOnlyAcceptsEmptyShape(t *testing.T) {
	a := scalar.Scalar(5)

	_, err := a.Reshape([]int{1})
	assert.Error(t, err)

	reshaped, err := a.Reshape([]int{})
	require.NoError(t, err)
	assert.Equal(t, a, reshaped)
}

func TestZeroAndOnes(t *testing.T) {
	a := scalar.Scalar(5)

	zero, err := a.Zero()
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(0), zero)

	one, err := a.Ones()
	require.NoError(t, err)
	assert.Equal(t, scalar.Scalar(1), one)
}
