package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaghora/go-autograd/tensor"
)

func TestNewAndAt(t *testing.T) {
	tt, err := tensor.New([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	v, err := tt.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestNewRejectsMismatchedData(t *testing.T) {
	_, err := tensor.New([]int{2, 2}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestNewZeroFillsWhenDataNil(t *testing.T) {
	tt, err := tensor.New[float64]([]int{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, tt.Size())

	for _, v := range tt.Data() {
		assert.Equal(t, 0.0, v)
	}
}

func TestScalarTensorAt(t *testing.T) {
	tt, err := tensor.New([]int{}, []float64{42})
	require.NoError(t, err)

	v, err := tt.At()
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestSetOutOfBounds(t *testing.T) {
	tt, err := tensor.New([]int{2}, []float64{1, 2})
	require.NoError(t, err)

	err = tt.Set(9, 5)
	assert.Error(t, err)
}

func TestCopyDoesNotAlias(t *testing.T) {
	tt, err := tensor.New([]int{2}, []float64{1, 2})
	require.NoError(t, err)

	dup := tt.Copy()
	require.NoError(t, dup.Set(99, 0))

	orig, _ := tt.At(0)
	assert.Equal(t, 1.0, orig)
}

func TestReshapeInferredDimension(t *testing.T) {
	tt, err := tensor.New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	reshaped, err := tt.Reshape([]int{-1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, reshaped.Shape())
}

func TestReshapeRejectsSizeMismatch(t *testing.T) {
	tt, err := tensor.New([]int{2, 3}, nil)
	require.NoError(t, err)

	_, err = tt.Reshape([]int{4, 4})
	assert.Error(t, err)
}

func TestReshapeDoesNotAliasOriginal(t *testing.T) {
	tt, err := tensor.New([]int{4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	reshaped, err := tt.Reshape([]int{2, 2})
	require.NoError(t, err)
	require.NoError(t, reshaped.Set(99, 0, 0))

	v, _ := tt.At(0)
	assert.Equal(t, 1.0, v)
}

func TestSameShape(t *testing.T) {
	a, _ := tensor.New([]int{2, 3}, nil)
	b, _ := tensor.New([]int{2, 3}, nil)
	c, _ := tensor.New([]int{3, 2}, nil)

	assert.True(t, a.SameShape(b))
	assert.False(t, a.SameShape(c))
}
