package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32Ops(t *testing.T) {
	ops := Float32Ops{}

	assert.Equal(t, float32(5), ops.Add(2, 3))
	assert.Equal(t, float32(-1), ops.Sub(2, 3))
	assert.Equal(t, float32(6), ops.Mul(2, 3))
	assert.Equal(t, float32(2), ops.Div(6, 3))
	assert.Equal(t, float32(-2), ops.Neg(2))
	assert.Equal(t, float32(1), ops.One())
	assert.True(t, ops.IsZero(0))
	assert.False(t, ops.IsZero(1))
	assert.Equal(t, float32(1.5), ops.FromFloat64(1.5))
}

func TestFloat64Ops(t *testing.T) {
	ops := Float64Ops{}

	assert.Equal(t, 5.0, ops.Add(2, 3))
	assert.Equal(t, -1.0, ops.Sub(2, 3))
	assert.Equal(t, 6.0, ops.Mul(2, 3))
	assert.Equal(t, 2.0, ops.Div(6, 3))
	assert.Equal(t, -2.0, ops.Neg(2))
	assert.Equal(t, 1.0, ops.One())
	assert.True(t, ops.IsZero(0))
}

func TestFloat16Ops(t *testing.T) {
	ops := Float16Ops{}

	sum := ops.Add(ops.FromFloat32(2), ops.FromFloat32(3))
	assert.InDelta(t, 5.0, sum.ToFloat32(), 1e-2)

	assert.True(t, ops.IsZero(ops.FromFloat32(0)))
}

func TestFloat8Ops(t *testing.T) {
	ops := Float8Ops{}

	sum := ops.Add(ops.FromFloat32(2), ops.FromFloat32(3))
	assert.InDelta(t, 5.0, sum.ToFloat32(), 0.5)
}
