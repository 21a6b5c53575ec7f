package numeric

import (
	"github.com/zerfoo/float16"
)

// Float16Ops provides the implementation of the Arithmetic interface for the float16.Float16 type.
type Float16Ops struct{}

// Add performs element-wise addition.
func (ops Float16Ops) Add(a, b float16.Float16) float16.Float16 {
	res, _ := float16.AddWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Sub performs element-wise subtraction.
func (ops Float16Ops) Sub(a, b float16.Float16) float16.Float16 {
	res, _ := float16.SubWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Mul performs element-wise multiplication.
func (ops Float16Ops) Mul(a, b float16.Float16) float16.Float16 {
	res, _ := float16.MulWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Div performs element-wise division.
func (ops Float16Ops) Div(a, b float16.Float16) float16.Float16 {
	res, _ := float16.DivWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Neg returns the additive inverse of x.
func (ops Float16Ops) Neg(x float16.Float16) float16.Float16 {
	zero := float16.FromFloat32(0)
	res, _ := float16.SubWithMode(zero, x, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// FromFloat32 converts a float32 to a float16.Float16.
func (ops Float16Ops) FromFloat32(f float32) float16.Float16 {
	return float16.FromFloat32(f)
}

// FromFloat64 converts a float64 to a float16.Float16.
func (ops Float16Ops) FromFloat64(f float64) float16.Float16 {
	return float16.FromFloat64(f)
}

// IsZero checks if the given float16.Float16 value is zero.
func (ops Float16Ops) IsZero(v float16.Float16) bool {
	return v.IsZero()
}

// One returns a float16.Float16 with value 1.
func (ops Float16Ops) One() float16.Float16 {
	return float16.FromFloat32(1)
}
