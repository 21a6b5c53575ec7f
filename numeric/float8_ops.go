package numeric

import (
	"github.com/zerfoo/float8"
)

// Float8Ops provides the implementation of the Arithmetic interface for the float8.Float8 type.
type Float8Ops struct{}

// Add performs element-wise addition.
func (ops Float8Ops) Add(a, b float8.Float8) float8.Float8 { return float8.Add(a, b) }

// Sub performs element-wise subtraction.
func (ops Float8Ops) Sub(a, b float8.Float8) float8.Float8 { return float8.Sub(a, b) }

// Mul performs element-wise multiplication.
func (ops Float8Ops) Mul(a, b float8.Float8) float8.Float8 { return float8.Mul(a, b) }

// Div performs element-wise division.
func (ops Float8Ops) Div(a, b float8.Float8) float8.Float8 { return float8.Div(a, b) }

// Neg returns the additive inverse of x.
func (ops Float8Ops) Neg(x float8.Float8) float8.Float8 {
	return float8.Sub(float8.ToFloat8(0), x)
}

// FromFloat32 converts a float32 to a float8.Float8.
func (ops Float8Ops) FromFloat32(f float32) float8.Float8 { return float8.ToFloat8(f) }

// FromFloat64 converts a float64 to a float8.Float8.
func (ops Float8Ops) FromFloat64(f float64) float8.Float8 { return float8.FromFloat64(f) }

// IsZero checks if the given float8.Float8 value is zero.
func (ops Float8Ops) IsZero(v float8.Float8) bool { return v.IsZero() }

// One returns a float8.Float8 with value 1.
func (ops Float8Ops) One() float8.Float8 { return float8.ToFloat8(1.0) }
