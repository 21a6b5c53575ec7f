package numeric

// Float32Ops provides the implementation of the Arithmetic interface for the float32 type.
type Float32Ops struct{}

// Add performs element-wise addition.
func (ops Float32Ops) Add(a, b float32) float32 { return a + b }

// Sub performs element-wise subtraction.
func (ops Float32Ops) Sub(a, b float32) float32 { return a - b }

// Mul performs element-wise multiplication.
func (ops Float32Ops) Mul(a, b float32) float32 { return a * b }

// Div performs element-wise division.
func (ops Float32Ops) Div(a, b float32) float32 { return a / b }

// Neg returns the additive inverse of x.
func (ops Float32Ops) Neg(x float32) float32 { return -x }

// FromFloat32 converts a float32 to a float32.
func (ops Float32Ops) FromFloat32(f float32) float32 { return f }

// FromFloat64 converts a float64 to a float32.
func (ops Float32Ops) FromFloat64(f float64) float32 { return float32(f) }

// IsZero checks if the given float32 value is zero.
func (ops Float32Ops) IsZero(v float32) bool { return v == 0 }

// One returns a float32 with value 1.
func (ops Float32Ops) One() float32 { return 1.0 }

// Float64Ops provides the implementation of the Arithmetic interface for the float64 type.
type Float64Ops struct{}

// Add performs element-wise addition.
func (ops Float64Ops) Add(a, b float64) float64 { return a + b }

// Sub performs element-wise subtraction.
func (ops Float64Ops) Sub(a, b float64) float64 { return a - b }

// Mul performs element-wise multiplication.
func (ops Float64Ops) Mul(a, b float64) float64 { return a * b }

// Div performs element-wise division.
func (ops Float64Ops) Div(a, b float64) float64 { return a / b }

// Neg returns the additive inverse of x.
func (ops Float64Ops) Neg(x float64) float64 { return -x }

// FromFloat32 converts a float32 to a float64.
func (ops Float64Ops) FromFloat32(f float32) float64 { return float64(f) }

// FromFloat64 converts a float64 to a float64.
func (ops Float64Ops) FromFloat64(f float64) float64 { return f }

// IsZero checks if the given float64 value is zero.
func (ops Float64Ops) IsZero(v float64) bool { return v == 0 }

// One returns a float64 with value 1.
func (ops Float64Ops) One() float64 { return 1.0 }
