package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestApplyOperation(t *testing.T) {
	tests := []struct {
		name      string
		op        Operation
		a         float64
		b         float64
		want      float64
		wantError error
	}{
		{name: "add", op: OpAdd, a: 10, b: 5, want: 15},
		{name: "add negatives", op: OpAdd, a: -10, b: -5, want: -15},
		{name: "subtract", op: OpSubtract, a: 100, b: 42, want: 58},
		{name: "subtract to negative", op: OpSubtract, a: 5, b: 10, want: -5},
		{name: "multiply", op: OpMultiply, a: 7, b: 8, want: 56},
		{name: "multiply by zero", op: OpMultiply, a: 100, b: 0, want: 0},
		{name: "divide", op: OpDivide, a: 6, b: 3, want: 2},
		{name: "divide by zero", op: OpDivide, a: 5, b: 0, wantError: ErrDivisionByZero},
		{name: "divide zero by zero", op: OpDivide, a: 0, b: 0, wantError: ErrDivisionByZero},
		{name: "power", op: OpPower, a: 2, b: 10, want: 1024},
		{name: "power to zero", op: OpPower, a: 2, b: 0, want: 1},
		{name: "power of two and three", op: OpPower, a: 2, b: 3, want: 8},
		{name: "negative base fractional exponent", op: OpPower, a: -8, b: 0.5, wantError: ErrMathDomain},
		{name: "zero base negative exponent", op: OpPower, a: 0, b: -1, wantError: ErrMathDomain},
		{name: "power overflow", op: OpPower, a: 10, b: 400, wantError: ErrMathRange},
		{name: "add overflow", op: OpAdd, a: 1e308, b: 1e308, wantError: ErrMathRange},
		{name: "subtract overflow", op: OpSubtract, a: -1e308, b: 1e308, wantError: ErrMathRange},
		{name: "multiply overflow", op: OpMultiply, a: 1e200, b: 1e200, wantError: ErrMathRange},
		{name: "divide overflow", op: OpDivide, a: 1e308, b: 1e-10, wantError: ErrMathRange},
		{name: "unknown operation", op: "%", a: 1, b: 2, wantError: ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyOperation(tt.op, tt.a, tt.b)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyFunction(t *testing.T) {
	tests := []struct {
		name      string
		fn        Function
		x         float64
		want      float64
		wantError error
	}{
		{name: "sin 0", fn: FnSin, x: 0, want: 0},
		{name: "sin 90", fn: FnSin, x: 90, want: 1},
		{name: "sin 30", fn: FnSin, x: 30, want: 0.5},
		{name: "cos 0", fn: FnCos, x: 0, want: 1},
		{name: "cos 90", fn: FnCos, x: 90, want: 0},
		{name: "cos 180", fn: FnCos, x: 180, want: -1},
		{name: "tan 45", fn: FnTan, x: 45, want: 1},
		{name: "tan 0", fn: FnTan, x: 0, want: 0},
		{name: "tan 90", fn: FnTan, x: 90, wantError: ErrUndefinedTangent},
		{name: "tan -90", fn: FnTan, x: -90, wantError: ErrUndefinedTangent},
		{name: "tan 270", fn: FnTan, x: 270, wantError: ErrUndefinedTangent},
		{name: "tan -270", fn: FnTan, x: -270, wantError: ErrUndefinedTangent},
		{name: "exp 0", fn: FnExp, x: 0, want: 1},
		{name: "exp 1", fn: FnExp, x: 1, want: math.E},
		{name: "exp overflow", fn: FnExp, x: 1000, wantError: ErrMathRange},
		{name: "unknown function", fn: "log", x: 1, wantError: ErrUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyFunction(tt.fn, tt.x)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestTan_NearUndefinedAngleIsFinite(t *testing.T) {
	got, err := Tan(90.0000000001)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 0))
	assert.Greater(t, math.Abs(got), 1e9)
}

func TestPower_SquareRoot(t *testing.T) {
	got, err := Power(2, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, tolerance)
}

func TestArithmeticProperties(t *testing.T) {
	values := []float64{0, 1, -1, 2.5, -3.75, 1e6, -1e-6, 42}

	for _, a := range values {
		for _, b := range values {
			sum1, _ := Add(a, b)
			sum2, _ := Add(b, a)
			assert.Equal(t, sum1, sum2, "add(%v, %v) should commute", a, b)

			diff1, _ := Subtract(a, b)
			diff2, _ := Subtract(b, a)
			assert.Equal(t, diff1, -diff2, "subtract(%v, %v) should be antisymmetric", a, b)

			prod1, _ := Multiply(a, b)
			prod2, _ := Multiply(b, a)
			assert.Equal(t, prod1, prod2, "multiply(%v, %v) should commute", a, b)

			if b == 0 {
				_, err := Divide(a, b)
				assert.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			quotient, err := Divide(a, b)
			require.NoError(t, err)
			assert.InDelta(t, a, quotient*b, 1e-9*math.Max(1, math.Abs(a)))
		}
	}
}

func TestMultiply_Associative(t *testing.T) {
	values := []float64{1.5, -2, 3.25, 10}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				ab, _ := Multiply(a, b)
				left, _ := Multiply(ab, c)
				bc, _ := Multiply(b, c)
				right, _ := Multiply(a, bc)
				assert.InDelta(t, left, right, 1e-9)
			}
		}
	}
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrDivisionByZero))
	assert.True(t, IsDomainError(ErrUndefinedTangent))
	assert.False(t, IsDomainError(ErrMathDomain))
	assert.False(t, IsDomainError(ErrMathRange))
	assert.False(t, IsDomainError(errors.New("other")))
}

func TestLookup_ErrorNamesTag(t *testing.T) {
	_, err := LookupOperation("mod")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"mod"`)

	_, err = LookupFunction("sqrt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sqrt"`)
}
