// Package calculator implements the stateless calculator engine: arithmetic,
// trigonometric (degree based) and exponential operations.
package calculator

import (
	"errors"
	"math"
)

// Domain errors are raised for mathematically undefined inputs. Their
// messages are returned to callers verbatim.
var (
	ErrDivisionByZero   = errors.New("Error: Division by zero is not allowed.")
	ErrUndefinedTangent = errors.New("Error: Tangent is undefined for this angle.")
)

// Generic errors come from the underlying math primitives.
var (
	ErrMathDomain = errors.New("math domain error")
	ErrMathRange  = errors.New("math range error")
)

// Dispatch errors.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownFunction  = errors.New("unknown function")
)

// IsDomainError reports whether err is one of the named domain errors.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrUndefinedTangent)
}

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	return finite(a + b)
}

// Subtract returns a - b.
func Subtract(a, b float64) (float64, error) {
	return finite(a - b)
}

// Multiply returns a * b.
func Multiply(a, b float64) (float64, error) {
	return finite(a * b)
}

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return finite(a / b)
}

// Power returns base raised to exponent.
func Power(base, exponent float64) (float64, error) {
	if base == 0 && exponent < 0 {
		return 0, ErrMathDomain
	}
	result := math.Pow(base, exponent)
	switch {
	case math.IsNaN(result):
		return 0, ErrMathDomain
	case math.IsInf(result, 0):
		return 0, ErrMathRange
	}
	return result, nil
}

// Sin returns the sine of an angle given in degrees.
func Sin(degrees float64) (float64, error) {
	return math.Sin(radians(degrees)), nil
}

// Cos returns the cosine of an angle given in degrees.
func Cos(degrees float64) (float64, error) {
	return math.Cos(radians(degrees)), nil
}

// Tan returns the tangent of an angle given in degrees.
//
// Only angles whose remainder modulo 180 is exactly 90 or -90 are rejected.
// Angles that miss the exact comparison through rounding yield a very large
// finite value.
func Tan(degrees float64) (float64, error) {
	if rem := math.Mod(degrees, 180); rem == 90 || rem == -90 {
		return 0, ErrUndefinedTangent
	}
	return math.Tan(radians(degrees)), nil
}

// Exp returns e raised to x.
func Exp(x float64) (float64, error) {
	result := math.Exp(x)
	if math.IsInf(result, 1) {
		return 0, ErrMathRange
	}
	return result, nil
}

// finite rejects results that overflowed to ±Inf.
func finite(result float64) (float64, error) {
	if math.IsInf(result, 0) {
		return 0, ErrMathRange
	}
	return result, nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
