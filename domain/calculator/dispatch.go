package calculator

import "fmt"

// Operation is a binary operation tag.
type Operation string

// Supported binary operations.
const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
	OpPower    Operation = "power"
)

// Function is a unary function tag.
type Function string

// Supported unary functions. Angles are in degrees.
const (
	FnSin Function = "sin"
	FnCos Function = "cos"
	FnTan Function = "tan"
	FnExp Function = "exp"
)

// BinaryFunc computes a result from two operands.
type BinaryFunc func(a, b float64) (float64, error)

// UnaryFunc computes a result from one operand.
type UnaryFunc func(x float64) (float64, error)

var operations = map[Operation]BinaryFunc{
	OpAdd:      Add,
	OpSubtract: Subtract,
	OpMultiply: Multiply,
	OpDivide:   Divide,
	OpPower:    Power,
}

var functions = map[Function]UnaryFunc{
	FnSin: Sin,
	FnCos: Cos,
	FnTan: Tan,
	FnExp: Exp,
}

// LookupOperation returns the engine function for op.
func LookupOperation(op Operation) (BinaryFunc, error) {
	fn, ok := operations[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
	return fn, nil
}

// LookupFunction returns the engine function for fn.
func LookupFunction(fn Function) (UnaryFunc, error) {
	f, ok := functions[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, string(fn))
	}
	return f, nil
}

// ApplyOperation evaluates the binary operation op on a and b.
func ApplyOperation(op Operation, a, b float64) (float64, error) {
	fn, err := LookupOperation(op)
	if err != nil {
		return 0, err
	}
	return fn(a, b)
}

// ApplyFunction evaluates the unary function fn on x.
func ApplyFunction(fn Function, x float64) (float64, error) {
	f, err := LookupFunction(fn)
	if err != nil {
		return 0, err
	}
	return f(x)
}
