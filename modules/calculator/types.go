package calculator

import "context"

// ErrorKind classifies a failed calculation.
type ErrorKind string

// Error kinds carried in CalculateResponse.
const (
	KindDomain      ErrorKind = "domain"
	KindCalculation ErrorKind = "calculation"
	KindValidation  ErrorKind = "validation"
)

// CalculateRequest is the request for the calculate service.
// Operation takes precedence over Function when both are set.
type CalculateRequest struct {
	Operand1  *float64 `json:"operand1,omitempty"`
	Operand2  *float64 `json:"operand2,omitempty"`
	Operation string   `json:"operation,omitempty"`
	Function  string   `json:"function,omitempty"`
}

// CalculateResponse is the response from the calculate service.
// Error is empty on success.
type CalculateResponse struct {
	Result float64   `json:"result"`
	Error  string    `json:"error,omitempty"`
	Kind   ErrorKind `json:"kind,omitempty"`
}

// Failed reports whether the calculation produced an error.
func (r *CalculateResponse) Failed() bool {
	return r.Error != ""
}

// CalculatorPort defines the interface for calling the calculator module.
type CalculatorPort interface {
	Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error)
}
