package api

import "encoding/json"

// CalculateBody is the HTTP request body for POST /calculate.
// Operands are kept raw so non-numeric values can be reported per field.
type CalculateBody struct {
	Operand1  json.RawMessage `json:"operand1"`
	Operand2  json.RawMessage `json:"operand2"`
	Operation string          `json:"operation"`
	Function  string          `json:"function"`
}

// ResultResponse is the HTTP response for a successful calculation.
type ResultResponse struct {
	Result float64 `json:"result"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
