package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"

	domain "github.com/mohitsahu0302/scientificcalculator/domain/calculator"
	"github.com/mohitsahu0302/scientificcalculator/events"
)

// calculationErrorPrefix is prepended to failures that are not named domain errors.
const calculationErrorPrefix = "Calculation error: "

// validationError is a malformed request. Its message is returned verbatim.
type validationError struct {
	message string
}

func (e *validationError) Error() string {
	return e.message
}

// Validation errors.
var (
	errMissingTag      = &validationError{message: "Error: Either operation or function is required."}
	errMissingOperand1 = &validationError{message: "Error: operand1 is required."}
	errMissingOperand2 = &validationError{message: "Error: operand2 is required for binary operations."}
)

// calculate handles the calculator.calculate service request.
// Calculation failures are returned in the response, not as Go errors.
func (m *CalculatorModule) calculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	resp := Evaluate(req)
	if resp.Failed() {
		m.logger.Debug("Calculation failed",
			"operation", req.Operation,
			"function", req.Function,
			"kind", resp.Kind,
			"error", resp.Error)
	}

	m.publishCalculation(req, resp)
	return resp, nil
}

// Evaluate dispatches req to the calculator engine and maps the outcome to a
// response. It has no side effects.
func Evaluate(req CalculateRequest) CalculateResponse {
	result, err := dispatch(req)
	if err != nil {
		kind, message := describeError(err)
		return CalculateResponse{Error: message, Kind: kind}
	}
	return CalculateResponse{Result: result}
}

// dispatch applies the precedence rule: operation first, then function.
func dispatch(req CalculateRequest) (float64, error) {
	switch {
	case req.Operation != "":
		fn, err := domain.LookupOperation(domain.Operation(req.Operation))
		if err != nil {
			return 0, &validationError{message: fmt.Sprintf("Error: Unsupported operation %q.", req.Operation)}
		}
		if req.Operand1 == nil {
			return 0, errMissingOperand1
		}
		if req.Operand2 == nil {
			return 0, errMissingOperand2
		}
		return fn(*req.Operand1, *req.Operand2)

	case req.Function != "":
		fn, err := domain.LookupFunction(domain.Function(req.Function))
		if err != nil {
			return 0, &validationError{message: fmt.Sprintf("Error: Unsupported function %q.", req.Function)}
		}
		if req.Operand1 == nil {
			return 0, errMissingOperand1
		}
		return fn(*req.Operand1)

	default:
		return 0, errMissingTag
	}
}

// describeError classifies err and builds the message returned to callers.
func describeError(err error) (ErrorKind, string) {
	var vErr *validationError
	switch {
	case errors.As(err, &vErr):
		return KindValidation, vErr.message
	case domain.IsDomainError(err):
		return KindDomain, err.Error()
	default:
		return KindCalculation, calculationErrorPrefix + err.Error()
	}
}

// publishCalculation emits CalculationPerformed. Publishing is best-effort.
func (m *CalculatorModule) publishCalculation(req CalculateRequest, resp CalculateResponse) {
	if m.eventBus == nil {
		return
	}

	event := events.CalculationPerformedEvent{
		ID:          uuid.New().String(),
		Operation:   req.Operation,
		Function:    req.Function,
		Operand1:    req.Operand1,
		Operand2:    req.Operand2,
		Result:      resp.Result,
		Error:       resp.Error,
		Kind:        string(resp.Kind),
		PerformedAt: time.Now(),
	}
	if err := events.CalculationPerformedV1.Publish(m.eventBus, event, nil); err != nil {
		m.logger.Warn("Failed to publish CalculationPerformed event", "id", event.ID, "error", err)
	}
}
