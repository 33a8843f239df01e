package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationPerformedEvent is emitted after every calculate request,
// successful or not.
type CalculationPerformedEvent struct {
	ID          string    `json:"id"`
	Operation   string    `json:"operation,omitempty"`
	Function    string    `json:"function,omitempty"`
	Operand1    *float64  `json:"operand1,omitempty"`
	Operand2    *float64  `json:"operand2,omitempty"`
	Result      float64   `json:"result"`
	Error       string    `json:"error,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	PerformedAt time.Time `json:"performed_at"`
}

// Tag returns the operation or function the calculation was dispatched on.
func (e CalculationPerformedEvent) Tag() string {
	if e.Operation != "" {
		return e.Operation
	}
	return e.Function
}

// CalculationPerformedV1 is the typed event definition for calculations.
// Subject: events.calculator.v1.calculation-performed
var CalculationPerformedV1 = helper.EventDefinition[CalculationPerformedEvent](
	"calculator", "CalculationPerformed", "v1",
)
