package api

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mohitsahu0302/scientificcalculator/modules/calculator"
)

// Error messages produced by the HTTP layer.
const (
	msgInvalidBody        = "Error: Invalid request body."
	msgServiceUnavailable = "Error: Calculator service unavailable."
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Post("/calculate", m.calculate)
}

// calculate handles POST /calculate.
func (m *APIModule) calculate(c *fiber.Ctx) error {
	var body CalculateBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msgInvalidBody})
	}

	operand1, err := parseOperand(body.Operand1, "operand1")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	operand2, err := parseOperand(body.Operand2, "operand2")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	resp, err := m.calculator.Calculate(c.UserContext(), &calculator.CalculateRequest{
		Operand1:  operand1,
		Operand2:  operand2,
		Operation: body.Operation,
		Function:  body.Function,
	})
	if err != nil {
		m.logger.Error("Calculator call failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: msgServiceUnavailable})
	}

	if resp.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: resp.Error})
	}
	return c.JSON(ResultResponse{Result: resp.Result})
}

// parseOperand decodes an optional numeric operand. Absent and null are nil.
func parseOperand(raw json.RawMessage, field string) (*float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("Error: %s must be a number.", field)
	}
	return &value, nil
}
