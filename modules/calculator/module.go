package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/mohitsahu0302/scientificcalculator/events"
)

// ServiceCalculate is the request-reply service name.
// On the bus it is exposed as services.calculator.calculate.
const ServiceCalculate = "calculate"

// CalculatorModule dispatches calculate requests to the calculator engine.
type CalculatorModule struct {
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalculatorModule)(nil)
	_ mono.ServiceProviderModule = (*CalculatorModule)(nil)
	_ mono.EventEmitterModule    = (*CalculatorModule)(nil)
)

// NewModule creates a new CalculatorModule.
func NewModule(logger types.Logger) *CalculatorModule {
	return &CalculatorModule{logger: logger}
}

// Name returns the module name.
func (m *CalculatorModule) Name() string {
	return "calculator"
}

// SetEventBus receives the event bus from the framework.
func (m *CalculatorModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CalculatorModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CalculationPerformedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *CalculatorModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCalculate, json.Unmarshal, json.Marshal, m.calculate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCalculate, err)
	}

	m.logger.Info("Registered services", "services", []string{"services.calculator." + ServiceCalculate})
	return nil
}

// Start initializes the calculator module.
func (m *CalculatorModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("Event bus not set, calculation events will not be published")
	}
	m.logger.Info("Calculator module started")
	return nil
}

// Stop stops the calculator module.
func (m *CalculatorModule) Stop(_ context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}
