package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// calculatorAdapter wraps ServiceContainer for type-safe cross-module communication.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a CalculatorPort backed by the calculate service.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	return &calculatorAdapter{container: container}
}

// Calculate runs a calculation via the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	var resp CalculateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceCalculate,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceCalculate, err)
	}
	return &resp, nil
}
