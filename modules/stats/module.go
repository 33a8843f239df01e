package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/mohitsahu0302/scientificcalculator/events"
)

// ServiceGetStats is the request-reply service name.
const ServiceGetStats = "get-stats"

// StatsModule consumes CalculationPerformed events and keeps counters.
type StatsModule struct {
	counters *Counters
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*StatsModule)(nil)
	_ mono.EventConsumerModule   = (*StatsModule)(nil)
	_ mono.ServiceProviderModule = (*StatsModule)(nil)
	_ mono.HealthCheckableModule = (*StatsModule)(nil)
)

// NewModule creates a new StatsModule.
func NewModule(logger types.Logger) *StatsModule {
	return &StatsModule{
		counters: NewCounters(),
		logger:   logger,
	}
}

// Name returns the module name.
func (m *StatsModule) Name() string {
	return "stats"
}

// RegisterEventConsumers subscribes to calculator events.
func (m *StatsModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(
		registry, events.CalculationPerformedV1, m.handleCalculationPerformed, m,
	); err != nil {
		return fmt.Errorf("failed to register CalculationPerformed consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"CalculationPerformed.v1"})
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *StatsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGetStats, json.Unmarshal, json.Marshal, m.getStats,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGetStats, err)
	}

	m.logger.Info("Registered services", "services", []string{"services.stats." + ServiceGetStats})
	return nil
}

func (m *StatsModule) handleCalculationPerformed(_ context.Context, event events.CalculationPerformedEvent, _ *mono.Msg) error {
	m.counters.Record(event)
	m.logger.Debug("Recorded calculation",
		"id", event.ID,
		"tag", event.Tag(),
		"kind", event.Kind)
	return nil
}

func (m *StatsModule) getStats(_ context.Context, _ GetStatsRequest, _ *mono.Msg) (Snapshot, error) {
	return m.counters.Snapshot(), nil
}

// Health reports the module status with the current totals.
func (m *StatsModule) Health(_ context.Context) mono.HealthStatus {
	snapshot := m.counters.Snapshot()
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"total":     snapshot.Total,
			"succeeded": snapshot.Succeeded,
		},
	}
}

// Start initializes the stats module.
func (m *StatsModule) Start(_ context.Context) error {
	m.logger.Info("Stats module started - listening for calculation events")
	return nil
}

// Stop stops the stats module.
func (m *StatsModule) Stop(_ context.Context) error {
	m.logger.Info("Stats module stopped")
	return nil
}
