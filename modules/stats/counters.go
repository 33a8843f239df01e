package stats

import (
	"maps"
	"sync"

	domain "github.com/mohitsahu0302/scientificcalculator/domain/calculator"
	"github.com/mohitsahu0302/scientificcalculator/events"
)

// unsupportedTag collects every tag the calculator does not recognise, so the
// per-tag map is bounded by the supported operations and functions.
const unsupportedTag = "unsupported"

// Counters aggregates calculation outcomes. It keeps no per-call history.
type Counters struct {
	mu        sync.RWMutex
	total     int64
	succeeded int64
	failed    map[string]int64
	byTag     map[string]int64
}

// NewCounters creates empty counters.
func NewCounters() *Counters {
	return &Counters{
		failed: make(map[string]int64),
		byTag:  make(map[string]int64),
	}
}

// Record counts one calculation.
func (c *Counters) Record(event events.CalculationPerformedEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	if event.Error == "" {
		c.succeeded++
	} else {
		kind := event.Kind
		if kind == "" {
			kind = "unknown"
		}
		c.failed[kind]++
	}
	if tag := event.Tag(); tag != "" {
		c.byTag[countedTag(event)]++
	}
}

// countedTag returns the tag the calculation was dispatched on, or
// unsupportedTag when the calculator would not accept it.
func countedTag(event events.CalculationPerformedEvent) string {
	if event.Operation != "" {
		if _, err := domain.LookupOperation(domain.Operation(event.Operation)); err != nil {
			return unsupportedTag
		}
		return event.Operation
	}
	if _, err := domain.LookupFunction(domain.Function(event.Function)); err != nil {
		return unsupportedTag
	}
	return event.Function
}

// Snapshot returns a copy of the current counters.
func (c *Counters) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Total:     c.total,
		Succeeded: c.succeeded,
		Failed:    maps.Clone(c.failed),
		ByTag:     maps.Clone(c.byTag),
	}
}
