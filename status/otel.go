package status

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/ironrift/status"

// Meter returns the meter from the global provider, no-op unless the host installs one
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Bridge exports registry values as observable gauges, one series per key
type Bridge struct {
	reg          *Registry
	gauge        metric.Int64ObservableGauge
	registration metric.Registration
}

// NewBridge registers a gauge callback reading reg on every collection
func NewBridge(reg *Registry, m metric.Meter) (*Bridge, error) {
	b := &Bridge{reg: reg}

	var err error
	b.gauge, err = m.Int64ObservableGauge(
		"ironrift.status",
		metric.WithDescription("Simulation status registry values"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating status gauge: %w", err)
	}

	b.registration, err = m.RegisterCallback(b.observe, b.gauge)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}

	return b, nil
}

func (b *Bridge) observe(_ context.Context, o metric.Observer) error {
	for key, v := range b.reg.Snapshot() {
		o.ObserveInt64(b.gauge, v, metric.WithAttributes(attribute.String("metric", key)))
	}
	return nil
}

// Close unregisters the callback
func (b *Bridge) Close() error {
	if b.registration == nil {
		return nil
	}
	return b.registration.Unregister()
}
