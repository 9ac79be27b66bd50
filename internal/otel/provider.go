package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Config holds OTel configuration
type Config struct {
	Enabled     bool
	ServiceName string
}

// Provider hands out meters for the allocator metrics.
type Provider struct {
	config        Config
	meterProvider metric.MeterProvider
}

// New creates a provider. When enabled it uses the globally registered
// MeterProvider, so whoever embeds the builder decides where metrics are
// exported; otherwise meters are no-ops.
func New(cfg Config) *Provider {
	p := &Provider{config: cfg}
	if cfg.Enabled {
		p.meterProvider = otel.GetMeterProvider()
	} else {
		p.meterProvider = noop.NewMeterProvider()
	}
	return p
}

// Meter returns a meter scoped to the service name.
func (p *Provider) Meter() metric.Meter {
	return p.meterProvider.Meter(p.config.ServiceName)
}

// Enabled returns whether OTel is enabled
func (p *Provider) Enabled() bool {
	return p.config.Enabled
}
