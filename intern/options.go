package intern

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Table.
type Option func(*config)

type config struct {
	name          string
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

func newConfig(opts []Option) *config {
	cfg := &config{
		name:          "default",
		logger:        slog.Default(),
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithName sets the table name used in log records and metric attributes.
// Tables created through a domain registry are named after their tag type.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets a custom logger for the table.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used to record
// intern hit/miss counts and entry totals. If not provided, the global
// provider is used, which is a no-op unless the host process installs one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}
