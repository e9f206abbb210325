package intern

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName identifies this package to OpenTelemetry.
const instrumentationName = "github.com/MolecularSadism/msg-interned-id/intern"

// tableMetrics records interning activity for one table. All methods are safe
// on a nil receiver so the hot path never branches on "metrics enabled".
type tableMetrics struct {
	lookups metric.Int64Counter
	entries metric.Int64UpDownCounter

	hitOpts   metric.AddOption
	missOpts  metric.AddOption
	tableOpts metric.AddOption
}

func newTableMetrics(mp metric.MeterProvider, table string, logger *slog.Logger) *tableMetrics {
	meter := mp.Meter(instrumentationName)

	lookups, err := meter.Int64Counter("intern.lookups",
		metric.WithDescription("Intern calls, partitioned by hit or miss."),
		metric.WithUnit("{lookup}"))
	if err != nil {
		logger.Warn("failed to create intern.lookups counter", "table", table, "error", err)
		return nil
	}

	entries, err := meter.Int64UpDownCounter("intern.entries",
		metric.WithDescription("Distinct entries held by the table."),
		metric.WithUnit("{entry}"))
	if err != nil {
		logger.Warn("failed to create intern.entries counter", "table", table, "error", err)
		return nil
	}

	tableAttr := attribute.String("table", table)
	return &tableMetrics{
		lookups:   lookups,
		entries:   entries,
		hitOpts:   metric.WithAttributes(tableAttr, attribute.String("result", "hit")),
		missOpts:  metric.WithAttributes(tableAttr, attribute.String("result", "miss")),
		tableOpts: metric.WithAttributes(tableAttr),
	}
}

func (m *tableMetrics) hit() {
	if m == nil {
		return
	}
	m.lookups.Add(context.Background(), 1, m.hitOpts)
}

func (m *tableMetrics) miss() {
	if m == nil {
		return
	}
	m.lookups.Add(context.Background(), 1, m.missOpts)
}

func (m *tableMetrics) entryMinted() {
	if m == nil {
		return
	}
	m.entries.Add(context.Background(), 1, m.tableOpts)
}
