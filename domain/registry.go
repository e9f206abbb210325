package domain

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/MolecularSadism/msg-interned-id/intern"
)

// Registry owns one intern table per tag type. Tables are created lazily and
// are never removed; a registry and everything it owns live until the registry
// is garbage, which for the default registry means process exit.
type Registry struct {
	// id distinguishes registry instances in log records when a process
	// carries more than one (the default registry plus test registries).
	id string

	mu     sync.RWMutex
	tables map[reflect.Type]*intern.Table

	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for table-creation debug records and passed
// down to the tables the registry creates. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider passed down to the
// tables the registry creates. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Registry) {
		r.meterProvider = mp
	}
}

// NewRegistry creates an empty registry. Most callers want Default; use
// NewRegistry when the registry's lifetime should be owned explicitly, such as
// in tests that need a fresh set of tables.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		id:            uuid.NewString(),
		tables:        make(map[reflect.Type]*intern.Table),
		logger:        slog.Default(),
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first call. It is
// the registry used by the ident package's convenience constructors and by
// deserialization.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// TableFor returns the registry's table for the tag type, creating it on first
// use. Every call with the same tag and registry returns the same table;
// distinct tags always get distinct tables.
func TableFor[Tag any](r *Registry) *intern.Table {
	key := reflect.TypeFor[Tag]()

	r.mu.RLock()
	t, ok := r.tables[key]
	r.mu.RUnlock()
	if ok {
		return t
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Double-check: another goroutine may have created the table between the
	// read unlock and here. Exactly one table per tag must ever exist.
	if t, ok := r.tables[key]; ok {
		return t
	}

	name := tagName(key)
	t = intern.NewTable(
		intern.WithName(name),
		intern.WithLogger(r.logger),
		intern.WithMeterProvider(r.meterProvider),
	)
	r.tables[key] = t

	r.logger.Debug("created intern table",
		"registry", r.id,
		"domain", name,
	)
	return t
}

// Len reports the number of domains the registry has created tables for.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// tagName derives a table name from the tag type. Named types use their bare
// name; unnamed types fall back to the full type string.
func tagName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
