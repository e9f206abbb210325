package vocab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/MolecularSadism/msg-interned-id/domain"
	"github.com/MolecularSadism/msg-interned-id/intern"
)

// instrumentationName identifies this package to OpenTelemetry.
const instrumentationName = "github.com/MolecularSadism/msg-interned-id/vocab"

// Preloader warms intern tables from vocabulary files. Bind maps each YAML
// domain name to a tag's table; Load then interns every listed term.
type Preloader struct {
	registry *domain.Registry

	mu     sync.RWMutex
	tables map[string]*intern.Table

	logger *slog.Logger
	tracer trace.Tracer
}

// PreloaderOption configures a Preloader.
type PreloaderOption func(*Preloader)

// WithLogger sets a custom logger for load progress records.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) PreloaderOption {
	return func(p *Preloader) {
		p.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for load spans. If not provided, a
// tracer from the global provider is used.
func WithTracer(tracer trace.Tracer) PreloaderOption {
	return func(p *Preloader) {
		p.tracer = tracer
	}
}

// NewPreloader creates a preloader that interns into reg's tables.
func NewPreloader(reg *domain.Registry, opts ...PreloaderOption) *Preloader {
	p := &Preloader{
		registry: reg,
		tables:   make(map[string]*intern.Table),
		logger:   slog.Default(),
		tracer:   otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Bind associates a vocabulary domain name with the table for Tag, creating
// the table if this is the tag's first use. Binding the same name twice
// returns ErrDuplicateDomain.
func Bind[Tag any](p *Preloader, name string) error {
	t := domain.TableFor[Tag](p.registry)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, dup := p.tables[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateDomain, name)
	}
	p.tables[name] = t
	return nil
}

// Stats summarizes one completed load.
type Stats struct {
	// Domains is the number of domains the file listed.
	Domains int

	// Terms is the number of terms interned, duplicates included.
	Terms int
}

// Load parses a vocabulary document and interns every term into its bound
// domain's table, one goroutine per domain. Every domain named by the file
// must have been bound first; an unknown name fails the whole load before any
// interning starts.
//
// Loading is idempotent: terms already present dedup onto their existing
// entries, so repeated loads of the same file only touch the index.
func (p *Preloader) Load(ctx context.Context, r io.Reader) (Stats, error) {
	ctx, span := p.tracer.Start(ctx, "vocab.Load")
	defer span.End()

	f, err := Parse(r)
	if err != nil {
		return Stats{}, err
	}

	// Resolve all bindings up front so a late unknown domain cannot leave the
	// load half applied.
	tables := make([]*intern.Table, len(f.Domains))
	p.mu.RLock()
	for i, d := range f.Domains {
		t, ok := p.tables[d.Name]
		if !ok {
			p.mu.RUnlock()
			return Stats{}, fmt.Errorf("%w: %q", ErrUnknownDomain, d.Name)
		}
		tables[i] = t
	}
	p.mu.RUnlock()

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range f.Domains {
		table := tables[i]
		terms := d.Terms
		g.Go(func() error {
			for _, term := range terms {
				if err := ctx.Err(); err != nil {
					return err
				}
				table.Intern(term)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("vocab: load: %w", err)
	}

	stats := Stats{
		Domains: len(f.Domains),
		Terms:   f.TermCount(),
	}

	span.SetAttributes(
		attribute.Int("vocab.domains", stats.Domains),
		attribute.Int("vocab.terms", stats.Terms),
	)
	p.logger.Info("vocabulary loaded",
		"domains", stats.Domains,
		"terms", stats.Terms,
	)

	return stats, nil
}
