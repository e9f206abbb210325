package internedid

import (
	"github.com/MolecularSadism/msg-interned-id/domain"
	"github.com/MolecularSadism/msg-interned-id/ident"
	"github.com/MolecularSadism/msg-interned-id/intern"
)

// Handle is a copyable, identity-compared reference to one interned entry.
// See the intern package for the full contract.
type Handle = intern.Handle

// Table deduplicates strings within one domain and mints handles for them.
type Table = intern.Table

// Registry owns one intern table per domain tag type.
type Registry = domain.Registry

// ID is a typed interned identifier; instantiate it once per tag type.
type ID[Tag any] = ident.ID[Tag]

// New interns s in the default registry's domain for Tag.
//
// Example:
//
//	type spellTag struct{}
//	type SpellID = internedid.ID[spellTag]
//
//	spell := internedid.New[spellTag]("fireball")
func New[Tag any](s string) ID[Tag] {
	return ident.New[Tag](s)
}

// Default returns the empty identifier for Tag without any lookup or insert.
func Default[Tag any]() ID[Tag] {
	return ident.Default[Tag]()
}

// NewRegistry creates a private registry for callers that want to own table
// lifetime explicitly (for example, one registry per test).
func NewRegistry(opts ...domain.Option) *Registry {
	return domain.NewRegistry(opts...)
}

// TableFor returns r's intern table for Tag, creating it on first use.
func TableFor[Tag any](r *Registry) *Table {
	return domain.TableFor[Tag](r)
}
