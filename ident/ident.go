package ident

import (
	"github.com/MolecularSadism/msg-interned-id/domain"
	"github.com/MolecularSadism/msg-interned-id/intern"
)

// ID is a typed interned identifier. The Tag type parameter selects the intern
// domain; IDs with different tags are different Go types and never share
// entries, even for identical text.
//
// ID is a small copyable value. IDs of one kind minted in one registry compare
// with == by entry identity and are valid map keys with identity hashing.
// The zero ID refers to no entry and behaves as the empty identifier.
type ID[Tag any] struct {
	h intern.Handle
}

// New interns s in the process-wide registry's domain for Tag and returns the
// resulting identifier. Calling New twice with equal text returns equal IDs.
func New[Tag any](s string) ID[Tag] {
	return NewIn[Tag](domain.Default(), s)
}

// NewIn is New against an explicitly owned registry. IDs from different
// registries belong to different tables and must not be compared.
func NewIn[Tag any](r *domain.Registry, s string) ID[Tag] {
	return ID[Tag]{h: domain.TableFor[Tag](r).Intern(s)}
}

// Default returns the empty-string identifier for Tag. It resolves the
// domain's pre-interned empty entry and performs no insert.
func Default[Tag any]() ID[Tag] {
	return ID[Tag]{h: domain.TableFor[Tag](domain.Default()).Default()}
}

// String returns the identifier's text. The zero ID returns "".
func (id ID[Tag]) String() string {
	return id.h.Resolve()
}

// IsZero reports whether the identifier is empty: either the zero ID or an
// interned empty string.
func (id ID[Tag]) IsZero() bool {
	return id.h.Resolve() == ""
}

// Handle returns the underlying intern handle.
func (id ID[Tag]) Handle() intern.Handle {
	return id.h
}

// Equal reports whether two identifiers refer to the same entry. Unlike ==,
// Equal treats the zero ID and an explicitly interned empty string as the same
// identifier.
func (id ID[Tag]) Equal(o ID[Tag]) bool {
	if id.h == o.h {
		return true
	}
	return id.h.Resolve() == "" && o.h.Resolve() == ""
}

// Compare orders identifiers by first-intern order within their domain. The
// order is stable within one process run only; it carries no relation to
// lexical content order.
func (id ID[Tag]) Compare(o ID[Tag]) int {
	return id.h.Compare(o.h)
}
