// Package ident provides typed, interned string identifiers.
//
// ID is a generic newtype over an interned handle. Instantiating it with a
// tag type produces a distinct identifier kind backed by its own intern
// domain, replacing per-type boilerplate with a single type alias:
//
//	type spellTag struct{}
//	type SpellID = ident.ID[spellTag]
//
//	type itemTag struct{}
//	type ItemID = ident.ID[itemTag]
//
//	spell := ident.New[spellTag]("fireball")
//	fmt.Println(spell)             // fireball
//	fmt.Println(spell.String())    // fireball
//
// Identifier kinds cannot be mixed: SpellID and ItemID are different types,
// so assigning or comparing across kinds is a compile error, and equal text
// interned under different tags yields unrelated entries.
//
// # Comparison
//
// IDs of the same kind compare by entry identity in O(1):
//
//	a := ident.New[spellTag]("fireball")
//	b := ident.New[spellTag]("fireball")
//	a == b // true, pointer-sized comparison
//
// The zero ID behaves as the empty identifier. Use Equal rather than == when
// values may include zero IDs alongside explicitly interned empty strings;
// Equal treats the two as the same identifier.
//
// # Serialization
//
// IDs marshal as their text content and unmarshal by re-interning, for JSON
// (via encoding.TextMarshaler), YAML, and any other text-based codec. Entry
// identity is never written out: it is only meaningful inside one process run,
// so a persisted identifier round-trips by content across restarts and
// machines.
//
// Unmarshalling interns into the process-wide default registry. Applications
// that inject their own registry should construct IDs with NewIn and decode
// text into plain strings at the boundary.
package ident
