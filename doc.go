// Package internedid provides typed, interned string identifiers with
// pointer-cheap comparison.
//
// String identifiers (spell names, item keys, event types, state machine
// states) are compared constantly but created from a small, closed vocabulary.
// This module stores each distinct identifier exactly once per domain and
// hands out small handle values that compare and hash by identity, so equality
// checks cost a pointer comparison instead of a byte scan, no matter how long
// the text is.
//
// # Core Concepts
//
//   - Entry: the single canonical copy of one identifier's text. Entries are
//     immutable, never move, and live until process exit.
//   - Handle: a copyable reference to one entry. Handles compare by which
//     entry they point at, never by re-reading bytes.
//   - Domain: an isolated namespace of entries, one per identifier kind.
//     Domains are keyed by compile-time tag types, so mixing kinds is a type
//     error, not a runtime check.
//   - ID: a typed wrapper over a handle, instantiated once per domain tag.
//
// # Architecture
//
// The module is layered, leaf first:
//
//   - intern: the engine — dedup tables over append-only entry storage
//   - domain: one table per tag type, created lazily, never removed
//   - ident: generic typed identifiers with text/JSON/YAML serialization
//   - vocab: YAML vocabulary files preloaded into domains at startup
//
// This root package re-exports the surface most applications need.
//
// # Getting Started
//
// Declare one tag per identifier kind and alias the generic ID:
//
//	type spellTag struct{}
//	type SpellID = internedid.ID[spellTag]
//
//	spell := internedid.New[spellTag]("fireball")
//	again := internedid.New[spellTag]("fireball")
//
//	spell == again          // true: same entry, pointer comparison
//	spell.String()          // "fireball"
//
// # Serialization
//
// Identifiers always serialize as their text, never their identity. Identity
// is an artifact of one process run; text round-trips across restarts and
// machines, re-interning on decode.
//
// # Observability
//
// Tables record intern hit/miss counts and entry totals through OpenTelemetry
// meters, and registries log table creation through log/slog. Both default to
// the global providers and can be injected per registry.
package internedid
