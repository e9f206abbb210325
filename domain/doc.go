// Package domain partitions interned identifiers into isolated namespaces,
// one per compile-time tag type.
//
// A Registry owns one intern.Table per tag. Tags are ordinary Go types used
// only as type parameters, typically empty structs:
//
//	type SpellTag struct{}
//	type ItemTag struct{}
//
//	spells := domain.TableFor[SpellTag](domain.Default())
//	items := domain.TableFor[ItemTag](domain.Default())
//
//	a := spells.Intern("fireball")
//	b := items.Intern("fireball")
//	// a and b come from disjoint tables and are never equal, even though
//	// the text matches.
//
// Because the partition key is a type, mixing identifier kinds is a compile
// error at the call site that would confuse them, not a runtime check. Two
// distinct tag types can never resolve to the same table.
//
// # Lifecycle
//
// Tables are created lazily on first use and live until process exit; there is
// no removal. The process-wide registry returned by Default covers the common
// case. Construct a private registry with NewRegistry when lifetime or
// isolation must be explicit, for example one registry per test.
//
// # Thread Safety
//
// All registry operations are safe for concurrent use. Tables in one domain
// share no state with any other domain, so contention in one never slows
// another.
package domain
