// Package intern provides string interning with stable, identity-compared handles.
//
// A Table stores each distinct string exactly once and hands out Handle values
// that refer to the stored entry. Handles compare and hash by identity (which
// entry they point at), never by re-comparing string content, so equality checks
// on heavily repeated identifiers cost a single pointer comparison regardless of
// string length.
//
// # Usage
//
// Create a table and intern strings:
//
//	table := intern.NewTable(intern.WithName("spells"))
//
//	a := table.Intern("fireball")
//	b := table.Intern("fireball")
//
//	// a == b: both calls observe the same entry.
//	fmt.Println(a == b)        // true
//	fmt.Println(a.Resolve())   // "fireball"
//
// Handles are small, copyable values and are valid as map keys:
//
//	seen := map[intern.Handle]int{}
//	seen[a]++
//
// # Storage Guarantees
//
// Entries live in append-only fixed-size segments. Growth appends new segments
// and never moves or frees existing entries, so a Handle minted at any point
// remains valid and resolves to the identical content for the remaining life of
// the process. There is no eviction and no delete operation.
//
// The empty string is pre-interned in every table at construction, so
// Table.Default returns a valid handle without taking any lock.
//
// # Thread Safety
//
// All Table operations are safe for concurrent use. Intern takes a read lock on
// the hit path and a write lock with a double-check on the miss path, so
// concurrent first-time inserts of equal content resolve to a single winning
// entry. Resolve, handle equality, and hashing touch only immutable published
// data and never block.
//
// # Caveats
//
// Handle identity (and therefore ordering and hash values) is an artifact of
// one process run. Persist or transmit only the resolved text, never the
// handle; see the ident package for serialization helpers that follow this
// contract.
//
// Memory grows with the number of distinct strings and is never reclaimed.
// Intern closed vocabularies of identifiers, not arbitrary user input.
package intern
