package intern

import "cmp"

// Handle is a small, copyable reference to one interned entry.
//
// Two handles from the same table are equal (==) if and only if they were
// minted for equal content. Equality, map-key hashing, and Compare all operate
// on entry identity, never on string bytes, so they are O(1) regardless of
// content length.
//
// The zero Handle refers to no entry; it resolves to the empty string and is
// reported by IsZero. Prefer Table.Default, which returns the table's canonical
// empty-string handle and participates in identity comparison like any other
// minted handle.
//
// Handle identity is meaningful only within one process run and one table.
// Never persist or transmit a handle; persist the resolved text and re-intern
// it on the way back in.
type Handle struct {
	e *entry
}

// Resolve returns the content the handle refers to. The zero handle resolves
// to the empty string. Resolve never blocks and needs no synchronization.
func (h Handle) Resolve() string {
	if h.e == nil {
		return ""
	}
	return h.e.str
}

// String implements fmt.Stringer as the resolved content.
func (h Handle) String() string {
	return h.Resolve()
}

// IsZero reports whether the handle is the zero value, i.e. refers to no
// entry.
func (h Handle) IsZero() bool {
	return h.e == nil
}

// Compare orders handles by insertion slot within their table. The order is
// stable for the life of the process but is an implementation artifact: it
// reflects first-intern order, not content order, and differs between runs.
// Comparing handles from different tables is meaningless.
func (h Handle) Compare(o Handle) int {
	return cmp.Compare(h.slot(), o.slot())
}

func (h Handle) slot() uint64 {
	if h.e == nil {
		return 0
	}
	return h.e.slot
}
