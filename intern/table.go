package intern

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrExhausted indicates the backing store reached its segment cap and cannot
// grow further. It is delivered via panic: exhaustion is not recoverable at the
// call site, and returning a half-minted handle would let it be misresolved
// later.
var ErrExhausted = errors.New("intern: backing store exhausted")

const (
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1

	// maxSegments caps the store at ~1G entries, far beyond any closed
	// identifier vocabulary.
	maxSegments = 1 << 20
)

// Table deduplicates strings and mints identity-compared handles for them.
//
// A Table pairs a dedup index (content -> existing handle) with an append-only
// backing store of entry segments. The insert path inside Intern is the only
// mutator; everything else reads immutable published entries.
//
// The zero value is not usable; create tables with NewTable.
type Table struct {
	name string

	mu    sync.RWMutex
	index map[string]Handle

	// segments is the backing store. Segments are fixed-size arrays allocated
	// once and never moved, so &segments[i][j] stays valid forever even as the
	// outer slice reallocates during growth.
	segments []*[segmentSize]entry

	// next is the slot assigned to the next new entry. Guarded by mu.
	next uint64

	// empty is the pre-interned empty-string handle, written once during
	// construction and immutable afterwards, so Default needs no lock.
	empty Handle

	metrics *tableMetrics
}

type entry struct {
	str  string
	slot uint64
}

// NewTable creates an empty table with the empty string pre-interned at slot 0.
func NewTable(opts ...Option) *Table {
	cfg := newConfig(opts)

	t := &Table{
		name:  cfg.name,
		index: make(map[string]Handle),
	}
	t.metrics = newTableMetrics(cfg.meterProvider, cfg.name, cfg.logger)

	t.empty = t.mint("")
	t.index[""] = t.empty
	t.metrics.entryMinted()

	return t
}

// Name returns the table name used for logging and metric attribution.
func (t *Table) Name() string {
	return t.name
}

// Intern returns the canonical handle for s, allocating a new entry on first
// sight of the content. For equal content it always returns the same handle,
// regardless of call order or concurrency: under racing first-time inserts
// exactly one allocation wins and every caller observes the winner.
//
// Intern panics with an error wrapping ErrExhausted if the backing store
// cannot grow.
func (t *Table) Intern(s string) Handle {
	t.mu.RLock()
	h, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		t.metrics.hit()
		return h
	}

	// Clone before taking the write lock so the table never retains a
	// caller's backing buffer (s may alias a larger byte slice).
	owned := strings.Clone(s)

	t.mu.Lock()
	// Double-check: another goroutine may have interned s between the read
	// unlock and here.
	if h, ok := t.index[owned]; ok {
		t.mu.Unlock()
		t.metrics.hit()
		return h
	}
	h = t.mint(owned)
	t.index[owned] = h
	t.mu.Unlock()

	t.metrics.miss()
	t.metrics.entryMinted()
	return h
}

// mint allocates the next slot and publishes the entry. Caller holds mu (or
// has exclusive access during construction).
func (t *Table) mint(s string) Handle {
	slot := t.next
	seg := int(slot >> segmentBits)
	if seg >= len(t.segments) {
		if seg >= maxSegments {
			panic(fmt.Errorf("%w: table %q is full", ErrExhausted, t.name))
		}
		t.segments = append(t.segments, new([segmentSize]entry))
	}

	e := &t.segments[seg][slot&segmentMask]
	e.str = s
	e.slot = slot
	t.next++

	return Handle{e: e}
}

// Resolve returns the exact content the handle was minted for, byte for byte.
// It never blocks: entries are immutable once published. Resolving a handle
// minted by a different table is a caller contract violation; the result is
// that table's content, not an error.
func (t *Table) Resolve(h Handle) string {
	return h.Resolve()
}

// Default returns the pre-interned empty-string handle. It performs no lookup
// and takes no lock.
func (t *Table) Default() Handle {
	return t.empty
}

// Len reports the number of distinct entries in the table, including the
// pre-interned empty string.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int(t.next)
}
