package intern

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InternDedup(t *testing.T) {
	table := NewTable(WithName("spells"))

	a := table.Intern("fireball")
	b := table.Intern("fireball")

	require.Equal(t, a, b)
	assert.Equal(t, "fireball", a.Resolve())
	assert.Equal(t, "fireball", b.Resolve())

	// Exactly one entry beyond the pre-interned empty string.
	assert.Equal(t, 2, table.Len())
}

func TestTable_InternDistinctness(t *testing.T) {
	table := NewTable()

	a := table.Intern("fireball")
	b := table.Intern("energy_bolt")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "fireball", a.Resolve())
	assert.Equal(t, "energy_bolt", b.Resolve())
	assert.Equal(t, 3, table.Len())
}

func TestTable_ResolveRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"simple", "fireball"},
		{"empty", ""},
		{"spaces and punctuation", "main quest: chapter 1!"},
		{"unicode", "ドラゴン"},
		{"non-utf8 bytes", string([]byte{0xff, 0xfe, 0x00, 0x41})},
		{"embedded nul", "a\x00b"},
		{"long", string(make([]byte, 64<<10))},
	}

	table := NewTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := table.Intern(tt.in)
			require.Equal(t, tt.in, h.Resolve())
			require.Equal(t, tt.in, table.Resolve(h))
		})
	}
}

func TestTable_InternClonesInput(t *testing.T) {
	table := NewTable()

	buf := []byte("goblin")
	h := table.Intern(string(buf))

	// Scribbling on the caller's buffer must not reach the entry.
	buf[0] = 'X'
	assert.Equal(t, "goblin", h.Resolve())
}

func TestTable_Default(t *testing.T) {
	table := NewTable()

	// Valid before any external intern.
	d := table.Default()
	require.False(t, d.IsZero())
	assert.Equal(t, "", d.Resolve())

	// Interning the empty string observes the pre-registered entry.
	assert.Equal(t, d, table.Intern(""))
	assert.Equal(t, 1, table.Len())
}

func TestTable_HandlesSurviveGrowth(t *testing.T) {
	table := NewTable()

	early := table.Intern("goblin")

	// Force several segment allocations.
	n := 3 * segmentSize
	for i := 0; i < n; i++ {
		table.Intern(fmt.Sprintf("entry_%d", i))
	}

	// The early handle still resolves and re-interning still lands on the
	// identical entry: growth never relocated it.
	assert.Equal(t, "goblin", early.Resolve())
	assert.Equal(t, early, table.Intern("goblin"))
	assert.Equal(t, n+2, table.Len())
}

func TestTable_ConcurrentInternSameContent(t *testing.T) {
	const (
		goroutines = 8
		calls      = 1000
	)

	table := NewTable()
	results := make([][]Handle, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			handles := make([]Handle, 0, calls)
			for i := 0; i < calls; i++ {
				handles = append(handles, table.Intern("goblin"))
			}
			results[g] = handles
		}(g)
	}
	wg.Wait()

	// Exactly one entry was created for "goblin".
	require.Equal(t, 2, table.Len())

	want := table.Intern("goblin")
	for g, handles := range results {
		for i, h := range handles {
			if h != want {
				t.Fatalf("goroutine %d call %d returned a different handle", g, i)
			}
		}
	}
}

func TestTable_ConcurrentInternMixedContent(t *testing.T) {
	const goroutines = 8

	table := NewTable()
	words := []string{"goblin", "orc", "troll", "kobold"}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				w := words[i%len(words)]
				if got := table.Intern(w).Resolve(); got != w {
					t.Errorf("intern(%q) resolved to %q", w, got)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(words)+1, table.Len())
}

func TestTable_Name(t *testing.T) {
	assert.Equal(t, "spells", NewTable(WithName("spells")).Name())
	assert.Equal(t, "default", NewTable().Name())
}
