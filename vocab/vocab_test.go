package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{
			name: "valid",
			in: `
domains:
  - name: spells
    terms: [fireball, energy_bolt]
  - name: items
    terms: [health_potion]
`,
		},
		{
			name: "domain without terms",
			in: `
domains:
  - name: spells
`,
		},
		{
			name: "empty document",
			in:   `domains: []`,
		},
		{
			name: "missing name",
			in: `
domains:
  - terms: [fireball]
`,
			wantErr: ErrInvalidVocabulary,
		},
		{
			name: "duplicate domain",
			in: `
domains:
  - name: spells
    terms: [fireball]
  - name: spells
    terms: [energy_bolt]
`,
			wantErr: ErrDuplicateDomain,
		},
		{
			name:    "malformed yaml",
			in:      `domains: [`,
			wantErr: nil, // yaml decode error, no sentinel
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.in))
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.name == "malformed yaml":
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.NotNil(t, f)
			}
		})
	}
}

func TestFile_TermCount(t *testing.T) {
	f, err := Parse(strings.NewReader(`
domains:
  - name: spells
    terms: [fireball, energy_bolt, fireball]
  - name: items
    terms: [health_potion]
`))
	require.NoError(t, err)

	assert.Equal(t, 4, f.TermCount())
	assert.Len(t, f.Domains, 2)
}
