package ident

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes the identifier as its text content, never its entry
// identity. encoding/json picks this up automatically, so an ID serializes as
// a plain JSON string.
func (id ID[Tag]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes by interning the recovered text in the default
// registry's domain for Tag. Identity is re-established fresh on every decode,
// which is what makes round trips across process restarts correct.
func (id *ID[Tag]) UnmarshalText(text []byte) error {
	*id = New[Tag](string(text))
	return nil
}

// MarshalYAML encodes the identifier as a YAML string scalar.
func (id ID[Tag]) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML decodes a YAML string scalar by interning it, mirroring
// UnmarshalText. yaml.v3 does not consult encoding.TextUnmarshaler, so the
// hook is implemented directly.
func (id *ID[Tag]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("ident: decode yaml scalar: %w", err)
	}
	*id = New[Tag](s)
	return nil
}
