package vocab

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Common errors returned by vocabulary operations.
var (
	// ErrUnknownDomain is returned when a vocabulary file names a domain that
	// has not been bound to a tag.
	ErrUnknownDomain = errors.New("vocab: domain not bound")

	// ErrDuplicateDomain is returned when a domain name is bound twice on the
	// same preloader, or appears twice in one vocabulary file.
	ErrDuplicateDomain = errors.New("vocab: duplicate domain")

	// ErrInvalidVocabulary is returned when a vocabulary file fails
	// structural validation, e.g. a domain without a name.
	ErrInvalidVocabulary = errors.New("vocab: invalid vocabulary")
)

// File is a parsed vocabulary document.
type File struct {
	Domains []DomainVocab `yaml:"domains"`
}

// DomainVocab lists the identifier terms of one domain.
type DomainVocab struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

// Parse reads and validates a YAML vocabulary document. Every domain must have
// a non-empty name, and no name may appear twice.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("vocab: parse: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Domains))
	for i, d := range f.Domains {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: domain %d has no name", ErrInvalidVocabulary, i)
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", ErrDuplicateDomain, d.Name)
		}
		seen[d.Name] = struct{}{}
	}

	return &f, nil
}

// TermCount returns the total number of terms across all domains, duplicates
// included.
func (f *File) TermCount() int {
	var n int
	for _, d := range f.Domains {
		n += len(d.Terms)
	}
	return n
}
