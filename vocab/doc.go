// Package vocab preloads closed identifier vocabularies from YAML.
//
// Interned identifiers work best with a known, bounded set of names: spell
// lists, item catalogs, state machine states. This package reads such
// vocabularies from a YAML document and warms the intern tables up front, so
// the hot path after startup is all dedup hits and no identifier appears for
// the first time mid-run.
//
// # File Format
//
//	domains:
//	  - name: spells
//	    terms:
//	      - fireball
//	      - energy_bolt
//	  - name: items
//	    terms:
//	      - health_potion
//
// # Usage
//
// Bind each YAML domain name to its compile-time tag, then load:
//
//	p := vocab.NewPreloader(domain.Default())
//	vocab.Bind[spellTag](p, "spells")
//	vocab.Bind[itemTag](p, "items")
//
//	f, err := os.Open("vocabulary.yaml")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	stats, err := p.Load(ctx, f)
//
// Domains load concurrently; interning the same term twice (within one file or
// across repeated loads) is harmless and collapses onto the existing entry.
package vocab
