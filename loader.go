package rumorph

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon file format:
//
//	entries:
//	  - lemma: книга
//	    pos: NOUN
//	    tag: [inan, femn]          # lexeme-wide grammemes
//	    weight: 1.0
//	    forms:
//	      - { form: книга, tag: [sing, nomn] }
//	      - { form: книги, tag: [sing, gent] }
//	      - { form: бежать, pos: INFN }      # per-form POS override
//
// Each form's tag set is the lexeme POS (or the form's override), the
// lexeme-wide grammemes, and the form's own grammemes, combined.

type lexiconFile struct {
	Entries []lexiconEntry `yaml:"entries"`
}

type lexiconEntry struct {
	Lemma  string        `yaml:"lemma"`
	POS    string        `yaml:"pos"`
	Tag    []string      `yaml:"tag"`
	Weight float64       `yaml:"weight"`
	Forms  []lexiconForm `yaml:"forms"`
}

type lexiconForm struct {
	Form string   `yaml:"form"`
	POS  string   `yaml:"pos"`
	Tag  []string `yaml:"tag"`
}

// OpenLexicon loads a YAML lexicon from path.
func OpenLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	lx, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lx, nil
}

// ParseLexicon reads a YAML lexicon from r and builds the in-memory
// Dictionary implementation.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file lexiconFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	lx := newLexicon()
	for i, e := range file.Entries {
		if e.Lemma == "" {
			return nil, fmt.Errorf("entry %d: missing lemma", i)
		}
		entryPOS := PartOfSpeech(e.POS)
		base := TagSet{}.WithGrammeme(e.POS)
		if base.POS == "" {
			return nil, fmt.Errorf("entry %d (%s): unknown pos %q", i, e.Lemma, e.POS)
		}
		for _, g := range e.Tag {
			base = base.WithGrammeme(g)
		}
		weight := e.Weight
		if weight == 0 {
			weight = 1.0
		}
		for j, f := range e.Forms {
			if f.Form == "" {
				return nil, fmt.Errorf("entry %d (%s): form %d is empty", i, e.Lemma, j)
			}
			tag := base
			if f.POS != "" {
				tag = tag.WithGrammeme(f.POS)
				if tag.POS == base.POS && PartOfSpeech(f.POS) != base.POS {
					return nil, fmt.Errorf("entry %d (%s): unknown form pos %q", i, e.Lemma, f.POS)
				}
			}
			for _, g := range f.Tag {
				tag = tag.WithGrammeme(g)
			}
			lx.add(e.Lemma, entryPOS, f.Form, tag, weight)
		}
	}
	return lx, nil
}
