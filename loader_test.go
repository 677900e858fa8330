package rumorph

import (
	"strings"
	"testing"
)

func TestOpenLexicon(t *testing.T) {
	lx := loadTestLexicon(t)
	if lx.Size() == 0 {
		t.Fatal("loaded lexicon is empty")
	}

	entries, err := lx.Parses("книги")
	if err != nil {
		t.Fatalf("Parses: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("Parses('книги') found nothing")
	}
	e := entries[0]
	if e.Lemma != "книга" || e.Tag.POS != POSNoun {
		t.Errorf("entry = %+v, want lemma книга, POS NOUN", e)
	}
	// Lexeme-wide grammemes propagate onto every form.
	if e.Tag.Animacy != Inanimate || e.Tag.Gender != Feminine {
		t.Errorf("lexeme grammemes missing from form tag: %v", e.Tag)
	}
}

func TestOpenLexiconMissingFile(t *testing.T) {
	if _, err := OpenLexicon("testdata/no-such-lexicon.yaml"); err == nil {
		t.Fatal("OpenLexicon on a missing file returned nil error")
	}
}

func TestParseLexiconWeightDefault(t *testing.T) {
	const src = `
entries:
  - lemma: дом
    pos: NOUN
    forms:
      - { form: дом, tag: [sing, nomn] }
`
	lx, err := ParseLexicon(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLexicon: %v", err)
	}
	entries, _ := lx.Parses("дом")
	if len(entries) != 1 || entries[0].Weight != 1.0 {
		t.Errorf("entries = %+v, want one entry with weight 1.0", entries)
	}
}

func TestParseLexiconFormPOSOverride(t *testing.T) {
	const src = `
entries:
  - lemma: бежать
    pos: VERB
    tag: [impf, intr]
    forms:
      - { form: бежать, pos: INFN }
      - { form: бежит, tag: [sing, 3per, pres, indc] }
`
	lx, err := ParseLexicon(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseLexicon: %v", err)
	}

	entries, _ := lx.Parses("бежать")
	if len(entries) != 1 || entries[0].Tag.POS != POSInfinitive {
		t.Errorf("entries = %+v, want INFN override", entries)
	}
	if entries[0].Tag.Aspect != Imperfective {
		t.Errorf("lexeme grammemes lost on override: %v", entries[0].Tag)
	}

	// Both forms land in the single verb lexeme regardless of the override.
	forms, _ := lx.Lexeme("бежать", POSVerb)
	if len(forms) != 2 {
		t.Errorf("verb lexeme has %d forms, want 2", len(forms))
	}
}

func TestParseLexiconErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"missing lemma",
			`
entries:
  - pos: NOUN
    forms:
      - { form: дом }
`,
		},
		{
			"unknown entry pos",
			`
entries:
  - lemma: дом
    pos: SUBSTANTIVE
    forms:
      - { form: дом }
`,
		},
		{
			"unknown form pos",
			`
entries:
  - lemma: дом
    pos: NOUN
    forms:
      - { form: дом, pos: NOMEN }
`,
		},
		{
			"empty form",
			`
entries:
  - lemma: дом
    pos: NOUN
    forms:
      - { form: "" }
`,
		},
		{
			"malformed yaml",
			`entries: [`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLexicon(strings.NewReader(tt.src)); err == nil {
				t.Errorf("ParseLexicon accepted %s", tt.name)
			}
		})
	}
}
