package rumorph

// DictEntry is one candidate parse of a surface form as supplied by the
// dictionary: the lemma it belongs to, the tags of this particular form, and
// a relative weight among the candidates for the same form.
type DictEntry struct {
	Lemma  string
	Tag    TagSet
	Weight float64
}

// DictForm is one surface form inside a lexeme's paradigm.
type DictForm struct {
	Form string
	Tag  TagSet
}

// Dictionary is the word-parsing capability the analyzer is built on.
// Implementations hold a static dictionary and must be safe for concurrent
// read-only use. A word or lexeme that is simply not in the dictionary yields
// an empty slice and a nil error; a non-nil error means the dictionary itself
// failed and the analyzer treats it as unavailable.
type Dictionary interface {
	// Parses returns all candidate analyses of a surface form,
	// most likely first. The form is expected to be case-folded.
	Parses(word string) ([]DictEntry, error)

	// Lexeme returns every surface form in the paradigm of (lemma, pos).
	Lexeme(lemma string, pos PartOfSpeech) ([]DictForm, error)
}

// lexemeKey identifies a paradigm: finite verb forms, infinitives,
// participles and gerunds all live in one verb lexeme, and short forms and
// comparatives live in the adjective lexeme.
type lexemeKey struct {
	lemma string
	pos   PartOfSpeech
}

// lexemePOS maps a form-level POS to the POS its lexeme is stored under.
func lexemePOS(p PartOfSpeech) PartOfSpeech {
	switch p {
	case POSInfinitive, POSParticiple, POSParticipleShrt, POSGerund:
		return POSVerb
	case POSAdjectiveShort, POSComparative:
		return POSAdjective
	default:
		return p
	}
}

// Lexicon is an in-memory Dictionary built from a lexicon file.
// It is immutable after loading and safe for concurrent use.
type Lexicon struct {
	// entries maps folded surface form → candidate parses, file order.
	entries map[string][]DictEntry
	// lexemes maps (folded lemma, lexeme POS) → forms of the paradigm.
	lexemes map[lexemeKey][]DictForm
}

func newLexicon() *Lexicon {
	return &Lexicon{
		entries: make(map[string][]DictEntry),
		lexemes: make(map[lexemeKey][]DictForm),
	}
}

// add registers one surface form of a lexeme.
func (lx *Lexicon) add(lemma string, pos PartOfSpeech, form string, tag TagSet, weight float64) {
	folded := Fold(form)
	lx.entries[folded] = append(lx.entries[folded], DictEntry{
		Lemma:  lemma,
		Tag:    tag,
		Weight: weight,
	})
	key := lexemeKey{lemma: Fold(lemma), pos: lexemePOS(pos)}
	lx.lexemes[key] = append(lx.lexemes[key], DictForm{Form: form, Tag: tag})
}

// Parses implements Dictionary.
func (lx *Lexicon) Parses(word string) ([]DictEntry, error) {
	es := lx.entries[word]
	if len(es) == 0 {
		return nil, nil
	}
	out := make([]DictEntry, len(es))
	copy(out, es)
	return out, nil
}

// Lexeme implements Dictionary.
func (lx *Lexicon) Lexeme(lemma string, pos PartOfSpeech) ([]DictForm, error) {
	fs := lx.lexemes[lexemeKey{lemma: Fold(lemma), pos: lexemePOS(pos)}]
	if len(fs) == 0 {
		return nil, nil
	}
	out := make([]DictForm, len(fs))
	copy(out, fs)
	return out, nil
}

// Size returns the number of distinct surface forms in the lexicon.
func (lx *Lexicon) Size() int {
	return len(lx.entries)
}
