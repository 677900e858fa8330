// Package rumorph provides Russian morphological analysis for a language
// learning reader: lemma derivation, grammatical classification, synthesis of
// full inflectional paradigms, and lemma-based vocabulary matching in free
// text.
//
// The package consumes an external dictionary capability through the
// Dictionary interface; it never builds dictionary data itself. An Analyzer
// constructed without a dictionary degrades to identity lemmatization instead
// of failing, so the surrounding application keeps working when the
// dictionary is not installed.
package rumorph

import "sort"

// Analysis is one candidate morphological parse of a word form.
// Analyses are immutable and produced fresh per Parse call.
type Analysis struct {
	// Word is the form as given to Parse, original casing preserved.
	Word string `json:"word"`
	// Lemma is the dictionary base form.
	Lemma string `json:"lemma"`
	// Tag holds the grammatical tags of this form.
	Tag TagSet `json:"tag"`
	// Confidence is the relative weight among candidates for the same word;
	// ties keep the dictionary's native ordering.
	Confidence float64 `json:"confidence"`
	// Synthetic marks the identity fallback produced when the dictionary is
	// unavailable or has no analysis for the word. A synthetic analysis is
	// never mixed with real ones.
	Synthetic bool `json:"synthetic,omitempty"`
}

// Analyzer wraps a Dictionary and exposes parse, lemmatize and inflect
// operations. It is immutable after construction and safe for concurrent use;
// hand one shared instance to all request handlers.
type Analyzer struct {
	dict Dictionary
}

// New returns an Analyzer backed by dict. A nil dict yields an analyzer in
// degraded mode: Parse returns the identity fallback and Inflect reports
// every form absent.
func New(dict Dictionary) *Analyzer {
	return &Analyzer{dict: dict}
}

// Available reports whether a dictionary is attached.
func (a *Analyzer) Available() bool {
	return a.dict != nil
}

// synthetic builds the degraded-mode identity analysis for word.
func synthetic(word string) []Analysis {
	return []Analysis{{
		Word:       word,
		Lemma:      Fold(word),
		Confidence: 1.0,
		Synthetic:  true,
	}}
}

// Parse returns the candidate analyses of word, most likely first.
// An empty or whitespace-only word yields nil. A word the dictionary cannot
// analyze, or any dictionary failure, yields the single synthetic identity
// analysis so that callers always get a usable lemma.
func (a *Analyzer) Parse(word string) []Analysis {
	word = NormalizeToken(word)
	if word == "" {
		return nil
	}
	if a.dict == nil {
		return synthetic(word)
	}

	entries, err := a.dict.Parses(Fold(word))
	if err != nil || len(entries) == 0 {
		return synthetic(word)
	}

	out := make([]Analysis, len(entries))
	for i, e := range entries {
		out[i] = Analysis{
			Word:       word,
			Lemma:      e.Lemma,
			Tag:        e.Tag,
			Confidence: e.Weight,
		}
	}
	// Higher weight first; stable so equal weights keep dictionary order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// Lemmatize returns the distinct lemmas over all candidate analyses of word,
// in candidate order. A surface form can genuinely map to several lemmas, so
// all of them are reported, not just the top one.
func (a *Analyzer) Lemmatize(word string) []string {
	analyses := a.Parse(word)
	if len(analyses) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(analyses))
	lemmas := make([]string, 0, len(analyses))
	for _, an := range analyses {
		if an.Lemma == "" || seen[an.Lemma] {
			continue
		}
		seen[an.Lemma] = true
		lemmas = append(lemmas, an.Lemma)
	}
	return lemmas
}

// TopLemma returns the most likely lemma of word, or "" for empty input.
func (a *Analyzer) TopLemma(word string) string {
	if analyses := a.Parse(word); len(analyses) > 0 {
		return analyses[0].Lemma
	}
	return ""
}

// BatchLemmas maps each non-empty word to its most likely lemma.
func (a *Analyzer) BatchLemmas(words []string) map[string]string {
	out := make(map[string]string, len(words))
	for _, w := range words {
		if NormalizeToken(w) == "" {
			continue
		}
		if lemma := a.TopLemma(w); lemma != "" {
			out[w] = lemma
		}
	}
	return out
}

// Inflect asks the dictionary for the surface form of an's lexeme matching
// target. ok is false when the combination cannot be synthesized — a grammatically
// invalid request or a gap in the dictionary — which callers treat as "omit
// this cell". A non-nil error means the dictionary itself failed; it is
// reported once and not swallowed per cell.
func (a *Analyzer) Inflect(an Analysis, target TagSet) (form string, ok bool, err error) {
	if a.dict == nil || an.Synthetic || an.Lemma == "" {
		return "", false, nil
	}
	forms, err := a.dict.Lexeme(an.Lemma, lexemePOS(an.Tag.POS))
	if err != nil {
		return "", false, err
	}
	for _, f := range forms {
		if f.Tag.Matches(target) {
			return f.Form, true, nil
		}
	}
	return "", false, nil
}

// InflectAll returns every distinct lexeme form matching target, in paradigm
// order. Used for dimensions that legitimately hold several forms, such as
// adverbial participles.
func (a *Analyzer) InflectAll(an Analysis, target TagSet) ([]string, error) {
	if a.dict == nil || an.Synthetic || an.Lemma == "" {
		return nil, nil
	}
	forms, err := a.dict.Lexeme(an.Lemma, lexemePOS(an.Tag.POS))
	if err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]bool)
	for _, f := range forms {
		if f.Tag.Matches(target) && !seen[f.Form] {
			seen[f.Form] = true
			out = append(out, f.Form)
		}
	}
	return out, nil
}
