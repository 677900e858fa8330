package rumorph

import (
	"errors"
	"testing"
)

const lexiconPath = "testdata/lexicon.yaml"

func loadTestLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := OpenLexicon(lexiconPath)
	if err != nil {
		t.Fatalf("OpenLexicon(%q): %v", lexiconPath, err)
	}
	return lx
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(loadTestLexicon(t))
}

func TestParseKnownWord(t *testing.T) {
	an := newTestAnalyzer(t)

	analyses := an.Parse("книги")
	if len(analyses) == 0 {
		t.Fatal("Parse('книги') returned no analyses")
	}
	for _, a := range analyses {
		if a.Lemma != "книга" {
			t.Errorf("Parse('книги') lemma = %q, want %q", a.Lemma, "книга")
		}
		if a.Synthetic {
			t.Error("dictionary analysis marked synthetic")
		}
		if a.Tag.POS != POSNoun {
			t.Errorf("Parse('книги') POS = %q, want NOUN", a.Tag.POS)
		}
	}
}

func TestParseCaseFolding(t *testing.T) {
	an := newTestAnalyzer(t)

	analyses := an.Parse("Дом")
	if len(analyses) == 0 || analyses[0].Synthetic {
		t.Fatal("Parse('Дом') did not reach the dictionary")
	}
	if analyses[0].Word != "Дом" {
		t.Errorf("Parse('Дом') Word = %q, want original casing preserved", analyses[0].Word)
	}
	if analyses[0].Lemma != "дом" {
		t.Errorf("Parse('Дом') lemma = %q, want %q", analyses[0].Lemma, "дом")
	}
}

func TestParseStripsPunctuation(t *testing.T) {
	an := newTestAnalyzer(t)
	analyses := an.Parse("«книгу»,")
	if len(analyses) == 0 || analyses[0].Lemma != "книга" {
		t.Fatalf("Parse('«книгу»,') = %+v, want lemma 'книга'", analyses)
	}
}

func TestParseConfidenceOrdering(t *testing.T) {
	an := newTestAnalyzer(t)

	analyses := an.Parse("стали")
	if len(analyses) < 2 {
		t.Fatalf("Parse('стали') returned %d analyses, want >= 2", len(analyses))
	}
	if analyses[0].Lemma != "сталь" {
		t.Errorf("top analysis lemma = %q, want %q (higher weight)", analyses[0].Lemma, "сталь")
	}
	for i := 1; i < len(analyses); i++ {
		if analyses[i].Confidence > analyses[i-1].Confidence {
			t.Errorf("analyses not ordered by confidence: %v before %v",
				analyses[i-1].Confidence, analyses[i].Confidence)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	an := newTestAnalyzer(t)
	for _, in := range []string{"", "   ", "…—«»"} {
		if got := an.Parse(in); got != nil {
			t.Errorf("Parse(%q) = %v, want nil", in, got)
		}
	}
}

func TestParseUnknownWordFallsBack(t *testing.T) {
	an := newTestAnalyzer(t)

	analyses := an.Parse("Xyzzy")
	if len(analyses) != 1 {
		t.Fatalf("Parse('Xyzzy') returned %d analyses, want 1", len(analyses))
	}
	a := analyses[0]
	if !a.Synthetic {
		t.Error("fallback analysis not marked synthetic")
	}
	if a.Lemma != "xyzzy" {
		t.Errorf("fallback lemma = %q, want lowercase token", a.Lemma)
	}
	if !a.Tag.IsZero() {
		t.Errorf("fallback tag set = %v, want empty", a.Tag)
	}
}

func TestDegradedMode(t *testing.T) {
	an := New(nil)
	if an.Available() {
		t.Error("Available() = true without a dictionary")
	}

	analyses := an.Parse("привет")
	if len(analyses) != 1 {
		t.Fatalf("degraded Parse returned %d analyses, want 1", len(analyses))
	}
	a := analyses[0]
	if a.Lemma != "привет" || a.Confidence != 1.0 || !a.Synthetic || !a.Tag.IsZero() {
		t.Errorf("degraded analysis = %+v, want identity fallback", a)
	}

	if form, ok, err := an.Inflect(a, TagSet{Case: CaseGenitive}); form != "" || ok || err != nil {
		t.Errorf("degraded Inflect = (%q, %v, %v), want absent", form, ok, err)
	}
}

func TestLemmatizeDistinctLemmas(t *testing.T) {
	an := newTestAnalyzer(t)

	lemmas := an.Lemmatize("стали")
	if len(lemmas) != 2 {
		t.Fatalf("Lemmatize('стали') = %v, want 2 distinct lemmas", lemmas)
	}
	if lemmas[0] != "сталь" || lemmas[1] != "стать" {
		t.Errorf("Lemmatize('стали') = %v, want [сталь стать]", lemmas)
	}

	// All candidates for книги share one lemma: no duplicates in the output.
	if lemmas := an.Lemmatize("книги"); len(lemmas) != 1 || lemmas[0] != "книга" {
		t.Errorf("Lemmatize('книги') = %v, want [книга]", lemmas)
	}
}

func TestLemmatizeNonEmptyProperty(t *testing.T) {
	an := newTestAnalyzer(t)
	for _, w := range []string{"книги", "дом", "бежит", "красивую", "стали", "трёх", "ему"} {
		lemmas := an.Lemmatize(w)
		if len(lemmas) == 0 {
			t.Errorf("Lemmatize(%q) is empty", w)
		}
		for _, l := range lemmas {
			if l == "" {
				t.Errorf("Lemmatize(%q) returned an empty lemma", w)
			}
		}
	}
}

func TestBatchLemmas(t *testing.T) {
	an := newTestAnalyzer(t)

	got := an.BatchLemmas([]string{"книги", "дома", "", "  ", "бежал"})
	want := map[string]string{"книги": "книга", "дома": "дом", "бежал": "бежать"}
	if len(got) != len(want) {
		t.Fatalf("BatchLemmas = %v, want %v", got, want)
	}
	for w, l := range want {
		if got[w] != l {
			t.Errorf("BatchLemmas[%q] = %q, want %q", w, got[w], l)
		}
	}
}

func TestInflect(t *testing.T) {
	an := newTestAnalyzer(t)
	a := an.Parse("книга")[0]

	form, ok, err := an.Inflect(a, TagSet{Number: Plural, Case: CaseGenitive})
	if err != nil {
		t.Fatalf("Inflect: %v", err)
	}
	if !ok || form != "книг" {
		t.Errorf("Inflect(книга, plur gent) = (%q, %v), want (книг, true)", form, ok)
	}

	// A grammatically unavailable combination is absent, not an error.
	form, ok, err = an.Inflect(a, TagSet{Tense: Present})
	if err != nil {
		t.Fatalf("Inflect: %v", err)
	}
	if ok {
		t.Errorf("Inflect(книга, pres) = %q, want absent", form)
	}
}

func TestInflectAll(t *testing.T) {
	an := newTestAnalyzer(t)
	a := an.Parse("бежит")[0]

	forms, err := an.InflectAll(a, TagSet{POS: POSVerb, Tense: Past})
	if err != nil {
		t.Fatalf("InflectAll: %v", err)
	}
	if len(forms) != 4 {
		t.Errorf("InflectAll(бежать, past) = %v, want 4 forms", forms)
	}
}

// errLexemeDict parses fine but fails on lexeme access, standing in for a
// dictionary that breaks mid-request.
type errLexemeDict struct {
	inner *Lexicon
}

func (d errLexemeDict) Parses(word string) ([]DictEntry, error) {
	return d.inner.Parses(word)
}

func (d errLexemeDict) Lexeme(lemma string, pos PartOfSpeech) ([]DictForm, error) {
	return nil, errors.New("dictionary read failed")
}

func TestInflectSurfacesDictionaryError(t *testing.T) {
	an := New(errLexemeDict{inner: loadTestLexicon(t)})
	a := an.Parse("книга")[0]

	_, ok, err := an.Inflect(a, TagSet{Number: Singular, Case: CaseNominative})
	if err == nil {
		t.Fatal("Inflect swallowed the dictionary error")
	}
	if ok {
		t.Error("Inflect reported ok despite dictionary error")
	}
}
