package rumorph

import (
	"regexp"
	"sort"
	"strings"

	snowballru "github.com/kljensen/snowball/russian"
)

// reToken matches one word token: a run of letters and digits, possibly
// joined by internal hyphens or apostrophes ("кто-то", "д'Артаньян").
var reToken = regexp.MustCompile(`[\p{L}\p{N}]+(?:[-'’][\p{L}\p{N}]+)*`)

// VocabEntry is one caller-supplied vocabulary item. Lemma is optional; when
// absent it is derived from Word.
type VocabEntry struct {
	Word    string `json:"word"`
	Lemma   string `json:"lemma,omitempty"`
	Meaning string `json:"meaning,omitempty"`
	Note    string `json:"note,omitempty"`
}

// VocabInfo is the index metadata attached to each matched span.
type VocabInfo struct {
	Word    string `json:"word"`
	Lemma   string `json:"lemma"`
	Meaning string `json:"meaning,omitempty"`
	Note    string `json:"note,omitempty"`
}

// VocabIndex maps case-folded lemmas to entry metadata. It is built fresh per
// request and not persisted; collisions resolve first-entry-wins.
type VocabIndex struct {
	byLemma map[string]*VocabInfo
	byStem  map[string]*VocabInfo
}

// Len returns the number of distinct lemmas in the index.
func (idx *VocabIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.byLemma)
}

// lookup resolves a folded lemma, falling back to the stem index when built.
func (idx *VocabIndex) lookup(lemma string) *VocabInfo {
	if idx == nil {
		return nil
	}
	if info, ok := idx.byLemma[lemma]; ok {
		return info
	}
	if idx.byStem != nil {
		if info, ok := idx.byStem[snowballru.Stem(lemma, false)]; ok {
			return info
		}
	}
	return nil
}

// MatchSpan is one occurrence of a vocabulary lemma in a text. Offsets are
// byte positions into the original, unmodified text.
type MatchSpan struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Text       string     `json:"text"`
	Normalized string     `json:"normalized"`
	Lemma      string     `json:"lemma"`
	Info       *VocabInfo `json:"vocab_info"`
}

// Matcher finds vocabulary lemmas in free text and renders highlights.
// It is stateless apart from the shared analyzer and safe for concurrent use.
type Matcher struct {
	an *Analyzer
	// stemFallback additionally indexes Snowball stems so that inflected
	// forms still match when the analyzer runs in degraded identity-lemma
	// mode. Off by default: lemma matching is strictly more precise.
	stemFallback bool
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithStemFallback enables Snowball-stem matching as a secondary index.
func WithStemFallback() MatcherOption {
	return func(m *Matcher) { m.stemFallback = true }
}

// NewMatcher returns a Matcher over an.
func NewMatcher(an *Analyzer, opts ...MatcherOption) *Matcher {
	m := &Matcher{an: an}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BuildIndex converts vocabulary entries into a lemma-keyed index. A provided
// lemma wins over derivation; the first entry wins on lemma collision.
func (m *Matcher) BuildIndex(entries []VocabEntry) *VocabIndex {
	idx := &VocabIndex{byLemma: make(map[string]*VocabInfo, len(entries))}
	if m.stemFallback {
		idx.byStem = make(map[string]*VocabInfo, len(entries))
	}
	for _, e := range entries {
		word := NormalizeToken(e.Word)
		if word == "" {
			continue
		}
		lemma := e.Lemma
		if lemma == "" {
			lemma = m.an.TopLemma(word)
		}
		if lemma == "" {
			continue
		}
		folded := Fold(lemma)
		if _, taken := idx.byLemma[folded]; taken {
			continue
		}
		info := &VocabInfo{
			Word:    e.Word,
			Lemma:   lemma,
			Meaning: e.Meaning,
			Note:    e.Note,
		}
		idx.byLemma[folded] = info
		if idx.byStem != nil {
			stem := snowballru.Stem(folded, false)
			if _, taken := idx.byStem[stem]; !taken {
				idx.byStem[stem] = info
			}
		}
	}
	return idx
}

// FindMatches scans text for tokens whose lemma is in idx and returns the
// matching spans ordered by ascending start offset. It is a pure function of
// (text, idx): calling it twice yields identical spans.
func (m *Matcher) FindMatches(text string, idx *VocabIndex) []MatchSpan {
	if text == "" || idx.Len() == 0 {
		return nil
	}

	var spans []MatchSpan
	for _, loc := range reToken.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		normalized := NormalizeToken(token)
		if normalized == "" {
			continue
		}
		var matched *VocabInfo
		var lemma string
		for _, l := range m.an.Lemmatize(normalized) {
			if info := idx.lookup(Fold(l)); info != nil {
				matched, lemma = info, l
				break
			}
		}
		if matched == nil {
			continue
		}
		spans = append(spans, MatchSpan{
			Start:      loc[0],
			End:        loc[1],
			Text:       token,
			Normalized: normalized,
			Lemma:      lemma,
			Info:       matched,
		})
	}
	return spans
}

// markupEscaper escapes the five markup special characters for use in
// attribute values.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Highlight rewrites text with each matched span wrapped in a mark element
// carrying the lemma, meaning and note as data attributes. Substitution runs
// from the highest start offset downward so earlier offsets stay valid
// against the still-original prefix of text.
func (m *Matcher) Highlight(text string, idx *VocabIndex) string {
	matches := m.FindMatches(text, idx)
	if len(matches) == 0 {
		return text
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Start > matches[j].Start
	})

	var b strings.Builder
	result := text
	for _, match := range matches {
		b.Reset()
		b.WriteString(`<mark class="vocab-match" data-lemma="`)
		b.WriteString(markupEscaper.Replace(match.Info.Lemma))
		b.WriteString(`" data-meaning="`)
		b.WriteString(markupEscaper.Replace(match.Info.Meaning))
		b.WriteString(`" data-note="`)
		b.WriteString(markupEscaper.Replace(match.Info.Note))
		b.WriteString(`">`)
		// The token character class admits no markup specials except the
		// apostrophe, so the matched text goes through verbatim; escaping it
		// would break reconstruction of the original text.
		b.WriteString(result[match.Start:match.End])
		b.WriteString(`</mark>`)
		result = result[:match.Start] + b.String() + result[match.End:]
	}
	return result
}
