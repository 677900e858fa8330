package rumorph

import "strings"

// edgePunct is the set of punctuation and quotation characters stripped from
// the edges of a raw token before analysis: sentence punctuation, ellipsis,
// dashes, and both ASCII and Cyrillic-typography quote marks. Hyphens and
// apostrophes inside a token are morphologically significant ("кто-то") and
// are never touched.
const edgePunct = ".,;:!?…—–-«»„“”‘’'\"()[]"

// NormalizeToken strips leading and trailing punctuation and whitespace from
// a raw token. The result may be empty, which is a valid outcome for a token
// made entirely of punctuation. Idempotent: normalizing twice is a no-op.
func NormalizeToken(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, edgePunct)
	return strings.TrimSpace(s)
}

// Fold case-folds a word for dictionary and index lookup. Original casing is
// kept on the analysis' Word field for display.
func Fold(s string) string {
	return strings.ToLower(s)
}
