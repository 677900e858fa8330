package rumorph

import "strings"

// PartOfSpeech identifies the grammatical category of an analysis,
// using the OpenCorpora codes that Russian dictionaries tag forms with.
type PartOfSpeech string

const (
	POSNoun           PartOfSpeech = "NOUN" // существительное
	POSAdjective      PartOfSpeech = "ADJF" // прилагательное (полное)
	POSAdjectiveShort PartOfSpeech = "ADJS" // прилагательное (краткое)
	POSComparative    PartOfSpeech = "COMP" // компаратив
	POSVerb           PartOfSpeech = "VERB" // глагол (личная форма)
	POSInfinitive     PartOfSpeech = "INFN" // инфинитив
	POSParticiple     PartOfSpeech = "PRTF" // причастие (полное)
	POSParticipleShrt PartOfSpeech = "PRTS" // причастие (краткое)
	POSGerund         PartOfSpeech = "GRND" // деепричастие
	POSNumeral        PartOfSpeech = "NUMR" // числительное
	POSPronoun        PartOfSpeech = "NPRO" // местоимение
	POSAdverb         PartOfSpeech = "ADVB" // наречие
	POSPreposition    PartOfSpeech = "PREP" // предлог
	POSConjunction    PartOfSpeech = "CONJ" // союз
	POSParticle       PartOfSpeech = "PRCL" // частица
	POSInterjection   PartOfSpeech = "INTJ" // междометие
	POSUnknown        PartOfSpeech = ""
)

// Case is a grammatical case. Declension tables use the six primary cases;
// the vocative is recognized on input but never synthesized into a table.
type Case string

const (
	CaseNominative   Case = "nomn"
	CaseGenitive     Case = "gent"
	CaseDative       Case = "datv"
	CaseAccusative   Case = "accs"
	CaseInstrumental Case = "ablt"
	CaseLocative     Case = "loct"
	CaseVocative     Case = "voct"
)

// Cases lists the six cases of a declension table, in canonical order.
var Cases = [6]Case{
	CaseNominative, CaseGenitive, CaseDative,
	CaseAccusative, CaseInstrumental, CaseLocative,
}

type Number string

const (
	Singular Number = "sing"
	Plural   Number = "plur"
)

type Gender string

const (
	Masculine Gender = "masc"
	Feminine  Gender = "femn"
	Neuter    Gender = "neut"
)

type Person string

const (
	FirstPerson  Person = "1per"
	SecondPerson Person = "2per"
	ThirdPerson  Person = "3per"
)

type Tense string

const (
	Present Tense = "pres"
	Future  Tense = "futr"
	Past    Tense = "past"
)

type Mood string

const (
	Indicative Mood = "indc"
	Imperative Mood = "impr"
)

// Aspect is the perfective/imperfective distinction; it constrains which
// tenses a verb's paradigm can contain.
type Aspect string

const (
	Perfective   Aspect = "perf"
	Imperfective Aspect = "impf"
)

type Voice string

const (
	Active  Voice = "actv"
	Passive Voice = "pssv"
)

type Animacy string

const (
	Animate   Animacy = "anim"
	Inanimate Animacy = "inan"
)

type Transitivity string

const (
	Transitive   Transitivity = "tran"
	Intransitive Transitivity = "intr"
)

// TagSet is the set of grammatical tags carried by one analysis or requested
// from the analyzer. A zero field means the dimension is inapplicable (on an
// analysis) or unconstrained (on an inflection request).
type TagSet struct {
	POS          PartOfSpeech `json:"pos,omitempty"`
	Case         Case         `json:"case,omitempty"`
	Number       Number       `json:"number,omitempty"`
	Gender       Gender       `json:"gender,omitempty"`
	Person       Person       `json:"person,omitempty"`
	Tense        Tense        `json:"tense,omitempty"`
	Mood         Mood         `json:"mood,omitempty"`
	Aspect       Aspect       `json:"aspect,omitempty"`
	Voice        Voice        `json:"voice,omitempty"`
	Animacy      Animacy      `json:"animacy,omitempty"`
	Transitivity Transitivity `json:"transitivity,omitempty"`
}

// IsZero reports whether no tag at all is set.
func (t TagSet) IsZero() bool {
	return t == TagSet{}
}

// Matches reports whether t satisfies every tag that is set on target.
// Zero fields of target are "don't care". This is the matching rule the
// paradigm generator uses to pick a surface form out of a lexeme.
func (t TagSet) Matches(target TagSet) bool {
	return (target.POS == "" || t.POS == target.POS) &&
		(target.Case == "" || t.Case == target.Case) &&
		(target.Number == "" || t.Number == target.Number) &&
		(target.Gender == "" || t.Gender == target.Gender) &&
		(target.Person == "" || t.Person == target.Person) &&
		(target.Tense == "" || t.Tense == target.Tense) &&
		(target.Mood == "" || t.Mood == target.Mood) &&
		(target.Aspect == "" || t.Aspect == target.Aspect) &&
		(target.Voice == "" || t.Voice == target.Voice) &&
		(target.Animacy == "" || t.Animacy == target.Animacy) &&
		(target.Transitivity == "" || t.Transitivity == target.Transitivity)
}

// Grammemes returns the non-zero tags of t as canonical codes, POS first.
func (t TagSet) Grammemes() []string {
	var gs []string
	for _, g := range []string{
		string(t.POS), string(t.Animacy), string(t.Aspect), string(t.Transitivity),
		string(t.Gender), string(t.Number), string(t.Case), string(t.Tense),
		string(t.Person), string(t.Mood), string(t.Voice),
	} {
		if g != "" {
			gs = append(gs, g)
		}
	}
	return gs
}

// String renders the tag set in the usual comma-joined form,
// e.g. "NOUN,inan,femn,sing,nomn".
func (t TagSet) String() string {
	return strings.Join(t.Grammemes(), ",")
}

// WithGrammeme returns a copy of t with the single grammeme code g applied
// to its dimension. Unrecognized codes are ignored.
func (t TagSet) WithGrammeme(g string) TagSet {
	switch g {
	case "NOUN", "ADJF", "ADJS", "COMP", "VERB", "INFN", "PRTF", "PRTS",
		"GRND", "NUMR", "NPRO", "ADVB", "PREP", "CONJ", "PRCL", "INTJ":
		t.POS = PartOfSpeech(g)
	case "nomn", "gent", "datv", "accs", "ablt", "loct", "voct":
		t.Case = Case(g)
	case "sing", "plur":
		t.Number = Number(g)
	case "masc", "femn", "neut":
		t.Gender = Gender(g)
	case "1per", "2per", "3per":
		t.Person = Person(g)
	case "pres", "futr", "past":
		t.Tense = Tense(g)
	case "indc", "impr":
		t.Mood = Mood(g)
	case "perf", "impf":
		t.Aspect = Aspect(g)
	case "actv", "pssv":
		t.Voice = Voice(g)
	case "anim", "inan":
		t.Animacy = Animacy(g)
	case "tran", "intr":
		t.Transitivity = Transitivity(g)
	}
	return t
}

// ParseTagSet builds a TagSet from a grammeme string in the dictionary
// format, where codes are separated by commas and/or spaces,
// e.g. "VERB,impf,intr sing,3per,pres,indc".
func ParseTagSet(s string) TagSet {
	var t TagSet
	for _, g := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		t = t.WithGrammeme(g)
	}
	return t
}

// Display labels for the closed tag enumerations.
var (
	caseLabels = map[Case]string{
		CaseNominative:   "nominative",
		CaseGenitive:     "genitive",
		CaseDative:       "dative",
		CaseAccusative:   "accusative",
		CaseInstrumental: "instrumental",
		CaseLocative:     "locative",
		CaseVocative:     "vocative",
	}
	posLabels = map[PartOfSpeech]string{
		POSNoun:           "noun",
		POSAdjective:      "adjective",
		POSAdjectiveShort: "short adjective",
		POSComparative:    "comparative",
		POSVerb:           "verb",
		POSInfinitive:     "infinitive",
		POSParticiple:     "participle",
		POSParticipleShrt: "short participle",
		POSGerund:         "gerund",
		POSNumeral:        "numeral",
		POSPronoun:        "pronoun",
		POSAdverb:         "adverb",
		POSPreposition:    "preposition",
		POSConjunction:    "conjunction",
		POSParticle:       "particle",
		POSInterjection:   "interjection",
	}
	caseLabelsRu = map[Case]string{
		CaseNominative:   "именительный",
		CaseGenitive:     "родительный",
		CaseDative:       "дательный",
		CaseAccusative:   "винительный",
		CaseInstrumental: "творительный",
		CaseLocative:     "предложный",
		CaseVocative:     "звательный",
	}
	posLabelsRu = map[PartOfSpeech]string{
		POSNoun:           "существительное",
		POSAdjective:      "прилагательное",
		POSAdjectiveShort: "краткое прилагательное",
		POSComparative:    "компаратив",
		POSVerb:           "глагол",
		POSInfinitive:     "инфинитив",
		POSParticiple:     "причастие",
		POSParticipleShrt: "краткое причастие",
		POSGerund:         "деепричастие",
		POSNumeral:        "числительное",
		POSPronoun:        "местоимение",
		POSAdverb:         "наречие",
		POSPreposition:    "предлог",
		POSConjunction:    "союз",
		POSParticle:       "частица",
		POSInterjection:   "междометие",
	}
)

// Label returns the human-readable name of the case, e.g. "nominative".
func (c Case) Label() string { return caseLabels[c] }

// LabelRu returns the Russian name of the case, e.g. "именительный".
func (c Case) LabelRu() string { return caseLabelsRu[c] }

// Label returns the human-readable name of the part of speech.
// Unknown categories are reported as "unknown".
func (p PartOfSpeech) Label() string {
	if l, ok := posLabels[p]; ok {
		return l
	}
	return "unknown"
}

// LabelRu returns the Russian name of the part of speech, "" when unknown.
func (p PartOfSpeech) LabelRu() string { return posLabelsRu[p] }
