package rumorph

import (
	gocache "github.com/patrickmn/go-cache"
)

// Paradigm tables are sparse by construction: an empty string cell means the
// dictionary could not synthesize that form, never an error. Russian
// inflection dimensions are POS-specific (a verb has no case, a noun has no
// tense), so each part of speech gets its own table shape and Paradigm is a
// tagged variant over them.

// CaseForms holds one form per grammatical case.
type CaseForms struct {
	Nominative   string `json:"nomn,omitempty"`
	Genitive     string `json:"gent,omitempty"`
	Dative       string `json:"datv,omitempty"`
	Accusative   string `json:"accs,omitempty"`
	Instrumental string `json:"ablt,omitempty"`
	Locative     string `json:"loct,omitempty"`
}

// Get returns the form for case c, "" when absent.
func (cf CaseForms) Get(c Case) string {
	switch c {
	case CaseNominative:
		return cf.Nominative
	case CaseGenitive:
		return cf.Genitive
	case CaseDative:
		return cf.Dative
	case CaseAccusative:
		return cf.Accusative
	case CaseInstrumental:
		return cf.Instrumental
	case CaseLocative:
		return cf.Locative
	}
	return ""
}

func (cf *CaseForms) set(c Case, form string) {
	switch c {
	case CaseNominative:
		cf.Nominative = form
	case CaseGenitive:
		cf.Genitive = form
	case CaseDative:
		cf.Dative = form
	case CaseAccusative:
		cf.Accusative = form
	case CaseInstrumental:
		cf.Instrumental = form
	case CaseLocative:
		cf.Locative = form
	}
}

// IsZero reports whether every cell is absent.
func (cf CaseForms) IsZero() bool {
	return cf == CaseForms{}
}

// DeclensionTable is the number × case table of nouns, numerals and pronouns.
type DeclensionTable struct {
	Singular CaseForms `json:"sing"`
	Plural   CaseForms `json:"plur"`
}

// GenderForms holds one form per gender plus the common plural, the shape of
// verb past tense, short adjectives and short participles.
type GenderForms struct {
	Masculine string `json:"masc,omitempty"`
	Feminine  string `json:"femn,omitempty"`
	Neuter    string `json:"neut,omitempty"`
	Plural    string `json:"plur,omitempty"`
}

// IsZero reports whether every cell is absent.
func (gf GenderForms) IsZero() bool {
	return gf == GenderForms{}
}

// PersonForms is the number × person table of a finite tense.
type PersonForms struct {
	Sing1 string `json:"sing_1per,omitempty"`
	Sing2 string `json:"sing_2per,omitempty"`
	Sing3 string `json:"sing_3per,omitempty"`
	Plur1 string `json:"plur_1per,omitempty"`
	Plur2 string `json:"plur_2per,omitempty"`
	Plur3 string `json:"plur_3per,omitempty"`
}

// IsZero reports whether every cell is absent.
func (pf PersonForms) IsZero() bool {
	return pf == PersonForms{}
}

// NumberForms holds a singular/plural pair, the shape of the imperative.
type NumberForms struct {
	Singular string `json:"sing,omitempty"`
	Plural   string `json:"plur,omitempty"`
}

// AdjDeclension is the full declension of an adjective or participle:
// gendered singular columns plus the common plural.
type AdjDeclension struct {
	Masculine CaseForms `json:"masc"`
	Feminine  CaseForms `json:"femn"`
	Neuter    CaseForms `json:"neut"`
	Plural    CaseForms `json:"plur"`
}

// IsZero reports whether every cell is absent.
func (d AdjDeclension) IsZero() bool {
	return d.Masculine.IsZero() && d.Feminine.IsZero() &&
		d.Neuter.IsZero() && d.Plural.IsZero()
}

// AdjectiveParadigm covers long forms, short forms and the comparative.
type AdjectiveParadigm struct {
	Long        AdjDeclension `json:"long"`
	Short       GenderForms   `json:"short"`
	Comparative string        `json:"comparative,omitempty"`
}

// ActiveVoiceForms groups the active-voice part of a verb paradigm.
// Perfective verbs have no true present tense, so for them the Present table
// stays empty and Future is populated instead; the generator never fabricates
// a tense the dictionary does not carry.
type ActiveVoiceForms struct {
	Present              PersonForms    `json:"present"`
	Future               PersonForms    `json:"future"`
	Past                 GenderForms    `json:"past"`
	Imperative           NumberForms    `json:"imperative"`
	AdverbialParticiples []string       `json:"adverbial_participles,omitempty"`
	PastParticiple       *AdjDeclension `json:"past_participle,omitempty"`
}

// PassiveVoiceForms groups the passive-voice part of a verb paradigm.
type PassiveVoiceForms struct {
	PastParticiple *AdjDeclension `json:"past_participle,omitempty"`
	Short          GenderForms    `json:"short"`
}

// VerbParadigm is the full conjugation of one verb lexeme.
type VerbParadigm struct {
	Infinitive string            `json:"infinitive"`
	Active     ActiveVoiceForms  `json:"active"`
	Passive    PassiveVoiceForms `json:"passive"`
}

// Paradigm is the synthesized inflection set for one lemma + POS.
// Exactly one variant field is set, matching POS; all nil means the paradigm
// could not be synthesized at all (synthetic analysis, unknown word).
// Paradigms are immutable once built and may be shared across goroutines.
type Paradigm struct {
	POS       PartOfSpeech       `json:"pos,omitempty"`
	Noun      *DeclensionTable   `json:"noun,omitempty"`
	Adjective *AdjectiveParadigm `json:"adjective,omitempty"`
	Verb      *VerbParadigm      `json:"verb,omitempty"`
	Numeral   *DeclensionTable   `json:"numeral,omitempty"`
	Pronoun   *DeclensionTable   `json:"pronoun,omitempty"`
	Generic   *CaseForms         `json:"generic,omitempty"`
}

// IsEmpty reports whether no table was synthesized.
func (p *Paradigm) IsEmpty() bool {
	return p.Noun == nil && p.Adjective == nil && p.Verb == nil &&
		p.Numeral == nil && p.Pronoun == nil && p.Generic == nil
}

// Generator builds paradigms by dispatching on the part of speech of an
// analysis and requesting each cell from the analyzer independently. Results
// are memoized by (lemma, POS): the underlying paradigm data is static, so
// the cache never needs invalidation.
type Generator struct {
	an    *Analyzer
	cache *gocache.Cache
}

// NewGenerator returns a Generator over an.
func NewGenerator(an *Analyzer) *Generator {
	return &Generator{
		an:    an,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// cellFiller requests individual forms and remembers the first hard
// dictionary error; after a failure every further cell reads as absent so a
// broken dictionary is reported once instead of per cell.
type cellFiller struct {
	an  *Analyzer
	a   Analysis
	err error
}

func (c *cellFiller) form(target TagSet) string {
	if c.err != nil {
		return ""
	}
	f, ok, err := c.an.Inflect(c.a, target)
	if err != nil {
		c.err = err
		return ""
	}
	if !ok {
		return ""
	}
	return f
}

func (c *cellFiller) forms(target TagSet) []string {
	if c.err != nil {
		return nil
	}
	fs, err := c.an.InflectAll(c.a, target)
	if err != nil {
		c.err = err
		return nil
	}
	return fs
}

// Build synthesizes the paradigm for analysis a. Missing forms are omitted,
// never fatal; the returned error reports only a hard dictionary failure, in
// which case the paradigm is empty.
func (g *Generator) Build(a Analysis) (*Paradigm, error) {
	if a.Synthetic || a.Lemma == "" || !g.an.Available() {
		return &Paradigm{POS: a.Tag.POS}, nil
	}

	key := a.Lemma + "|" + string(a.Tag.POS)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(*Paradigm), nil
	}

	c := &cellFiller{an: g.an, a: a}
	var p *Paradigm
	switch a.Tag.POS {
	case POSNoun:
		p = &Paradigm{POS: a.Tag.POS, Noun: g.declension(c)}
	case POSAdjective, POSAdjectiveShort, POSComparative:
		p = &Paradigm{POS: a.Tag.POS, Adjective: g.adjective(c)}
	case POSVerb:
		p = &Paradigm{POS: a.Tag.POS, Verb: g.verb(c, a.Lemma)}
	case POSInfinitive:
		p = g.infinitive(c, a)
	case POSNumeral:
		p = &Paradigm{POS: a.Tag.POS, Numeral: g.declension(c)}
	case POSPronoun:
		p = &Paradigm{POS: a.Tag.POS, Pronoun: g.declension(c)}
	default:
		p = g.generic(c, a)
	}

	if c.err != nil {
		return &Paradigm{POS: a.Tag.POS}, c.err
	}
	g.cache.Set(key, p, gocache.NoExpiration)
	return p, nil
}

// declension fills the number × case table of nouns, numerals and pronouns.
func (g *Generator) declension(c *cellFiller) *DeclensionTable {
	var t DeclensionTable
	for _, num := range []Number{Singular, Plural} {
		for _, cs := range Cases {
			form := c.form(TagSet{Number: num, Case: cs})
			if num == Singular {
				t.Singular.set(cs, form)
			} else {
				t.Plural.set(cs, form)
			}
		}
	}
	return &t
}

// adjDeclension fills a gender × case declension constrained by base,
// which carries the POS (and for participles voice and tense) of the target.
func (g *Generator) adjDeclension(c *cellFiller, base TagSet) AdjDeclension {
	var d AdjDeclension
	for _, cs := range Cases {
		for _, gen := range []Gender{Masculine, Feminine, Neuter} {
			t := base
			t.Gender = gen
			t.Number = Singular
			t.Case = cs
			form := c.form(t)
			switch gen {
			case Masculine:
				d.Masculine.set(cs, form)
			case Feminine:
				d.Feminine.set(cs, form)
			case Neuter:
				d.Neuter.set(cs, form)
			}
		}
		t := base
		t.Number = Plural
		t.Case = cs
		d.Plural.set(cs, c.form(t))
	}
	return d
}

// genderForms fills a gender × (plural) row constrained by base.
func (g *Generator) genderForms(c *cellFiller, base TagSet) GenderForms {
	var gf GenderForms
	for _, gen := range []Gender{Masculine, Feminine, Neuter} {
		t := base
		t.Gender = gen
		t.Number = Singular
		switch gen {
		case Masculine:
			gf.Masculine = c.form(t)
		case Feminine:
			gf.Feminine = c.form(t)
		case Neuter:
			gf.Neuter = c.form(t)
		}
	}
	t := base
	t.Number = Plural
	gf.Plural = c.form(t)
	return gf
}

// adjective fills long forms, short forms and the comparative.
func (g *Generator) adjective(c *cellFiller) *AdjectiveParadigm {
	return &AdjectiveParadigm{
		Long:        g.adjDeclension(c, TagSet{POS: POSAdjective}),
		Short:       g.genderForms(c, TagSet{POS: POSAdjectiveShort}),
		Comparative: c.form(TagSet{POS: POSComparative}),
	}
}

// personForms fills the number × person table of one finite tense.
func (g *Generator) personForms(c *cellFiller, tense Tense) PersonForms {
	var pf PersonForms
	cells := []struct {
		num  Number
		per  Person
		dest *string
	}{
		{Singular, FirstPerson, &pf.Sing1},
		{Singular, SecondPerson, &pf.Sing2},
		{Singular, ThirdPerson, &pf.Sing3},
		{Plural, FirstPerson, &pf.Plur1},
		{Plural, SecondPerson, &pf.Plur2},
		{Plural, ThirdPerson, &pf.Plur3},
	}
	for _, cell := range cells {
		*cell.dest = c.form(TagSet{
			POS:    POSVerb,
			Mood:   Indicative,
			Tense:  tense,
			Number: cell.num,
			Person: cell.per,
		})
	}
	return pf
}

// verb fills the full conjugation. Every dimension is attempted
// independently; tenses the aspect rules out simply come back absent from the
// dictionary. Finite targets are pinned to VERB: participles share the lexeme
// and would otherwise satisfy the tense rows.
func (g *Generator) verb(c *cellFiller, infinitive string) *VerbParadigm {
	p := &VerbParadigm{Infinitive: infinitive}

	p.Active.Present = g.personForms(c, Present)
	p.Active.Future = g.personForms(c, Future)
	p.Active.Past = g.genderForms(c, TagSet{POS: POSVerb, Mood: Indicative, Tense: Past})
	p.Active.Imperative = NumberForms{
		Singular: c.form(TagSet{POS: POSVerb, Mood: Imperative, Number: Singular}),
		Plural:   c.form(TagSet{POS: POSVerb, Mood: Imperative, Number: Plural}),
	}
	p.Active.AdverbialParticiples = c.forms(TagSet{POS: POSGerund})

	if d := g.adjDeclension(c, TagSet{POS: POSParticiple, Voice: Active, Tense: Past}); !d.IsZero() {
		p.Active.PastParticiple = &d
	}
	if d := g.adjDeclension(c, TagSet{POS: POSParticiple, Voice: Passive, Tense: Past}); !d.IsZero() {
		p.Passive.PastParticiple = &d
	}
	p.Passive.Short = g.genderForms(c, TagSet{POS: POSParticipleShrt, Voice: Passive, Tense: Past})

	return p
}

// infinitive handles analyses tagged INFN. Dictionaries lemmatize finite
// forms to the infinitive, so the verb lexeme is reached by re-deriving a
// first-person-singular form, re-parsing it, and recursing into the verb
// branch with a concrete VERB-tagged analysis. When the re-derivation fails
// the generator falls back to the generic table over whatever tags the
// analysis carries.
func (g *Generator) infinitive(c *cellFiller, a Analysis) *Paradigm {
	firstPerson := c.form(TagSet{POS: POSVerb, Number: Singular, Person: FirstPerson})
	if firstPerson != "" {
		for _, cand := range g.an.Parse(firstPerson) {
			if cand.Tag.POS == POSVerb && cand.Lemma == a.Lemma {
				vc := &cellFiller{an: g.an, a: cand}
				p := &Paradigm{POS: a.Tag.POS, Verb: g.verb(vc, a.Lemma)}
				c.err = vc.err
				return p
			}
		}
	}
	return g.generic(c, a)
}

// generic is the fallback for unrecognized parts of speech: vary only the
// case, holding every other tag the analysis carries. An analysis without a
// case tag has no dimension to vary and yields an empty paradigm.
func (g *Generator) generic(c *cellFiller, a Analysis) *Paradigm {
	if a.Tag.Case == "" {
		return &Paradigm{POS: a.Tag.POS}
	}
	var cf CaseForms
	for _, cs := range Cases {
		t := a.Tag
		t.Case = cs
		cf.set(cs, c.form(t))
	}
	if cf.IsZero() {
		return &Paradigm{POS: a.Tag.POS}
	}
	return &Paradigm{POS: a.Tag.POS, Generic: &cf}
}

// Lookup is the wire-facing record for one word: its best lemma, all
// candidate analyses, and optionally the synthesized paradigm of the
// top-ranked analysis.
type Lookup struct {
	Word     string     `json:"word"`
	Lemma    string     `json:"lemma"`
	Analyses []Analysis `json:"analyses"`
	Paradigm *Paradigm  `json:"paradigm,omitempty"`
}

// Lookup analyzes word and, when withParadigm is set, attaches the paradigm
// of the top-ranked analysis. The result is always total: dictionary failures
// degrade to an empty paradigm rather than an error.
func (g *Generator) Lookup(word string, withParadigm bool) Lookup {
	analyses := g.an.Parse(word)
	if len(analyses) == 0 {
		return Lookup{Word: word}
	}
	l := Lookup{
		Word:     word,
		Lemma:    analyses[0].Lemma,
		Analyses: analyses,
	}
	if withParadigm {
		p, err := g.Build(analyses[0])
		if err != nil {
			p = &Paradigm{POS: analyses[0].Tag.POS}
		}
		l.Paradigm = p
	}
	return l
}
