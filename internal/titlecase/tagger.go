package titlecase

// POS is the coarse part-of-speech vocabulary a tagger may report.
type POS int

const (
	POSOther POS = iota
	POSVerb
	POSNoun
	POSAdjective
	POSAdverb
	POSPronoun
	POSDeterminer
	POSPreposition
	POSConjunction
)

// WordTag is a tagger's verdict for one word.
type WordTag struct {
	POS POS

	// Particle marks the word as the particle of a phrasal verb
	// ("give up", "turn off").
	Particle bool

	// Acronym marks a single-letter word used as a letter rather than a
	// word (grade "A", vitamin "B").
	Acronym bool
}

// Tagger is the optional part-of-speech collaborator. The engine calls
// Tag once per conversion with every word of the input in order, and
// expects one tag per word back. Any error, or a short result, makes the
// engine discard the tags and proceed on its static word lists alone, so
// a tagger can only improve a conversion, never break one.
type Tagger interface {
	Tag(words []string) ([]WordTag, error)
}
