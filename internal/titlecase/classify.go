package titlecase

import "strings"

// Function is the resolved grammatical role of a word. Unknown means no
// tagger was available (or it declined); the rule engine then falls back
// to its static word lists.
type Function int

const (
	Unknown Function = iota
	Verb
	Noun
	Adjective
	Adverb
	Pronoun
	Article
	Preposition
	CoordConjunction
	SubordConjunction
	Infinitive
)

// phrasalParticles are short prepositions that frequently act as adverbs
// or verb particles instead ("give up", "log in"). Their role can only be
// settled with tagger help.
var phrasalParticles = newSet("in", "out", "up", "on", "off", "down", "by", "over")

// classify resolves the grammatical function of words[i] from the
// tagger's output. tags must be parallel to words; callers pass nil tags
// when no tagger ran, which classifies every word as Unknown.
func classify(words []string, tags []WordTag, i int) Function {
	if tags == nil || i < 0 || i >= len(tags) || i >= len(words) {
		return Unknown
	}

	lower := strings.ToLower(words[i])
	tag := tags[i]

	// Ambiguous short words get dedicated resolution before the direct
	// POS mapping.
	if inSet(phrasalParticles, lower) {
		switch {
		case tag.Particle:
			return Adverb
		case tag.POS == POSAdverb:
			return Adverb
		case tag.POS == POSVerb:
			return Verb
		case tag.POS == POSPreposition:
			return Preposition
		}
		return mapPOS(lower, tag.POS)
	}

	if lower == "a" {
		if tag.POS == POSNoun || tag.Acronym {
			return Noun
		}
		return Article
	}

	if lower == "to" {
		if i+1 < len(tags) && tags[i+1].POS == POSVerb {
			return Infinitive
		}
		if tag.POS == POSPreposition {
			return Preposition
		}
		return mapPOS(lower, tag.POS)
	}

	return mapPOS(lower, tag.POS)
}

// mapPOS translates a raw tag into a grammatical function. Conjunction
// subtype comes from the static lists since taggers rarely distinguish
// coordinating from subordinating.
func mapPOS(lower string, pos POS) Function {
	switch pos {
	case POSVerb:
		return Verb
	case POSNoun:
		return Noun
	case POSAdjective:
		return Adjective
	case POSAdverb:
		return Adverb
	case POSPronoun:
		return Pronoun
	case POSDeterminer:
		if inSet(articles, lower) {
			return Article
		}
		return Unknown
	case POSPreposition:
		return Preposition
	case POSConjunction:
		if inSet(coordConjunctions, lower) {
			return CoordConjunction
		}
		if inSet(subordConjunctions, lower) {
			return SubordConjunction
		}
		return Unknown
	}
	return Unknown
}
