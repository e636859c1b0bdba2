// Package postag is a small lexicon-and-heuristics part-of-speech tagger
// implementing titlecase.Tagger. It runs two passes over the words of a
// title: a baseline of dictionary lookup plus suffix heuristics, then a
// set of contextual correction rules. It is intentionally modest: good
// enough to resolve the short ambiguous words the title-case rules care
// about, with no model files and no external calls.
package postag

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nadia/entitle/internal/titlecase"
)

// Tagger tags words using a built-in lexicon with contextual correction.
// The zero value is not usable; construct with New.
type Tagger struct {
	lexicon map[string]titlecase.POS
	modals  map[string]struct{}
}

// New creates a Tagger with the default lexicon.
func New() *Tagger {
	t := &Tagger{
		lexicon: make(map[string]titlecase.POS, 512),
		modals:  make(map[string]struct{}),
	}
	t.loadDefaultLexicon()
	return t
}

// Tag implements titlecase.Tagger. It never fails; the error is always
// nil and exists to satisfy the interface.
func (t *Tagger) Tag(words []string) ([]titlecase.WordTag, error) {
	tags := make([]titlecase.WordTag, len(words))

	// Pass 1: baseline.
	for i, word := range words {
		tags[i].POS = t.baseline(word)
	}

	// Pass 2: contextual correction.
	for i := range tags {
		lower := strings.ToLower(words[i])

		var prev titlecase.POS
		prevModal := false
		if i > 0 {
			prev = tags[i-1].POS
			_, prevModal = t.modals[strings.ToLower(words[i-1])]
		}

		// Determiner or adjective before a verb-tagged word makes it a
		// noun: "the run", "a fast attack".
		if (prev == titlecase.POSDeterminer || prev == titlecase.POSAdjective) &&
			tags[i].POS == titlecase.POSVerb {
			tags[i].POS = titlecase.POSNoun
			continue
		}

		// Modal before a noun-tagged word makes it a verb: "will attack".
		if prevModal && tags[i].POS == titlecase.POSNoun {
			tags[i].POS = titlecase.POSVerb
			continue
		}

		// "to" before a nominal makes the following word a verb, which
		// in turn lets the classifier spot the to-infinitive.
		if i > 0 && strings.EqualFold(words[i-1], "to") && tags[i].POS == titlecase.POSNoun {
			tags[i].POS = titlecase.POSVerb
			continue
		}

		// "of" before a verb-tagged word makes it a noun: "word of honor".
		if i > 0 && strings.EqualFold(words[i-1], "of") && tags[i].POS == titlecase.POSVerb {
			tags[i].POS = titlecase.POSNoun
			continue
		}

		// A short preposition directly after a verb is the particle of a
		// phrasal verb: "give up", "log in".
		if prev == titlecase.POSVerb && isParticleCandidate(lower) {
			tags[i].Particle = true
		}

		// A lone capital letter past the first word reads as a letter,
		// not the article: grade "A", plan "B".
		if i > 0 && isSingleCapital(words[i]) {
			tags[i].Acronym = true
		}
	}

	return tags, nil
}

func (t *Tagger) baseline(word string) titlecase.POS {
	lower := strings.ToLower(word)
	if pos, ok := t.lexicon[lower]; ok {
		return pos
	}
	return inferPOS(lower)
}

// inferPOS guesses from common English suffixes, defaulting to noun.
func inferPOS(lower string) titlecase.POS {
	switch {
	case strings.HasSuffix(lower, "ly"):
		return titlecase.POSAdverb
	case strings.HasSuffix(lower, "ing"), strings.HasSuffix(lower, "ed"):
		return titlecase.POSVerb
	case strings.HasSuffix(lower, "ness"), strings.HasSuffix(lower, "tion"),
		strings.HasSuffix(lower, "ment"), strings.HasSuffix(lower, "ity"),
		strings.HasSuffix(lower, "ship"):
		return titlecase.POSNoun
	case strings.HasSuffix(lower, "ful"), strings.HasSuffix(lower, "less"),
		strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ive"),
		strings.HasSuffix(lower, "able"), strings.HasSuffix(lower, "ible"):
		return titlecase.POSAdjective
	}
	return titlecase.POSNoun
}

func isParticleCandidate(lower string) bool {
	switch lower {
	case "in", "out", "up", "on", "off", "down", "by", "over":
		return true
	}
	return false
}

func isSingleCapital(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return size == len(word) && unicode.IsUpper(r)
}

func (t *Tagger) loadDefaultLexicon() {
	add := func(pos titlecase.POS, words ...string) {
		for _, w := range words {
			t.lexicon[w] = pos
		}
	}

	add(titlecase.POSDeterminer,
		"the", "a", "an", "this", "that", "these", "those", "my", "your",
		"his", "her", "its", "our", "their", "some", "any", "no", "every",
		"each", "all", "both", "few", "many", "much", "most", "other")

	add(titlecase.POSPreposition,
		"in", "on", "at", "to", "for", "with", "by", "from", "of", "about",
		"into", "through", "during", "before", "after", "above", "below",
		"between", "under", "over", "against", "among", "around", "behind",
		"beside", "beyond", "near", "toward", "towards", "upon", "within",
		"without", "across", "along", "inside", "outside", "throughout",
		"up", "off", "out", "down", "via", "amid", "despite", "until")

	add(titlecase.POSConjunction,
		"and", "or", "but", "nor", "yet", "so", "because", "although",
		"though", "while", "if", "unless", "since", "whereas", "whether")

	add(titlecase.POSPronoun,
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "us",
		"them", "who", "whom", "whose", "which", "myself", "yourself",
		"himself", "herself", "itself", "ourselves", "themselves")

	add(titlecase.POSAdjective,
		"old", "new", "good", "bad", "great", "small", "large", "big",
		"little", "young", "long", "short", "high", "low", "early", "late",
		"first", "last", "dark", "bright", "quick", "slow", "wise", "fast",
		"grey", "black", "white", "red", "blue", "green", "golden", "silver")

	add(titlecase.POSAdverb,
		"very", "quite", "rather", "really", "too", "just", "only", "now",
		"then", "here", "there", "always", "never", "often", "sometimes",
		"slowly", "quickly", "suddenly", "finally", "already", "still",
		"even", "not", "again")

	add(titlecase.POSVerb,
		"be", "is", "are", "was", "were", "been", "being", "am",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"go", "went", "gone", "going", "come", "came", "coming",
		"say", "said", "see", "saw", "seen", "know", "knew", "known",
		"take", "took", "taken", "get", "got", "give", "gave", "given",
		"make", "made", "walk", "run", "ran", "turn", "turned", "live",
		"lived", "look", "looked", "find", "found", "think", "thought",
		"win", "won", "lose", "lost", "rise", "rose", "risen", "fall",
		"fell", "fallen", "stop", "start", "keep", "kept", "let", "put",
		"log", "sign", "shut", "break", "broke", "bring", "brought",
		"call", "called", "carry", "hold", "held", "play", "played",
		"stand", "stood", "set", "show", "showed", "shown", "hear",
		"heard", "leave", "left", "meet", "met", "pay", "paid")

	add(titlecase.POSNoun,
		"man", "woman", "child", "king", "queen", "lord", "lady", "hero",
		"war", "peace", "life", "death", "day", "night", "year", "time",
		"world", "city", "town", "house", "home", "road", "river", "sea",
		"fire", "light", "shadow", "story", "tale", "song", "word", "book",
		"letter", "art", "history", "machine", "machines", "star", "stars",
		"moon", "sun", "rain", "wind", "stone", "mountain", "forest")

	for _, w := range []string{
		"can", "could", "will", "would", "shall", "should", "may",
		"might", "must",
	} {
		t.modals[w] = struct{}{}
		t.lexicon[w] = titlecase.POSVerb
	}
}
