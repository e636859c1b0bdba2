// Package titlecase converts arbitrary text to title case under one of
// eight published style guides (AMA, AP, APA, Bluebook, Chicago, MLA,
// New York Times, Wikipedia).
//
// The engine is a pure function of its inputs: no I/O, no shared mutable
// state, safe for concurrent use. An optional part-of-speech Tagger can
// be injected to resolve ambiguous short words; without one the engine
// runs entirely on its static word lists and remains fully correct.
package titlecase

import "strings"

// Convert recases text under the given style using only the static word
// lists. It returns the input unchanged when there is nothing to recase.
func Convert(text string, style Style) string {
	return ConvertWithTagger(text, style, nil)
}

// ConvertWithTagger recases text under the given style, consulting tagger
// (when non-nil) to resolve the grammatical role of ambiguous words. The
// tagger is invoked once with every word of the input; a tagger error or
// a malformed result discards the tags and the conversion proceeds on the
// static rules. Word boundaries and separator runs are preserved exactly:
// only letter casing inside word tokens changes.
func ConvertWithTagger(text string, style Style, tagger Tagger) string {
	tokens := Tokenize(text)

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.IsWord {
			words = append(words, t.Text)
		}
	}
	if len(words) == 0 {
		return text
	}

	var tags []WordTag
	if tagger != nil {
		if got, err := tagger.Tag(words); err == nil && len(got) == len(words) {
			tags = got
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	wi := 0
	for _, t := range tokens {
		if !t.IsWord {
			b.WriteString(t.Text)
			continue
		}
		fn := classify(words, tags, wi)
		b.WriteString(recase(t.Text, t, style, fn))
		wi++
	}
	return b.String()
}
