package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// recase applies the selected style guide to a single word token.
//
// Precedence, in order: hyphenated compounds delegate to the hyphenation
// sub-rule; the first word is always capitalized; the last word is
// capitalized except under AMA, APA, and Bluebook (which apply ordinary
// rules to it); APA capitalizes the first word after a colon; a known
// grammatical function goes through the NLP-aware dispatch; anything the
// dispatch declines falls to the static per-style rules.
func recase(word string, tok Token, style Style, fn Function) string {
	if strings.Contains(word, "-") {
		return recaseHyphenated(word, tok.First, style)
	}
	if tok.First {
		return capitalize(word)
	}
	if tok.Last && style != AMA && style != APA && style != Bluebook {
		return capitalize(word)
	}
	if tok.AfterColon && style == APA {
		return capitalize(word)
	}

	lower := strings.ToLower(word)
	if fn != Unknown {
		if verdict, ok := dispatchFunction(lower, fn, style); ok {
			if verdict {
				return capitalize(word)
			}
			return lower
		}
	}
	if staticRule(lower, style) {
		return capitalize(word)
	}
	return lower
}

// dispatchFunction decides casing from a resolved grammatical function.
// The second result is false when the combination is unhandled and the
// static rules should decide instead.
func dispatchFunction(lower string, fn Function, style Style) (capitalized, ok bool) {
	switch fn {
	case Verb, Noun, Adjective, Adverb, Pronoun:
		return true, true

	case Article:
		return false, true

	case Infinitive:
		// AP treats the "to" of a to-infinitive as capitalizable.
		return style == AP, true

	case CoordConjunction:
		switch style {
		case Chicago:
			return lower == "yet" || lower == "so", true
		case NYT:
			return lower == "so" || lower == "nor", true
		}
		return false, true

	case SubordConjunction:
		switch style {
		case AMA, Bluebook, Chicago, MLA, Wikipedia:
			if style == Chicago && lower == "as" {
				return false, true
			}
			return true, true
		default: // AP, APA, NYT
			return wordLen(lower) > 3, true
		}

	case Preposition:
		return capitalizePreposition(lower, style), true
	}

	return false, false
}

// capitalizePreposition applies the per-style preposition length rule.
func capitalizePreposition(lower string, style Style) bool {
	n := wordLen(lower)
	switch style {
	case AMA, AP, APA:
		return n > 3
	case Bluebook, Chicago, Wikipedia:
		return n > 4
	case MLA:
		return false
	case NYT:
		if inSet(nytLowercase, lower) {
			return false
		}
		if inSet(nytCapitalize, lower) {
			return true
		}
		return n >= 4
	}
	return n > 4
}

// staticRule decides capitalization from the word lists alone, used when
// no grammatical function could be resolved. Each branch mirrors the
// published style guide's treatment of articles, conjunctions, and
// prepositions.
func staticRule(lower string, style Style) bool {
	n := wordLen(lower)

	switch style {
	case AMA:
		if inSet(articles, lower) || inSet(coordConjunctions, lower) || lower == "to" {
			return false
		}
		if inSet(prepositions, lower) && n <= 3 {
			return false
		}
		return true

	case AP:
		if lower == "to" {
			return true
		}
		if n >= 4 {
			return true
		}
		if inSet(articles, lower) {
			return false
		}
		if inSet(coordConjunctions, lower) || inSet(subordConjunctions, lower) || inSet(prepositions, lower) {
			return n > 3
		}
		return true

	case APA:
		if inSet(coordConjunctions, lower) {
			return false
		}
		if n >= 4 {
			return true
		}
		if inSet(articles, lower) || lower == "to" {
			return false
		}
		if inSet(subordConjunctions, lower) || inSet(prepositions, lower) {
			return n > 3
		}
		return true

	case Bluebook:
		if inSet(articles, lower) || inSet(coordConjunctions, lower) {
			return false
		}
		if inSet(prepositions, lower) && n <= 4 {
			return false
		}
		return true

	case Chicago:
		if inSet(articles, lower) {
			return false
		}
		switch lower {
		case "and", "but", "for", "nor", "or", "as", "to":
			return false
		}
		if inSet(prepositions, lower) && n <= 4 {
			return false
		}
		return true

	case MLA:
		if inSet(articles, lower) || inSet(coordConjunctions, lower) || lower == "to" {
			return false
		}
		if inSet(prepositions, lower) {
			return false
		}
		return true

	case NYT:
		if inSet(nytCapitalize, lower) {
			return true
		}
		if inSet(nytLowercase, lower) {
			return false
		}
		return true

	case Wikipedia:
		if inSet(articles, lower) || inSet(coordConjunctions, lower) || lower == "to" {
			return false
		}
		if inSet(prepositions, lower) && n <= 4 {
			return false
		}
		return true
	}

	// Unrecognized style: capitalize everything that reaches this path.
	return true
}

// recaseHyphenated splits a compound on hyphens and recases each segment
// with the plain capitalize primitive; no recursive dispatch into the
// full rule engine. AMA and APA capitalize every segment. Chicago and MLA
// lowercase article, coordinating-conjunction, and length-qualifying
// preposition segments. All other styles capitalize every segment.
func recaseHyphenated(word string, first bool, style Style) string {
	segments := strings.Split(word, "-")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == 0 && first {
			segments[i] = capitalize(seg)
			continue
		}
		lower := strings.ToLower(seg)
		switch style {
		case Chicago, MLA:
			if inSet(articles, lower) || inSet(coordConjunctions, lower) ||
				(inSet(prepositions, lower) && !capitalizePreposition(lower, style)) {
				segments[i] = lower
			} else {
				segments[i] = capitalize(seg)
			}
		default:
			segments[i] = capitalize(seg)
		}
	}
	return strings.Join(segments, "-")
}

// capitalize uppercases the first rune and lowercases the rest. Existing
// internal capitalization is not preserved ("McDonald" becomes
// "Mcdonald"); the engine recomputes casing from scratch by design.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// wordLen counts runes, ignoring a trailing period so abbreviations like
// "vs." measure as their letters.
func wordLen(w string) int {
	return utf8.RuneCountInString(strings.TrimSuffix(w, "."))
}
