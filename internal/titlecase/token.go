package titlecase

import (
	"strings"
	"unicode"
)

// Token is one lexical unit of the scanned text: either a word or the
// separator run between words. Concatenating the Text of every token in
// order reconstructs the input exactly, so the converter can never add,
// drop, or reorder characters.
type Token struct {
	Text       string
	IsWord     bool
	First      bool // first word token of the input
	Last       bool // last word token of the input
	AfterColon bool // preceding separator contained a colon
}

// isSeparator reports whether r splits words. Whitespace and the em/en
// dashes always split; a plain hyphen does not, so hyphenated compounds
// reach the rule engine as a single token. Apostrophes and periods stay
// inside words ("don't", "vs.").
func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '—', '–': // em dash, en dash
		return true
	case ',', ':', ';', '!', '?', '(', ')', '[', ']', '{', '}',
		'"', '“', '”', '«', '»', '…':
		return true
	}
	return false
}

// Tokenize splits text into word and separator tokens in left-to-right
// order and fills in the position metadata the style rules depend on.
// Empty input yields nil; input with no word characters yields only
// separator tokens.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var tokens []Token
	var run strings.Builder
	runIsWord := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Text: run.String(), IsWord: runIsWord})
		run.Reset()
	}

	for _, r := range text {
		word := !isSeparator(r)
		if run.Len() > 0 && word != runIsWord {
			flush()
		}
		runIsWord = word
		run.WriteRune(r)
	}
	flush()

	// Pre-scan for the word count so Last can be assigned in one pass.
	words := 0
	for _, t := range tokens {
		if t.IsWord {
			words++
		}
	}

	seen := 0
	for i := range tokens {
		if !tokens[i].IsWord {
			continue
		}
		tokens[i].First = seen == 0
		tokens[i].Last = seen == words-1
		if i > 0 && !tokens[i-1].IsWord && strings.ContainsRune(tokens[i-1].Text, ':') {
			tokens[i].AfterColon = true
		}
		seen++
	}

	return tokens
}
