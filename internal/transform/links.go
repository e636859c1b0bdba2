package transform

import (
	"regexp"
	"strings"

	"github.com/nadia/entitle/internal/titlecase"
)

// wikiLink matches [[target]] and [[target|label]] links.
var wikiLink = regexp.MustCompile(`\[\[([^\[\]|]+)(\|([^\[\]]*))?\]\]`)

var innerSpace = regexp.MustCompile(`\s+`)

// NormalizeLinks tidies wiki-style links: padding around the target and
// label is trimmed and internal whitespace runs collapse to one space.
// Text outside links is untouched.
func NormalizeLinks(text string) string {
	return wikiLink.ReplaceAllStringFunc(text, func(m string) string {
		target, label, hasLabel := splitLink(m)
		return joinLink(target, label, hasLabel)
	})
}

// RetitleLinks normalizes links and additionally runs the display text
// through the title-case engine: the label when one is present, the
// target otherwise.
func RetitleLinks(text string, style titlecase.Style) string {
	return wikiLink.ReplaceAllStringFunc(text, func(m string) string {
		target, label, hasLabel := splitLink(m)
		if hasLabel {
			label = titlecase.Convert(label, style)
		} else {
			target = titlecase.Convert(target, style)
		}
		return joinLink(target, label, hasLabel)
	})
}

func splitLink(m string) (target, label string, hasLabel bool) {
	sub := wikiLink.FindStringSubmatch(m)
	target = clean(sub[1])
	if sub[2] != "" {
		hasLabel = true
		label = clean(sub[3])
	}
	return target, label, hasLabel
}

func joinLink(target, label string, hasLabel bool) string {
	if hasLabel {
		return "[[" + target + "|" + label + "]]"
	}
	return "[[" + target + "]]"
}

func clean(s string) string {
	return innerSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}
