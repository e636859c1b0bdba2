package titlecase

import "strings"

// Style selects one of the supported style-guide rule sets.
type Style int

const (
	AMA Style = iota
	AP
	APA
	Bluebook
	Chicago
	MLA
	NYT
	Wikipedia
)

// Styles lists every supported style in display order.
func Styles() []Style {
	return []Style{AMA, AP, APA, Bluebook, Chicago, MLA, NYT, Wikipedia}
}

// String returns the display name for the style.
func (s Style) String() string {
	switch s {
	case AMA:
		return "AMA"
	case AP:
		return "AP"
	case APA:
		return "APA"
	case Bluebook:
		return "Bluebook"
	case Chicago:
		return "Chicago"
	case MLA:
		return "MLA"
	case NYT:
		return "New York Times"
	case Wikipedia:
		return "Wikipedia"
	}
	return "Chicago"
}

// ParseStyle resolves a style name. Matching is case-insensitive and
// accepts a few common spellings. Unrecognized names fall back to Chicago
// so a bad identifier can never make a conversion fail.
func ParseStyle(name string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ama":
		return AMA, true
	case "ap":
		return AP, true
	case "apa":
		return APA, true
	case "bluebook":
		return Bluebook, true
	case "chicago", "cmos":
		return Chicago, true
	case "mla":
		return MLA, true
	case "nyt", "new york times", "ny times":
		return NYT, true
	case "wikipedia", "wp":
		return Wikipedia, true
	}
	return Chicago, false
}
