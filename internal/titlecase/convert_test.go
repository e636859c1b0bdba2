package titlecase

import (
	"errors"
	"testing"
)

func TestConvertStyles(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		style Style
		want  string
	}{
		// First/last word force-capitalization.
		{"chicago classic", "a tale of two cities", Chicago, "A Tale of Two Cities"},
		{"chicago short prep", "rise of the machines", Chicago, "Rise of the Machines"},
		{"chicago coord conj", "war and peace", Chicago, "War and Peace"},
		{"chicago yet capitalized", "near yet far", Chicago, "Near Yet Far"},
		{"chicago as lowercased", "known as legend", Chicago, "Known as Legend"},
		{"chicago long prep", "life beyond the stars", Chicago, "Life Beyond the Stars"},

		// MLA lowercases every preposition regardless of length.
		{"mla classic", "the lord of the rings", MLA, "The Lord of the Rings"},
		{"mla long prep", "life beyond the stars", MLA, "Life beyond the Stars"},
		{"mla through", "a walk through fire", MLA, "A Walk through Fire"},

		// AMA, APA, Bluebook do not force-capitalize the last word.
		{"ama last prep", "a word to live by", AMA, "A Word to Live by"},
		{"bluebook last prep", "a word to live by", Bluebook, "A Word to Live by"},
		{"chicago last forced", "a word to live by", Chicago, "A Word to Live By"},

		// Bluebook capitalizes subordinating conjunctions.
		{"bluebook subord", "quit while ahead", Bluebook, "Quit While Ahead"},
		{"bluebook prep four", "dancing with wolves", Bluebook, "Dancing with Wolves"},

		// AP capitalizes "to" and any word of four or more letters.
		{"ap to", "the will to win", AP, "The Will To Win"},
		{"ap four letters", "a time upon reflection", AP, "A Time Upon Reflection"},

		// APA colon rule.
		{"apa after colon", "reflections: a memoir", APA, "Reflections: A Memoir"},
		{"chicago after colon", "reflections: a memoir", Chicago, "Reflections: a Memoir"},

		// NYT override lists beat the length default.
		{"nyt up in arms", "up in arms", NYT, "Up in Arms"},
		{"nyt so on", "love and so on", NYT, "Love and So On"},
		{"nyt not", "ready or not", NYT, "Ready or Not"},

		// Wikipedia follows the four-letter preposition threshold.
		{"wikipedia prep", "history of the decline", Wikipedia, "History of the Decline"},
		{"wikipedia with", "running with scissors", Wikipedia, "Running with Scissors"},

		// Hyphenated compounds.
		{"chicago hyphen", "state-of-the-art design", Chicago, "State-of-the-Art Design"},
		{"ama hyphen all caps", "state-of-the-art design", AMA, "State-Of-The-Art Design"},
		{"mla hyphen", "a run-of-the-mill story", MLA, "A Run-of-the-Mill Story"},
		{"ap hyphen default", "first-rate seats", AP, "First-Rate Seats"},

		// Structure preservation.
		{"punctuation kept", "war, and peace!", Chicago, "War, and Peace!"},
		{"em dash kept", "crime — and punishment", Chicago, "Crime — and Punishment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.in, tt.style); got != tt.want {
				t.Errorf("Convert(%q, %s) = %q, want %q", tt.in, tt.style, got, tt.want)
			}
		})
	}
}

func TestConvertIdentityInputs(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n", "!!!", " — "} {
		if got := Convert(in, Chicago); got != in {
			t.Errorf("Convert(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestConvertFixedPoint(t *testing.T) {
	inputs := []string{
		"a tale of two cities",
		"state-of-the-art design",
		"THE LOUDEST TITLE EVER",
		"life beyond the stars",
		"reflections: a memoir",
	}
	for _, in := range inputs {
		for _, style := range Styles() {
			once := Convert(in, style)
			twice := Convert(once, style)
			if once != twice {
				t.Errorf("Convert(Convert(%q, %s)) = %q, want %q", in, style, twice, once)
			}
		}
	}
}

func TestConvertRecomputesCase(t *testing.T) {
	// Pre-existing internal capitalization is discarded; casing is
	// recomputed from scratch.
	if got := Convert("eating at McDonald's", Chicago); got != "Eating at Mcdonald's" {
		t.Errorf("Convert = %q, want %q", got, "Eating at Mcdonald's")
	}
}

func TestConvertOpaqueRunes(t *testing.T) {
	in := "\U0001f680 launch 日本 day"
	got := Convert(in, Chicago)
	want := "\U0001f680 Launch 日本 Day"
	if got != want {
		t.Errorf("Convert(%q) = %q, want %q", in, got, want)
	}
}

func TestConvertUnknownStyleFallsBack(t *testing.T) {
	style, ok := ParseStyle("house-style")
	if ok {
		t.Fatalf("ParseStyle(\"house-style\") ok = true, want false")
	}
	if got, want := Convert("rise of the machines", style), "Rise of the Machines"; got != want {
		t.Errorf("Convert with fallback style = %q, want %q", got, want)
	}
}

var errTagger = errors.New("tagger unavailable")

// errorTagger always fails; conversions must degrade to the static rules.
type errorTagger struct{}

func (errorTagger) Tag([]string) ([]WordTag, error) {
	return nil, errTagger
}

func TestConvertTaggerFailureFallsBack(t *testing.T) {
	for _, style := range Styles() {
		in := "a word to live by"
		want := Convert(in, style)
		if got := ConvertWithTagger(in, style, errorTagger{}); got != want {
			t.Errorf("ConvertWithTagger(%q, %s) with failing tagger = %q, want %q", in, style, got, want)
		}
	}
}

// stubTagger returns a fixed tag sequence regardless of input.
type stubTagger struct {
	tags []WordTag
}

func (s stubTagger) Tag(words []string) ([]WordTag, error) {
	if len(s.tags) != len(words) {
		return nil, errTagger
	}
	return s.tags, nil
}

func TestConvertPhrasalParticle(t *testing.T) {
	// "off" as the particle of "turn off" is an adverb and capitalized
	// under Chicago; statically it would be a lowercased preposition.
	tagger := stubTagger{tags: []WordTag{
		{POS: POSVerb},
		{POS: POSPreposition, Particle: true},
		{POS: POSDeterminer},
		{POS: POSNoun},
	}}
	in := "turn off the light"
	if got, want := ConvertWithTagger(in, Chicago, tagger), "Turn Off the Light"; got != want {
		t.Errorf("ConvertWithTagger(%q) = %q, want %q", in, got, want)
	}
	if got, want := Convert(in, Chicago), "Turn off the Light"; got != want {
		t.Errorf("Convert(%q) = %q, want %q", in, got, want)
	}
}

func TestConvertInfinitive(t *testing.T) {
	tagger := stubTagger{tags: []WordTag{
		{POS: POSAdverb},
		{POS: POSPreposition},
		{POS: POSVerb},
		{POS: POSNoun},
	}}
	in := "how to win friends"
	// Only AP capitalizes the infinitive marker.
	if got, want := ConvertWithTagger(in, AP, tagger), "How To Win Friends"; got != want {
		t.Errorf("AP infinitive: got %q, want %q", got, want)
	}
	if got, want := ConvertWithTagger(in, Chicago, tagger), "How to Win Friends"; got != want {
		t.Errorf("Chicago infinitive: got %q, want %q", got, want)
	}
}

func TestConvertConcurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				Convert("a tale of two cities", Chicago)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
