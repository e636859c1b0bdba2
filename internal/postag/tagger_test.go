package postag

import (
	"testing"

	"github.com/nadia/entitle/internal/titlecase"
)

func tagOf(t *testing.T, words ...string) []titlecase.WordTag {
	t.Helper()
	tags, err := New().Tag(words)
	if err != nil {
		t.Fatalf("Tag(%v) error: %v", words, err)
	}
	if len(tags) != len(words) {
		t.Fatalf("Tag(%v) returned %d tags, want %d", words, len(tags), len(words))
	}
	return tags
}

func TestTagBaseline(t *testing.T) {
	tests := []struct {
		word string
		want titlecase.POS
	}{
		{"the", titlecase.POSDeterminer},
		{"with", titlecase.POSPreposition},
		{"and", titlecase.POSConjunction},
		{"they", titlecase.POSPronoun},
		{"golden", titlecase.POSAdjective},
		{"slowly", titlecase.POSAdverb},
		{"running", titlecase.POSVerb},
		{"kingdom", titlecase.POSNoun}, // default
		{"happiness", titlecase.POSNoun},
		{"graceful", titlecase.POSAdjective},
	}
	for _, tt := range tests {
		tags := tagOf(t, tt.word)
		if tags[0].POS != tt.want {
			t.Errorf("Tag(%q) = %v, want %v", tt.word, tags[0].POS, tt.want)
		}
	}
}

func TestTagDeterminerForcesNoun(t *testing.T) {
	tags := tagOf(t, "the", "run")
	if tags[1].POS != titlecase.POSNoun {
		t.Errorf("Tag(\"the run\")[1] = %v, want noun", tags[1].POS)
	}
}

func TestTagModalForcesVerb(t *testing.T) {
	tags := tagOf(t, "must", "attack")
	if tags[1].POS != titlecase.POSVerb {
		t.Errorf("Tag(\"must attack\")[1] = %v, want verb", tags[1].POS)
	}
}

func TestTagToInfinitive(t *testing.T) {
	tags := tagOf(t, "how", "to", "train", "dragons")
	if tags[2].POS != titlecase.POSVerb {
		t.Errorf("Tag(\"to train\") tagged %v, want verb", tags[2].POS)
	}
}

func TestTagPhrasalParticle(t *testing.T) {
	tags := tagOf(t, "turn", "off", "the", "light")
	if !tags[1].Particle {
		t.Errorf("Tag(\"turn off\")[1].Particle = false, want true")
	}
	if tags[1].POS != titlecase.POSPreposition {
		t.Errorf("Tag(\"turn off\")[1].POS = %v, want preposition", tags[1].POS)
	}
}

func TestTagAcronymLetter(t *testing.T) {
	tags := tagOf(t, "earning", "a", "grade", "A")
	if tags[1].Acronym {
		t.Errorf("article \"a\" flagged as acronym")
	}
	if !tags[3].Acronym {
		t.Errorf("trailing capital \"A\" not flagged as acronym")
	}
}

func TestTagFeedsConverter(t *testing.T) {
	tagger := New()
	in := "give up the ghost"
	// "up" is a phrasal particle here, so Chicago capitalizes it; the
	// static rules alone would lowercase it as a short preposition.
	if got, want := titlecase.ConvertWithTagger(in, titlecase.Chicago, tagger), "Give Up the Ghost"; got != want {
		t.Errorf("ConvertWithTagger(%q) = %q, want %q", in, got, want)
	}
	if got, want := titlecase.Convert(in, titlecase.Chicago), "Give up the Ghost"; got != want {
		t.Errorf("Convert(%q) = %q, want %q", in, got, want)
	}
}
