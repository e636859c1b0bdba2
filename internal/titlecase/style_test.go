package titlecase

import "testing"

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
		ok   bool
	}{
		{"chicago", Chicago, true},
		{"Chicago", Chicago, true},
		{"CMOS", Chicago, true},
		{"mla", MLA, true},
		{"nyt", NYT, true},
		{"New York Times", NYT, true},
		{"bluebook", Bluebook, true},
		{"ap", AP, true},
		{"apa", APA, true},
		{"ama", AMA, true},
		{"wikipedia", Wikipedia, true},
		{" wp ", Wikipedia, true},
		{"house-style", Chicago, false},
		{"", Chicago, false},
	}
	for _, tt := range tests {
		got, ok := ParseStyle(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStyle(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleString(t *testing.T) {
	for _, style := range Styles() {
		name := style.String()
		if name == "" {
			t.Errorf("Style(%d).String() is empty", style)
		}
		if got, ok := ParseStyle(name); !ok || got != style {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v, true", name, got, ok, style)
		}
	}
}

func TestPrepositionLengthRule(t *testing.T) {
	tests := []struct {
		style Style
		word  string
		want  bool
	}{
		{AMA, "of", false},
		{AMA, "with", true},
		{AP, "off", false},
		{AP, "upon", true},
		{APA, "via", false},
		{Bluebook, "with", false},
		{Bluebook, "under", true},
		{Chicago, "upon", false},
		{Chicago, "beyond", true},
		{Wikipedia, "from", false},
		{Wikipedia, "through", true},
		{MLA, "notwithstanding", false},
		{MLA, "of", false},
		{NYT, "via", false},  // explicit lowercase list
		{NYT, "up", true},    // explicit capitalize list
		{NYT, "amid", true},  // four letters, default capitalize
		{NYT, "ere", false},  // three letters, default lowercase
	}
	for _, tt := range tests {
		if got := capitalizePreposition(tt.word, tt.style); got != tt.want {
			t.Errorf("capitalizePreposition(%q, %s) = %v, want %v", tt.word, tt.style, got, tt.want)
		}
	}
}

func TestCapitalizePrimitive(t *testing.T) {
	tests := []struct{ in, want string }{
		{"word", "Word"},
		{"WORD", "Word"},
		{"mcDonald", "Mcdonald"},
		{"don't", "Don't"},
		{"", ""},
		{"a", "A"},
		{"étude", "Étude"},
		{"\U0001f600", "\U0001f600"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
