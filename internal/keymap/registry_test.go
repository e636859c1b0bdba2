package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLookupContextBeforeGlobal(t *testing.T) {
	r := NewRegistry()
	r.Bind(Binding{Key: "r", Command: "refresh", Context: "global"})
	r.Bind(Binding{Key: "r", Command: "retitle", Context: "notes"})

	if id, ok := r.Lookup("r", "notes"); !ok || id != "retitle" {
		t.Errorf("Lookup(r, notes) = (%q, %v), want retitle", id, ok)
	}
	if id, ok := r.Lookup("r", "convert"); !ok || id != "refresh" {
		t.Errorf("Lookup(r, convert) = (%q, %v), want global refresh", id, ok)
	}
	if _, ok := r.Lookup("z", "notes"); ok {
		t.Error("Lookup(z) should miss")
	}
}

func TestUserOverrideWins(t *testing.T) {
	r := NewRegistry()
	r.Bind(Binding{Key: "q", Command: "quit", Context: "global"})
	r.SetUserOverride("q", "noop")

	if id, _ := r.Lookup("q", "notes"); id != "noop" {
		t.Errorf("Lookup(q) = %q, want override noop", id)
	}
}

func TestRebindReplaces(t *testing.T) {
	r := NewRegistry()
	r.Bind(Binding{Key: "d", Command: "delete", Context: "notes"})
	r.Bind(Binding{Key: "d", Command: "discard", Context: "notes"})

	if id, _ := r.Lookup("d", "notes"); id != "discard" {
		t.Errorf("Lookup(d) = %q, want discard", id)
	}
	if got := len(r.BindingsForContext("notes")); got != 1 {
		t.Errorf("BindingsForContext(notes) has %d entries, want 1", got)
	}
}

func TestHandleRunsHandler(t *testing.T) {
	r := NewRegistry()
	r.Bind(Binding{Key: "p", Command: "pin", Context: "notes"})

	called := false
	r.RegisterCommand(Command{ID: "pin", Title: "Toggle pin", Handler: func() tea.Cmd {
		called = true
		return nil
	}})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	r.Handle(msg, "notes")
	if !called {
		t.Error("handler was not invoked")
	}
}

func TestHandleEmitsCommandMsg(t *testing.T) {
	r := NewRegistry()
	r.Bind(Binding{Key: "n", Command: "new-note", Context: "notes"})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	cmd := r.Handle(msg, "notes")
	if cmd == nil {
		t.Fatal("Handle returned nil for bound key")
	}
	got, ok := cmd().(CommandMsg)
	if !ok || got.ID != "new-note" {
		t.Errorf("cmd() = %#v, want CommandMsg{new-note}", got)
	}
}

func TestHandleUnboundKey(t *testing.T) {
	r := NewRegistry()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}
	if cmd := r.Handle(msg, "global"); cmd != nil {
		t.Error("Handle should return nil for unbound key")
	}
}

func TestDefaultBindingsRegister(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if id, ok := r.Lookup("ctrl+c", "global"); !ok || id != "quit" {
		t.Errorf("ctrl+c = (%q, %v), want quit", id, ok)
	}
	if id, ok := r.Lookup("t", "notes"); !ok || id != "retitle-note" {
		t.Errorf("t in notes = (%q, %v), want retitle-note", id, ok)
	}
	// Every default binding names a non-empty command and key.
	for _, b := range DefaultBindings() {
		if b.Key == "" || b.Command == "" || b.Context == "" {
			t.Errorf("incomplete binding: %+v", b)
		}
	}
}
