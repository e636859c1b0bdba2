package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/config"
	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/msg"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/state"
	"github.com/nadia/entitle/internal/titlecase"
)

type fakePlugin struct {
	id      string
	focused bool
	gotMsgs []tea.Msg
}

func (f *fakePlugin) ID() string                           { return f.id }
func (f *fakePlugin) Name() string                         { return f.id }
func (f *fakePlugin) Init(ctx *plugin.Context) error       { return nil }
func (f *fakePlugin) Start() tea.Cmd                       { return nil }
func (f *fakePlugin) Stop()                                {}
func (f *fakePlugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	f.gotMsgs = append(f.gotMsgs, m)
	return f, nil
}
func (f *fakePlugin) View(width, height int) string { return "" }
func (f *fakePlugin) IsFocused() bool               { return f.focused }
func (f *fakePlugin) SetFocused(v bool)             { f.focused = v }
func (f *fakePlugin) FocusContext() string          { return f.id }

func newTestModel(t *testing.T) (Model, *fakePlugin, *fakePlugin) {
	t.Helper()
	if err := state.InitWithDir(t.TempDir()); err != nil {
		t.Fatalf("state init failed: %v", err)
	}

	a := &fakePlugin{id: "convert"}
	b := &fakePlugin{id: "notes"}
	reg := plugin.NewRegistry(&plugin.Context{})
	reg.Register(a)
	reg.Register(b)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	m := New(reg, km, config.Default(), nil, titlecase.Chicago, false, "test", "")
	m.width = 80
	m.height = 24
	m.ready = true
	return m, a, b
}

func TestNewFocusesFirstPlugin(t *testing.T) {
	m, a, b := newTestModel(t)

	if !a.focused || b.focused {
		t.Error("first plugin should start focused")
	}
	if m.activeContext != "convert" {
		t.Errorf("activeContext = %q, want convert", m.activeContext)
	}
}

func TestNextPluginCycles(t *testing.T) {
	m, a, b := newTestModel(t)

	m.NextPlugin()
	if a.focused || !b.focused {
		t.Error("focus should move to second plugin")
	}
	m.NextPlugin()
	if !a.focused || b.focused {
		t.Error("focus should wrap to first plugin")
	}
}

func TestNextStyleCycles(t *testing.T) {
	seen := map[titlecase.Style]bool{}
	s := titlecase.AMA
	for range titlecase.Styles() {
		seen[s] = true
		s = nextStyle(s)
	}
	if len(seen) != len(titlecase.Styles()) {
		t.Errorf("cycle visited %d styles, want %d", len(seen), len(titlecase.Styles()))
	}
	if s != titlecase.AMA {
		t.Errorf("cycle should return to start, got %v", s)
	}
}

func TestCycleStyleBroadcasts(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.handleCommand("cycle-style")
	model := updated.(Model)
	if model.style == titlecase.Chicago {
		t.Error("style should change")
	}
	if cmd == nil {
		t.Fatal("cycle-style should produce commands")
	}
	if got := state.GetLastStyle(); got != model.style.String() {
		t.Errorf("state style = %q, want %q", got, model.style.String())
	}
}

func TestToastLifecycle(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(msg.ToastMsg{Message: "hi", Duration: time.Minute})
	model := updated.(Model)
	if model.statusMsg != "hi" {
		t.Errorf("statusMsg = %q, want hi", model.statusMsg)
	}

	model.statusExpiry = time.Now().Add(-time.Second)
	model.ClearToast()
	if model.statusMsg != "" {
		t.Error("expired toast should clear")
	}
}

func TestBroadcastReachesAllPlugins(t *testing.T) {
	m, a, b := newTestModel(t)

	m.Update(msg.StyleChangedMsg{Style: titlecase.MLA})
	if len(a.gotMsgs) == 0 || len(b.gotMsgs) == 0 {
		t.Error("broadcast should reach every plugin")
	}
}

func TestViewRenders(t *testing.T) {
	m, _, _ := newTestModel(t)
	if out := m.View(); out == "" {
		t.Error("View() should render a frame")
	}
	m.showHelp = true
	if out := m.View(); out == "" {
		t.Error("help view should render")
	}
}
