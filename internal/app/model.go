// Package app holds the root Bubble Tea model.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/config"
	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/titlecase"
	"github.com/nadia/entitle/internal/watch"
)

// Model is the root Bubble Tea model for the entitle application.
type Model struct {
	// Configuration
	cfg *config.Config

	// Plugin management
	registry     *plugin.Registry
	activePlugin int

	// Keymap
	keymap        *keymap.Registry
	activeContext string

	// Conversion state
	style     titlecase.Style
	useTagger bool

	// Heading watcher (nil when disabled)
	watcher *watch.Watcher

	// UI state
	width, height int
	showHelp      bool
	showFooter    bool
	ready         bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Version info
	currentVersion string
}

// New creates a new application model.
// initialPluginID optionally specifies which plugin to focus on startup.
func New(reg *plugin.Registry, km *keymap.Registry, cfg *config.Config, w *watch.Watcher, style titlecase.Style, useTagger bool, currentVersion, initialPluginID string) Model {
	activeIdx := 0
	if initialPluginID != "" {
		for i, p := range reg.Plugins() {
			if p.ID() == initialPluginID {
				activeIdx = i
				break
			}
		}
	}

	m := Model{
		cfg:            cfg,
		registry:       reg,
		keymap:         km,
		activePlugin:   activeIdx,
		activeContext:  "global",
		style:          style,
		useTagger:      useTagger,
		watcher:        w,
		showFooter:     cfg.UI.ShowFooter,
		currentVersion: currentVersion,
	}
	if p := m.ActivePlugin(); p != nil {
		p.SetFocused(true)
		m.activeContext = p.FocusContext()
	}
	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, listenWatch(m.watcher))
	}
	cmds = append(cmds, m.registry.StartAll()...)
	return tea.Batch(cmds...)
}

// ActivePlugin returns the currently active plugin.
func (m Model) ActivePlugin() plugin.Plugin {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return nil
	}
	if m.activePlugin >= len(plugins) {
		m.activePlugin = 0
	}
	return plugins[m.activePlugin]
}

// SetActivePlugin sets the active plugin by index.
func (m *Model) SetActivePlugin(idx int) {
	plugins := m.registry.Plugins()
	if idx < 0 || idx >= len(plugins) {
		return
	}
	if current := m.ActivePlugin(); current != nil {
		current.SetFocused(false)
	}
	m.activePlugin = idx
	if next := m.ActivePlugin(); next != nil {
		next.SetFocused(true)
		m.activeContext = next.FocusContext()
	}
}

// NextPlugin switches to the next plugin.
func (m *Model) NextPlugin() {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return
	}
	m.SetActivePlugin((m.activePlugin + 1) % len(plugins))
}

// PrevPlugin switches to the previous plugin.
func (m *Model) PrevPlugin() {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return
	}
	idx := m.activePlugin - 1
	if idx < 0 {
		idx = len(plugins) - 1
	}
	m.SetActivePlugin(idx)
}

// updateContext sets activeContext based on current state.
func (m *Model) updateContext() {
	if p := m.ActivePlugin(); p != nil {
		m.activeContext = p.FocusContext()
	} else {
		m.activeContext = "global"
	}
}

// ShowToast displays a status message for the given duration.
func (m *Model) ShowToast(text string, d time.Duration, isError bool) {
	m.statusMsg = text
	m.statusExpiry = time.Now().Add(d)
	m.statusIsError = isError
}

// ClearToast clears the status message once expired.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}
}

// Style returns the active style guide.
func (m Model) Style() titlecase.Style { return m.style }
