package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/msg"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/state"
	"github.com/nadia/entitle/internal/titlecase"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, m.broadcast(message)

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(message.Message, message.Duration, message.IsError)
		return m, nil

	case msg.HeadingFixedMsg:
		text := fmt.Sprintf("Heading: %q", message.New)
		if message.Applied {
			text = fmt.Sprintf("Retitled %q", message.New)
		}
		m.ShowToast(text, 3*time.Second, false)
		return m, listenWatch(m.watcher)

	case watchClosedMsg:
		return m, nil

	case keymap.CommandMsg:
		return m.handleCommand(message.ID)
	}

	// Forward other messages to ALL plugins so async results reach
	// their plugin even when another one is focused.
	return m, m.broadcast(message)
}

// broadcast forwards a message to every plugin.
func (m *Model) broadcast(message tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	plugins := m.registry.Plugins()
	for i, p := range plugins {
		newPlugin, cmd := p.Update(message)
		plugins[i] = newPlugin
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.updateContext()
	return tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Plugins with an active text input get printable keys directly.
	// App shortcuts stay on control combinations.
	if p := m.ActivePlugin(); p != nil {
		if consumer, ok := p.(plugin.TextInputConsumer); ok && consumer.ConsumesTextInput() {
			if isTextKey(message) {
				return m, m.forwardToActive(message)
			}
		}
	}

	if cmd := m.keymap.Handle(message, m.activeContext); cmd != nil {
		return m, cmd
	}

	return m, m.forwardToActive(message)
}

// forwardToActive sends a message to the focused plugin only.
func (m *Model) forwardToActive(message tea.Msg) tea.Cmd {
	p := m.ActivePlugin()
	if p == nil {
		return nil
	}
	newPlugin, cmd := p.Update(message)
	plugins := m.registry.Plugins()
	if m.activePlugin < len(plugins) {
		plugins[m.activePlugin] = newPlugin
	}
	m.updateContext()
	return cmd
}

// isTextKey reports whether a key press should be treated as typed text.
func isTextKey(message tea.KeyMsg) bool {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyEnter:
		return true
	}
	return false
}

// handleCommand dispatches app-level commands; everything else goes to
// the active plugin.
func (m Model) handleCommand(id string) (tea.Model, tea.Cmd) {
	switch id {
	case "quit":
		m.registry.StopAll()
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case "next-plugin":
		m.NextPlugin()
		m.persistActivePlugin()
		return m, nil

	case "prev-plugin":
		m.PrevPlugin()
		m.persistActivePlugin()
		return m, nil

	case "cycle-style":
		m.style = nextStyle(m.style)
		if err := state.SetLastStyle(m.style.String()); err != nil {
			m.ShowToast("State save failed: "+err.Error(), 3*time.Second, true)
		}
		return m, tea.Batch(
			broadcastStyle(m.style),
			msg.ShowToast("Style: "+m.style.String(), 2*time.Second),
		)

	case "toggle-tagger":
		m.useTagger = !m.useTagger
		if err := state.SetUseTagger(m.useTagger); err != nil {
			m.ShowToast("State save failed: "+err.Error(), 3*time.Second, true)
		}
		label := "Tagger off"
		if m.useTagger {
			label = "Tagger on"
		}
		return m, tea.Batch(
			broadcastTagger(m.useTagger),
			msg.ShowToast(label, 2*time.Second),
		)

	case "toggle-footer":
		m.showFooter = !m.showFooter
		return m, nil

	case "toggle-help":
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, m.forwardToActive(keymap.CommandMsg{ID: id})
}

func (m *Model) persistActivePlugin() {
	if p := m.ActivePlugin(); p != nil {
		if err := state.SetActivePlugin(p.ID()); err != nil {
			m.ShowToast("State save failed: "+err.Error(), 3*time.Second, true)
		}
	}
}

// nextStyle cycles through the style guides in declaration order.
func nextStyle(s titlecase.Style) titlecase.Style {
	all := titlecase.Styles()
	for i, candidate := range all {
		if candidate == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
