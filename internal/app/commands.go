package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/msg"
	"github.com/nadia/entitle/internal/titlecase"
	"github.com/nadia/entitle/internal/watch"
)

// TickMsg drives toast expiry.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchClosedMsg signals that the watcher's event channel closed.
type watchClosedMsg struct{}

// listenWatch waits for the next watcher event.
func listenWatch(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return watchClosedMsg{}
		}
		return msg.HeadingFixedMsg{
			Path:    ev.Path,
			Old:     ev.Old,
			New:     ev.New,
			Applied: ev.Applied,
		}
	}
}

// broadcastStyle announces the new active style guide.
func broadcastStyle(style titlecase.Style) tea.Cmd {
	return func() tea.Msg {
		return msg.StyleChangedMsg{Style: style}
	}
}

// broadcastTagger announces the tagger toggle.
func broadcastTagger(enabled bool) tea.Cmd {
	return func() tea.Msg {
		return msg.TaggerToggledMsg{Enabled: enabled}
	}
}
