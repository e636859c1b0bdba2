package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/titlecase"
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ShowError returns a command to show an error toast.
func ShowError(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
			IsError:  true,
		}
	}
}

// StyleChangedMsg is broadcast to all plugins when the active style
// guide changes.
type StyleChangedMsg struct {
	Style titlecase.Style
}

// TaggerToggledMsg is broadcast when the part-of-speech tagger is
// switched on or off.
type TaggerToggledMsg struct {
	Enabled bool
}

// CreateNoteMsg asks the notes plugin to store a new note.
type CreateNoteMsg struct {
	Title   string
	Content string
}

// HeadingFixedMsg reports a watcher heading inspection.
type HeadingFixedMsg struct {
	Path    string
	Old     string
	New     string
	Applied bool
}
