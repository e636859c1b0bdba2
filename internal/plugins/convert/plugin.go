// Package convert implements the interactive title-case converter.
package convert

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/msg"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/styles"
	"github.com/nadia/entitle/internal/titlecase"
	"github.com/nadia/entitle/internal/transform"
)

const (
	pluginID   = "convert"
	pluginName = "Convert"
)

// Plugin implements the converter plugin.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	// View dimensions
	width  int
	height int

	// Input state
	input textarea.Model

	// Conversion state
	style       titlecase.Style
	tagger      titlecase.Tagger
	useTagger   bool
	smartQuotes bool
	output      string
}

// New creates a new converter plugin.
func New() *Plugin {
	return &Plugin{}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Init initializes the plugin with context.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.style = ctx.Style
	p.tagger = ctx.Tagger
	p.useTagger = ctx.Config.Plugins.Convert.UseTagger && ctx.Tagger != nil
	p.smartQuotes = false
	p.output = ""

	ta := textarea.New()
	ta.Placeholder = "Type or paste titles, one per line"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	p.input = ta

	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd {
	return textarea.Blink
}

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height
		p.resizeInput()
		return p, nil

	case msg.StyleChangedMsg:
		p.style = m.Style
		p.reconvert()
		return p, nil

	case msg.TaggerToggledMsg:
		p.useTagger = m.Enabled && p.tagger != nil
		p.reconvert()
		return p, nil

	case keymap.CommandMsg:
		return p.handleCommand(m.ID)

	case tea.KeyMsg:
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(m)
		p.reconvert()
		return p, cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(m)
	return p, cmd
}

func (p *Plugin) handleCommand(id string) (plugin.Plugin, tea.Cmd) {
	switch id {
	case "copy-result":
		if p.output == "" {
			return p, nil
		}
		if err := clipboard.WriteAll(p.output); err != nil {
			return p, msg.ShowError("Copy failed: "+err.Error(), 3*time.Second)
		}
		return p, msg.ShowToast("Copied result", 2*time.Second)

	case "paste-input":
		text, err := clipboard.ReadAll()
		if err != nil {
			return p, msg.ShowError("Paste failed: "+err.Error(), 3*time.Second)
		}
		p.input.InsertString(text)
		p.reconvert()
		return p, nil

	case "clear-input":
		p.input.Reset()
		p.output = ""
		return p, nil

	case "toggle-quotes":
		p.smartQuotes = !p.smartQuotes
		p.reconvert()
		label := "Smart quotes off"
		if p.smartQuotes {
			label = "Smart quotes on"
		}
		return p, msg.ShowToast(label, 2*time.Second)

	case "save-note":
		lines := outputLines(p.output)
		if len(lines) == 0 {
			return p, msg.ShowError("Nothing to save", 2*time.Second)
		}
		title := lines[0]
		return p, func() tea.Msg {
			return msg.CreateNoteMsg{Title: title, Content: "# " + title + "\n\n" + p.output}
		}
	}
	return p, nil
}

// reconvert recomputes the output pane from the current input.
func (p *Plugin) reconvert() {
	p.output = p.convert(p.input.Value())
}

// convert title-cases every line of text under the active style.
func (p *Plugin) convert(text string) string {
	if text == "" {
		return ""
	}
	var tagger titlecase.Tagger
	if p.useTagger {
		tagger = p.tagger
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		out := titlecase.ConvertWithTagger(line, p.style, tagger)
		if p.smartQuotes {
			out = transform.SmartQuotes(out)
		}
		lines[i] = out
	}
	return strings.Join(lines, "\n")
}

func outputLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func (p *Plugin) resizeInput() {
	w := p.width - 4
	if w < 10 {
		w = 10
	}
	h := (p.height - 6) / 2
	if h < 3 {
		h = 3
	}
	p.input.SetWidth(w)
	p.input.SetHeight(h)
}

// View renders the converter.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height
	p.resizeInput()

	badge := styles.StyleBadge.Render(p.style.String())
	mode := "static rules"
	if p.useTagger {
		mode = "tagger"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		badge, " ", styles.Muted.Render(mode))

	inputPanel := styles.PanelInactive
	if p.focused {
		inputPanel = styles.PanelActive
	}
	in := inputPanel.Width(width - 2).Render(p.input.View())

	out := p.output
	if out == "" {
		out = styles.Subtle.Render("Converted titles appear here")
	}
	outPanel := styles.PanelInactive.Width(width - 2).Render(out)

	content := lipgloss.JoinVertical(lipgloss.Left, header, in, outPanel)
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// IsFocused returns whether the plugin has focus.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) {
	p.focused = f
	if f {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// FocusContext returns the keymap context for the plugin.
func (p *Plugin) FocusContext() string { return "convert" }

// ConsumesTextInput reports that typed characters belong to the input
// area while the plugin is focused.
func (p *Plugin) ConsumesTextInput() bool { return p.focused }
