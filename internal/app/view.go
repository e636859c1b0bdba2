package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nadia/entitle/internal/styles"
)

// View renders the full application frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := ""
	if m.showFooter {
		footer = m.renderFooter()
	}

	contentHeight := m.height - lipgloss.Height(header)
	if footer != "" {
		contentHeight -= lipgloss.Height(footer)
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	if m.showHelp {
		content = m.renderHelp(contentHeight)
	} else if p := m.ActivePlugin(); p != nil {
		content = p.View(m.width, contentHeight)
	} else {
		content = styles.Muted.Render("No plugins enabled")
	}

	sections := []string{header, content}
	if footer != "" {
		sections = append(sections, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	logo := styles.Logo.Render("entitle")

	var tabs []string
	for i, p := range m.registry.Plugins() {
		style := styles.TabInactive
		if i == m.activePlugin {
			style = styles.TabActive
		}
		tabs = append(tabs, style.Render(p.Name()))
	}

	badge := styles.StyleBadge.Render(m.style.String())

	left := logo + " " + strings.Join(tabs, "")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + badge
}

func (m Model) renderFooter() string {
	hints := []string{
		"tab: switch",
		"ctrl+g: style",
		"ctrl+t: tagger",
		"ctrl+_: help",
		"ctrl+c: quit",
	}
	if m.statusMsg != "" {
		toast := styles.ToastSuccess
		if m.statusIsError {
			toast = styles.ToastError
		}
		return toast.Render(m.statusMsg)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderHelp lists the bindings for the global and active contexts.
func (m Model) renderHelp(height int) string {
	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Key bindings") + "\n")

	contexts := []string{"global"}
	if m.activeContext != "global" {
		contexts = append(contexts, m.activeContext)
	}
	for _, ctx := range contexts {
		b.WriteString(styles.Title.Render(ctx) + "\n")
		for _, binding := range m.keymap.BindingsForContext(ctx) {
			line := styles.KeyHint.Render(binding.Key) + " " + styles.Body.Render(binding.Command)
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(styles.Subtle.Render("\nversion " + m.currentVersion))

	panel := styles.PanelActive.Width(m.width - 2).Render(b.String())
	return lipgloss.NewStyle().MaxHeight(height).Render(panel)
}
