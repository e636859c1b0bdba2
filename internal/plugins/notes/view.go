package notes

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/nadia/entitle/internal/styles"
)

// View renders the note list and preview panes.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height
	p.resizeInputs()

	if p.store == nil {
		text := "Notes store unavailable"
		if p.loadErr != nil {
			text += ": " + p.loadErr.Error()
		}
		return styles.Muted.Render(text)
	}

	switch p.mode {
	case modeTitle:
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.PanelHeader.Render("New note"),
			p.titleInput.View(),
			styles.Subtle.Render("enter: create  esc: cancel"),
		)
		return p.constrain(styles.PanelActive.Width(width - 2).Render(content))

	case modeBulk:
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.PanelHeader.Render("Bulk add"),
			p.bulkInput.View(),
			styles.Subtle.Render("ctrl+s: add all  esc: cancel"),
		)
		return p.constrain(styles.PanelActive.Width(width - 2).Render(content))
	}

	list := p.renderList()
	preview := p.renderPreview()
	return p.constrain(lipgloss.JoinHorizontal(lipgloss.Top, list, preview))
}

func (p *Plugin) constrain(content string) string {
	return lipgloss.NewStyle().
		Width(p.width).
		Height(p.height).
		MaxHeight(p.height).
		Render(content)
}

// listRows returns how many note rows fit in the list pane.
func (p *Plugin) listRows() int {
	return p.height - 4
}

func (p *Plugin) renderList() string {
	header := "Notes"
	if p.showDeleted {
		header = "Trash"
	}

	rows := []string{styles.PanelHeader.Render(header)}
	visible := p.listRows()
	if visible < 1 {
		visible = 1
	}

	if p.loading {
		rows = append(rows, styles.Muted.Render("Loading..."))
	} else if p.loadErr != nil {
		rows = append(rows, styles.Muted.Render("Load failed"))
	} else if len(p.notes) == 0 {
		rows = append(rows, styles.Subtle.Render("No notes"))
	}

	end := p.scrollOff + visible
	if end > len(p.notes) {
		end = len(p.notes)
	}
	textWidth := p.listWidth - 4
	if textWidth < 4 {
		textWidth = 4
	}
	for i := p.scrollOff; i < end; i++ {
		n := p.notes[i]
		label := runewidth.Truncate(n.Title, textWidth, "…")
		switch {
		case i == p.cursor:
			label = styles.ListSelected.Render(label)
		case p.showDeleted:
			label = styles.ListDeleted.Render(label)
		case n.Pinned:
			label = styles.ListPinned.Render("• " + label)
		default:
			label = styles.ListNormal.Render(label)
		}
		rows = append(rows, label)
	}

	panel := styles.PanelInactive
	if p.focused {
		panel = styles.PanelActive
	}
	return panel.Width(p.listWidth).Render(strings.Join(rows, "\n"))
}

func (p *Plugin) renderPreview() string {
	w := p.width - p.listWidth - 4
	if w < 10 {
		w = 10
	}

	var body string
	switch {
	case p.previewErr != nil:
		body = styles.Muted.Render("Preview failed: " + p.previewErr.Error())
	case p.preview == "":
		body = styles.Subtle.Render("Select a note")
	default:
		body = p.preview
	}

	lines := strings.Split(body, "\n")
	maxLines := p.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "…")
	}

	return styles.PanelInactive.Width(w).Render(strings.Join(lines, "\n"))
}

// refreshPreview renders the selected note's markdown through glamour.
func (p *Plugin) refreshPreview() {
	n := p.selectedNote()
	if n == nil {
		p.preview = ""
		p.previewID = ""
		p.previewErr = nil
		return
	}
	if n.ID == p.previewID && p.previewErr == nil && p.preview != "" {
		return
	}

	w := p.width - p.listWidth - 6
	if w < 20 {
		w = 20
	}
	if p.renderer == nil || p.rendererW != w {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			p.previewErr = err
			return
		}
		p.renderer = r
		p.rendererW = w
	}

	out, err := p.renderer.Render(n.Content)
	if err != nil {
		p.previewErr = err
		p.preview = ""
		p.previewID = ""
		return
	}
	p.previewErr = nil
	p.preview = out
	p.previewID = n.ID
}

func (p *Plugin) resizeInputs() {
	w := p.width - 6
	if w < 10 {
		w = 10
	}
	p.titleInput.Width = w
	p.bulkInput.SetWidth(w)
	h := p.height - 6
	if h < 3 {
		h = 3
	}
	p.bulkInput.SetHeight(h)
}
