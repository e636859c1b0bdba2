// Package notes implements the note browser plugin.
package notes

import (
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/msg"
	store "github.com/nadia/entitle/internal/notes"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/state"
	"github.com/nadia/entitle/internal/titlecase"
	"github.com/nadia/entitle/internal/transform"
)

const (
	pluginID   = "notes"
	pluginName = "Notes"

	defaultListWidth = 32
)

// inputMode tracks which text input owns the keyboard.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeTitle            // new note title prompt
	modeBulk             // bulk add textarea
)

// Plugin implements the notes plugin.
type Plugin struct {
	ctx     *plugin.Context
	focused bool
	store   *store.Store

	// View dimensions
	width  int
	height int

	// List state
	notes       []store.Note
	cursor      int
	scrollOff   int
	listWidth   int
	showDeleted bool
	loading     bool
	loadErr     error

	// Conversion state
	style  titlecase.Style
	tagger titlecase.Tagger

	// Preview state
	renderer   *glamour.TermRenderer
	rendererW  int
	preview    string
	previewID  string
	previewErr error

	// Input state
	mode       inputMode
	titleInput textinput.Model
	bulkInput  textarea.Model
}

// New creates a new notes plugin.
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
	p.notes = nil
	p.cursor = 0
	p.scrollOff = 0
	p.showDeleted = false
	p.mode = modeBrowse

	p.listWidth = ctx.Config.UI.ListWidth
	if w := state.GetNotesListWidth(); w > 0 {
		p.listWidth = w
	}
	if p.listWidth <= 0 {
		p.listWidth = defaultListWidth
	}

	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 200
	p.titleInput = ti

	ta := textarea.New()
	ta.Placeholder = "One title per line"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	p.bulkInput = ta

	s, err := store.Open(ctx.Config.Plugins.Notes.DBPath)
	if err != nil {
		// The plugin stays registered and shows the error in its view.
		ctx.Logger.Warn("notes store unavailable", "err", err)
		p.store = nil
		p.loadErr = err
		return nil
	}
	p.store = s
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd {
	if p.store == nil {
		return nil
	}
	return p.loadNotes()
}

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {
	if p.store != nil {
		p.store.Close()
		p.store = nil
	}
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height
		p.resizeInputs()
		return p, nil

	case msg.StyleChangedMsg:
		p.style = m.Style
		return p, nil

	case msg.TaggerToggledMsg:
		if m.Enabled {
			p.tagger = p.ctx.Tagger
		} else {
			p.tagger = nil
		}
		return p, nil

	case msg.CreateNoteMsg:
		return p, p.createNote(m.Title, m.Content)

	case NotesLoadedMsg:
		p.loading = false
		if m.Err != nil {
			p.loadErr = m.Err
			p.ctx.Logger.Error("notes load failed", "err", m.Err)
			return p, nil
		}
		p.loadErr = nil
		p.notes = m.Notes
		if p.cursor >= len(p.notes) {
			p.cursor = len(p.notes) - 1
		}
		if p.cursor < 0 {
			p.cursor = 0
		}
		p.refreshPreview()
		return p, nil

	case NoteSavedMsg:
		if m.Err != nil {
			return p, msg.ShowError("Save failed: "+m.Err.Error(), 3*time.Second)
		}
		label := "Saved"
		if m.Note != nil {
			label = "Saved: " + m.Note.Title
		}
		return p, tea.Batch(p.loadNotes(), msg.ShowToast(label, 2*time.Second))

	case NoteDeletedMsg:
		if m.Err != nil {
			return p, msg.ShowError("Delete failed: "+m.Err.Error(), 3*time.Second)
		}
		label := "Deleted"
		if m.Restored {
			label = "Restored"
		}
		return p, tea.Batch(p.loadNotes(), msg.ShowToast(label, 2*time.Second))

	case BulkAddedMsg:
		if m.Err != nil {
			return p, msg.ShowError("Bulk add failed: "+m.Err.Error(), 3*time.Second)
		}
		text := plural(m.Created, "note") + " added"
		if m.Skipped > 0 {
			text += ", " + plural(m.Skipped, "duplicate") + " skipped"
		}
		return p, tea.Batch(p.loadNotes(), msg.ShowToast(text, 3*time.Second))

	case RetitledMsg:
		if m.Err != nil {
			return p, msg.ShowError("Retitle failed: "+m.Err.Error(), 3*time.Second)
		}
		return p, tea.Batch(p.loadNotes(), msg.ShowToast(plural(m.Count, "title")+" restyled", 2*time.Second))

	case keymap.CommandMsg:
		return p.handleCommand(m.ID)

	case tea.KeyMsg:
		return p.handleKey(m)
	}

	return p, nil
}

func (p *Plugin) handleKey(m tea.KeyMsg) (plugin.Plugin, tea.Cmd) {
	switch p.mode {
	case modeTitle:
		switch m.String() {
		case "enter":
			title := p.titleInput.Value()
			p.titleInput.Reset()
			p.titleInput.Blur()
			p.mode = modeBrowse
			if title == "" {
				return p, nil
			}
			styled := titlecase.ConvertWithTagger(title, p.style, p.tagger)
			return p, p.createNote(styled, "# "+styled+"\n")
		}
		var cmd tea.Cmd
		p.titleInput, cmd = p.titleInput.Update(m)
		return p, cmd

	case modeBulk:
		var cmd tea.Cmd
		p.bulkInput, cmd = p.bulkInput.Update(m)
		return p, cmd
	}

	return p, nil
}

// handleEditCommand serves the notes-edit keymap context while a text
// input is open.
func (p *Plugin) handleEditCommand(id string) (plugin.Plugin, tea.Cmd) {
	switch id {
	case "close-editor":
		p.titleInput.Reset()
		p.titleInput.Blur()
		p.bulkInput.Reset()
		p.bulkInput.Blur()
		p.mode = modeBrowse
		return p, nil

	case "save-note":
		if p.mode == modeBulk {
			text := p.bulkInput.Value()
			p.bulkInput.Reset()
			p.bulkInput.Blur()
			p.mode = modeBrowse
			return p, p.bulkAdd(text)
		}
		return p, nil

	case "smart-quotes":
		if p.mode == modeBulk {
			p.bulkInput.SetValue(transform.SmartQuotes(p.bulkInput.Value()))
		}
		return p, nil

	case "retitle-links":
		if p.mode == modeBulk {
			p.bulkInput.SetValue(transform.RetitleLinks(p.bulkInput.Value(), p.style))
		}
		return p, nil
	}
	return p, nil
}

func (p *Plugin) handleCommand(id string) (plugin.Plugin, tea.Cmd) {
	if p.mode != modeBrowse {
		return p.handleEditCommand(id)
	}

	switch id {
	case "cursor-down":
		p.moveCursor(1)
	case "cursor-up":
		p.moveCursor(-1)
	case "cursor-top":
		p.cursor = 0
		p.scrollOff = 0
		p.refreshPreview()
	case "cursor-bottom":
		p.cursor = len(p.notes) - 1
		if p.cursor < 0 {
			p.cursor = 0
		}
		p.ensureCursorVisible()
		p.refreshPreview()
	case "open-note":
		p.refreshPreview()
	case "new-note":
		p.mode = modeTitle
		return p, p.titleInput.Focus()
	case "bulk-add":
		p.mode = modeBulk
		return p, p.bulkInput.Focus()
	case "retitle-note":
		if n := p.selectedNote(); n != nil {
			return p, p.retitle(n.ID)
		}
	case "retitle-all":
		return p, p.retitleAll()
	case "toggle-pin":
		if n := p.selectedNote(); n != nil {
			return p, p.togglePin(n.ID)
		}
	case "delete-note":
		if n := p.selectedNote(); n != nil && !p.showDeleted {
			return p, p.deleteNote(n.ID)
		}
	case "restore-note":
		if n := p.selectedNote(); n != nil && p.showDeleted {
			return p, p.restoreNote(n.ID)
		}
	case "toggle-trash":
		p.showDeleted = !p.showDeleted
		p.cursor = 0
		p.scrollOff = 0
		return p, p.loadNotes()
	case "refresh":
		return p, p.loadNotes()
	case "yank-title":
		if n := p.selectedNote(); n != nil {
			if err := clipboard.WriteAll(n.Title); err != nil {
				return p, msg.ShowError("Copy failed: "+err.Error(), 3*time.Second)
			}
			return p, msg.ShowToast("Copied title", 2*time.Second)
		}
	}
	return p, nil
}

func (p *Plugin) moveCursor(delta int) {
	if len(p.notes) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.notes) {
		p.cursor = len(p.notes) - 1
	}
	p.ensureCursorVisible()
	p.refreshPreview()
}

func (p *Plugin) ensureCursorVisible() {
	visible := p.listRows()
	if visible < 1 {
		visible = 1
	}
	if p.cursor < p.scrollOff {
		p.scrollOff = p.cursor
	}
	if p.cursor >= p.scrollOff+visible {
		p.scrollOff = p.cursor - visible + 1
	}
}

func (p *Plugin) selectedNote() *store.Note {
	if p.cursor < 0 || p.cursor >= len(p.notes) {
		return nil
	}
	return &p.notes[p.cursor]
}

// loadNotes returns a command that loads notes from the store.
func (p *Plugin) loadNotes() tea.Cmd {
	if p.store == nil {
		return nil
	}
	if p.notes == nil {
		p.loading = true
	}
	deleted := p.showDeleted

	return func() tea.Msg {
		var (
			list []store.Note
			err  error
		)
		if deleted {
			list, err = p.store.ListDeleted()
		} else {
			list, err = p.store.List()
		}
		return NotesLoadedMsg{Notes: list, Err: err}
	}
}

func (p *Plugin) createNote(title, content string) tea.Cmd {
	if p.store == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := p.store.Create(title, content)
		return NoteSavedMsg{Note: n, Err: err}
	}
}

func (p *Plugin) bulkAdd(text string) tea.Cmd {
	if p.store == nil || text == "" {
		return nil
	}
	style, tagger := p.style, p.tagger
	return func() tea.Msg {
		created, skipped, err := p.store.BulkCreate(text, style, tagger)
		return BulkAddedMsg{Created: len(created), Skipped: skipped, Err: err}
	}
}

func (p *Plugin) retitle(id string) tea.Cmd {
	if p.store == nil {
		return nil
	}
	style, tagger := p.style, p.tagger
	return func() tea.Msg {
		if _, err := p.store.Retitle(id, style, tagger); err != nil {
			return RetitledMsg{Err: err}
		}
		return RetitledMsg{Count: 1}
	}
}

func (p *Plugin) retitleAll() tea.Cmd {
	if p.store == nil {
		return nil
	}
	ids := make([]string, len(p.notes))
	for i, n := range p.notes {
		ids[i] = n.ID
	}
	style, tagger := p.style, p.tagger
	return func() tea.Msg {
		count := 0
		for _, id := range ids {
			if _, err := p.store.Retitle(id, style, tagger); err != nil {
				return RetitledMsg{Count: count, Err: err}
			}
			count++
		}
		return RetitledMsg{Count: count}
	}
}

func (p *Plugin) togglePin(id string) tea.Cmd {
	if p.store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := p.store.TogglePin(id); err != nil {
			return NoteSavedMsg{Err: err}
		}
		n, err := p.store.Get(id)
		return NoteSavedMsg{Note: n, Err: err}
	}
}

func (p *Plugin) deleteNote(id string) tea.Cmd {
	if p.store == nil {
		return nil
	}
	return func() tea.Msg {
		return NoteDeletedMsg{ID: id, Err: p.store.Delete(id)}
	}
}

func (p *Plugin) restoreNote(id string) tea.Cmd {
	if p.store == nil {
		return nil
	}
	return func() tea.Msg {
		return NoteDeletedMsg{ID: id, Restored: true, Err: p.store.Restore(id)}
	}
}

// IsFocused returns whether the plugin has focus.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// FocusContext returns the keymap context for the plugin.
func (p *Plugin) FocusContext() string {
	if p.mode != modeBrowse {
		return "notes-edit"
	}
	return "notes"
}

// ConsumesTextInput reports whether typed characters belong to an input.
func (p *Plugin) ConsumesTextInput() bool {
	return p.mode != modeBrowse
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
