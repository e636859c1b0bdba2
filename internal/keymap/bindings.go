package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "tab", Command: "next-plugin", Context: "global"},
		{Key: "shift+tab", Command: "prev-plugin", Context: "global"},
		{Key: "ctrl+g", Command: "cycle-style", Context: "global"},
		{Key: "ctrl+t", Command: "toggle-tagger", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "ctrl+_", Command: "toggle-help", Context: "global"},

		// Converter context
		{Key: "ctrl+y", Command: "copy-result", Context: "convert"},
		{Key: "ctrl+v", Command: "paste-input", Context: "convert"},
		{Key: "ctrl+l", Command: "clear-input", Context: "convert"},
		{Key: "ctrl+q", Command: "toggle-quotes", Context: "convert"},
		{Key: "ctrl+s", Command: "save-note", Context: "convert"},

		// Notes list context
		{Key: "j", Command: "cursor-down", Context: "notes"},
		{Key: "down", Command: "cursor-down", Context: "notes"},
		{Key: "k", Command: "cursor-up", Context: "notes"},
		{Key: "up", Command: "cursor-up", Context: "notes"},
		{Key: "g", Command: "cursor-top", Context: "notes"},
		{Key: "G", Command: "cursor-bottom", Context: "notes"},
		{Key: "enter", Command: "open-note", Context: "notes"},
		{Key: "n", Command: "new-note", Context: "notes"},
		{Key: "b", Command: "bulk-add", Context: "notes"},
		{Key: "t", Command: "retitle-note", Context: "notes"},
		{Key: "T", Command: "retitle-all", Context: "notes"},
		{Key: "p", Command: "toggle-pin", Context: "notes"},
		{Key: "d", Command: "delete-note", Context: "notes"},
		{Key: "u", Command: "restore-note", Context: "notes"},
		{Key: "x", Command: "toggle-trash", Context: "notes"},
		{Key: "r", Command: "refresh", Context: "notes"},
		{Key: "y", Command: "yank-title", Context: "notes"},

		// Notes editor context
		{Key: "esc", Command: "close-editor", Context: "notes-edit"},
		{Key: "ctrl+s", Command: "save-note", Context: "notes-edit"},
		{Key: "ctrl+q", Command: "smart-quotes", Context: "notes-edit"},
		{Key: "ctrl+r", Command: "retitle-links", Context: "notes-edit"},
	}
}

// RegisterDefaults loads the default bindings into a registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.Bind(b)
	}
}
