package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	LastStyle    string `json:"lastStyle,omitempty"`    // style guide selected last session
	ActivePlugin string `json:"activePlugin,omitempty"` // plugin focused last session
	UseTagger    *bool  `json:"useTagger,omitempty"`    // tagger toggle, nil = use config

	// Notes list pane width in columns (0 = use default)
	NotesListWidth int `json:"notesListWidth,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "entitle"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLastStyle returns the style guide selected last session.
// Returns "" if none is saved.
func GetLastStyle() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.LastStyle
}

// SetLastStyle saves the selected style guide.
func SetLastStyle(name string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LastStyle = name
	mu.Unlock()
	return Save()
}

// GetActivePlugin returns the plugin focused last session.
func GetActivePlugin() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.ActivePlugin
}

// SetActivePlugin saves the focused plugin ID.
func SetActivePlugin(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ActivePlugin = id
	mu.Unlock()
	return Save()
}

// GetUseTagger returns the saved tagger toggle and whether one is saved.
func GetUseTagger() (bool, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.UseTagger == nil {
		return false, false
	}
	return *current.UseTagger, true
}

// SetUseTagger saves the tagger toggle.
func SetUseTagger(on bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.UseTagger = &on
	mu.Unlock()
	return Save()
}

// GetNotesListWidth returns the saved notes list pane width.
// Returns 0 if no preference is saved (use default).
func GetNotesListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.NotesListWidth
}

// SetNotesListWidth saves the notes list pane width.
func SetNotesListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.NotesListWidth = width
	mu.Unlock()
	return Save()
}
