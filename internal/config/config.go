package config

import (
	"fmt"
	"time"

	"github.com/nadia/entitle/internal/titlecase"
)

// Config is the root configuration structure.
type Config struct {
	Style   string        `json:"style"` // default style guide name
	Plugins PluginsConfig `json:"plugins"`
	Keymap  KeymapConfig  `json:"keymap"`
	UI      UIConfig      `json:"ui"`
}

// PluginsConfig holds per-plugin configuration.
type PluginsConfig struct {
	Convert ConvertPluginConfig `json:"convert"`
	Notes   NotesPluginConfig   `json:"notes"`
	Watch   WatchPluginConfig   `json:"watch"`
}

// ConvertPluginConfig configures the converter plugin.
type ConvertPluginConfig struct {
	Enabled   bool `json:"enabled"`
	UseTagger bool `json:"useTagger"` // enable the part-of-speech tagger
}

// NotesPluginConfig configures the notes plugin.
type NotesPluginConfig struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"dbPath"`
	Dir     string `json:"dir"` // markdown notes directory (supports ~ expansion)
}

// WatchPluginConfig configures the heading watcher.
type WatchPluginConfig struct {
	Enabled  bool          `json:"enabled"`
	Dir      string        `json:"dir"`   // directory to watch (defaults to notes dir)
	Apply    bool          `json:"apply"` // rewrite headings instead of suggesting
	Debounce time.Duration `json:"debounce"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool `json:"showFooter"`
	ListWidth  int  `json:"listWidth"` // notes list pane width in columns
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Style: titlecase.Chicago.String(),
		Plugins: PluginsConfig{
			Convert: ConvertPluginConfig{
				Enabled:   true,
				UseTagger: true,
			},
			Notes: NotesPluginConfig{
				Enabled: true,
				DBPath:  "~/.config/entitle/notes.db",
				Dir:     "~/notes",
			},
			Watch: WatchPluginConfig{
				Enabled:  false,
				Apply:    false,
				Debounce: 200 * time.Millisecond,
			},
		},
		Keymap: KeymapConfig{
			Overrides: map[string]string{},
		},
		UI: UIConfig{
			ShowFooter: true,
			ListWidth:  32,
		},
	}
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if _, ok := titlecase.ParseStyle(c.Style); !ok {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if c.UI.ListWidth < 10 {
		return fmt.Errorf("ui.listWidth must be at least 10, got %d", c.UI.ListWidth)
	}
	if c.Plugins.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// StyleGuide returns the parsed default style guide.
func (c *Config) StyleGuide() titlecase.Style {
	s, _ := titlecase.ParseStyle(c.Style)
	return s
}
