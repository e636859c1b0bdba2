package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/entitle"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Style   string           `json:"style"`
	Plugins rawPluginsConfig `json:"plugins"`
	Keymap  KeymapConfig     `json:"keymap"`
	UI      rawUIConfig      `json:"ui"`
}

type rawPluginsConfig struct {
	Convert rawConvertConfig `json:"convert"`
	Notes   rawNotesConfig   `json:"notes"`
	Watch   rawWatchConfig   `json:"watch"`
}

type rawConvertConfig struct {
	Enabled   *bool `json:"enabled"`
	UseTagger *bool `json:"useTagger"`
}

type rawNotesConfig struct {
	Enabled *bool  `json:"enabled"`
	DBPath  string `json:"dbPath"`
	Dir     string `json:"dir"`
}

type rawWatchConfig struct {
	Enabled  *bool  `json:"enabled"`
	Dir      string `json:"dir"`
	Apply    *bool  `json:"apply"`
	Debounce string `json:"debounce"`
}

type rawUIConfig struct {
	ShowFooter *bool `json:"showFooter"`
	ListWidth  *int  `json:"listWidth"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/entitle/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Merge raw config into defaults
	mergeConfig(cfg, &raw)

	// Expand paths
	cfg.Plugins.Notes.DBPath = ExpandPath(cfg.Plugins.Notes.DBPath)
	cfg.Plugins.Notes.Dir = ExpandPath(cfg.Plugins.Notes.Dir)
	cfg.Plugins.Watch.Dir = ExpandPath(cfg.Plugins.Watch.Dir)

	// The watcher follows the notes directory unless pointed elsewhere.
	if cfg.Plugins.Watch.Dir == "" {
		cfg.Plugins.Watch.Dir = cfg.Plugins.Notes.Dir
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Style != "" {
		cfg.Style = raw.Style
	}

	// Convert
	if raw.Plugins.Convert.Enabled != nil {
		cfg.Plugins.Convert.Enabled = *raw.Plugins.Convert.Enabled
	}
	if raw.Plugins.Convert.UseTagger != nil {
		cfg.Plugins.Convert.UseTagger = *raw.Plugins.Convert.UseTagger
	}

	// Notes
	if raw.Plugins.Notes.Enabled != nil {
		cfg.Plugins.Notes.Enabled = *raw.Plugins.Notes.Enabled
	}
	if raw.Plugins.Notes.DBPath != "" {
		cfg.Plugins.Notes.DBPath = raw.Plugins.Notes.DBPath
	}
	if raw.Plugins.Notes.Dir != "" {
		cfg.Plugins.Notes.Dir = raw.Plugins.Notes.Dir
	}

	// Watch
	if raw.Plugins.Watch.Enabled != nil {
		cfg.Plugins.Watch.Enabled = *raw.Plugins.Watch.Enabled
	}
	if raw.Plugins.Watch.Dir != "" {
		cfg.Plugins.Watch.Dir = raw.Plugins.Watch.Dir
	}
	if raw.Plugins.Watch.Apply != nil {
		cfg.Plugins.Watch.Apply = *raw.Plugins.Watch.Apply
	}
	if raw.Plugins.Watch.Debounce != "" {
		if d, err := time.ParseDuration(raw.Plugins.Watch.Debounce); err == nil {
			cfg.Plugins.Watch.Debounce = d
		}
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ListWidth != nil {
		cfg.UI.ListWidth = *raw.UI.ListWidth
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
