package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Style   string            `json:"style,omitempty"`
	Plugins savePluginsConfig `json:"plugins"`
	Keymap  KeymapConfig      `json:"keymap"`
	UI      UIConfig          `json:"ui"`
}

type savePluginsConfig struct {
	Convert saveConvertConfig `json:"convert,omitempty"`
	Notes   saveNotesConfig   `json:"notes,omitempty"`
	Watch   saveWatchConfig   `json:"watch,omitempty"`
}

type saveConvertConfig struct {
	Enabled   *bool `json:"enabled,omitempty"`
	UseTagger *bool `json:"useTagger,omitempty"`
}

type saveNotesConfig struct {
	Enabled *bool  `json:"enabled,omitempty"`
	DBPath  string `json:"dbPath,omitempty"`
	Dir     string `json:"dir,omitempty"`
}

type saveWatchConfig struct {
	Enabled  *bool  `json:"enabled,omitempty"`
	Dir      string `json:"dir,omitempty"`
	Apply    *bool  `json:"apply,omitempty"`
	Debounce string `json:"debounce,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Style: cfg.Style,
		Plugins: savePluginsConfig{
			Convert: saveConvertConfig{
				Enabled:   &cfg.Plugins.Convert.Enabled,
				UseTagger: &cfg.Plugins.Convert.UseTagger,
			},
			Notes: saveNotesConfig{
				Enabled: &cfg.Plugins.Notes.Enabled,
				DBPath:  cfg.Plugins.Notes.DBPath,
				Dir:     cfg.Plugins.Notes.Dir,
			},
			Watch: saveWatchConfig{
				Enabled:  &cfg.Plugins.Watch.Enabled,
				Dir:      cfg.Plugins.Watch.Dir,
				Apply:    &cfg.Plugins.Watch.Apply,
				Debounce: cfg.Plugins.Watch.Debounce.String(),
			},
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config to ~/.config/entitle/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveStyle updates only the default style name in config and saves.
func SaveStyle(styleName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Style = styleName
	return Save(cfg)
}
