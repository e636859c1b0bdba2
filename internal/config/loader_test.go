package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nadia/entitle/internal/titlecase"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Style != "Chicago" {
		t.Errorf("got style %q, want 'Chicago'", cfg.Style)
	}
	if !cfg.Plugins.Convert.Enabled {
		t.Error("convert should be enabled by default")
	}
	if !cfg.Plugins.Notes.Enabled {
		t.Error("notes should be enabled by default")
	}
	if cfg.Plugins.Watch.Enabled {
		t.Error("watch should be disabled by default")
	}
	if cfg.Plugins.Watch.Debounce != 200*time.Millisecond {
		t.Errorf("got debounce %v, want 200ms", cfg.Plugins.Watch.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"style": "ap",
		"plugins": {
			"convert": {
				"useTagger": false
			},
			"watch": {
				"enabled": true,
				"dir": "/tmp/vault",
				"debounce": "1s"
			}
		},
		"ui": {
			"listWidth": 40
		}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.StyleGuide() != titlecase.AP {
		t.Errorf("got style %v, want AP", cfg.StyleGuide())
	}
	if cfg.Plugins.Convert.UseTagger {
		t.Error("useTagger should be disabled")
	}
	if !cfg.Plugins.Convert.Enabled {
		t.Error("convert enabled default should survive partial merge")
	}
	if !cfg.Plugins.Watch.Enabled {
		t.Error("watch should be enabled")
	}
	if cfg.Plugins.Watch.Dir != "/tmp/vault" {
		t.Errorf("got watch dir %q", cfg.Plugins.Watch.Dir)
	}
	if cfg.Plugins.Watch.Debounce != time.Second {
		t.Errorf("got debounce %v, want 1s", cfg.Plugins.Watch.Debounce)
	}
	if cfg.UI.ListWidth != 40 {
		t.Errorf("got listWidth %d, want 40", cfg.UI.ListWidth)
	}
	if !cfg.UI.ShowFooter {
		t.Error("showFooter default should survive partial merge")
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestLoadFrom_UnknownStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{"style": "vancouver"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on unknown style")
	}
}

func TestLoadFrom_WatchDirDefaultsToNotesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"plugins": {
			"notes": {"dir": "/srv/notes"}
		}
	}`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Plugins.Watch.Dir != "/srv/notes" {
		t.Errorf("got watch dir %q, want notes dir", cfg.Plugins.Watch.Dir)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got := ExpandPath("~/notes")
	want := filepath.Join(home, "notes")
	if got != want {
		t.Errorf("ExpandPath(~/notes) = %q, want %q", got, want)
	}

	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestKeymapOverridesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{"keymap": {"overrides": {"quit": "ctrl+q"}}}`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Keymap.Overrides["quit"] != "ctrl+q" {
		t.Errorf("override not merged: %v", cfg.Keymap.Overrides)
	}
}
