package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadia/entitle/internal/app"
	"github.com/nadia/entitle/internal/config"
	"github.com/nadia/entitle/internal/keymap"
	"github.com/nadia/entitle/internal/plugin"
	"github.com/nadia/entitle/internal/plugins/convert"
	"github.com/nadia/entitle/internal/plugins/notes"
	"github.com/nadia/entitle/internal/postag"
	"github.com/nadia/entitle/internal/state"
	"github.com/nadia/entitle/internal/titlecase"
	"github.com/nadia/entitle/internal/watch"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	styleFlag    = flag.String("style", "", "style guide (AMA, AP, APA, Bluebook, Chicago, MLA, NYT, Wikipedia)")
	notesDir     = flag.String("notes", "", "notes directory (overrides config)")
	tuiFlag      = flag.Bool("tui", false, "open the interactive converter")
	watchFlag    = flag.Bool("watch", false, "watch the notes directory and report heading fixes")
	applyFlag    = flag.Bool("apply", false, "with -watch, rewrite headings in place")
	clipFlag     = flag.Bool("clip", false, "convert the clipboard contents in place")
	taggerFlag   = flag.Bool("tagger", true, "use the part-of-speech tagger")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	// Handle version flag
	if *versionFlag || *shortVersion {
		fmt.Printf("entitle version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *notesDir != "" {
		cfg.Plugins.Notes.Dir = config.ExpandPath(*notesDir)
		cfg.Plugins.Watch.Dir = cfg.Plugins.Notes.Dir
	}

	// Load persistent state (ignore errors - state is optional)
	_ = state.Init()

	style := resolveStyle(cfg)
	var tagger titlecase.Tagger
	useTagger := resolveUseTagger(cfg)
	if useTagger {
		tagger = postag.New()
	}

	switch {
	case *tuiFlag:
		runTUI(cfg, logger, style, tagger, useTagger)
	case *watchFlag:
		runWatch(cfg, logger, style, tagger)
	case *clipFlag:
		runClipboard(style, tagger)
	default:
		runOnce(style, tagger)
	}
}

// resolveStyle picks the style guide: flag, then saved state, then config.
func resolveStyle(cfg *config.Config) titlecase.Style {
	if *styleFlag != "" {
		s, ok := titlecase.ParseStyle(*styleFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown style %q\n", *styleFlag)
			os.Exit(1)
		}
		return s
	}
	if saved := state.GetLastStyle(); saved != "" {
		if s, ok := titlecase.ParseStyle(saved); ok {
			return s
		}
	}
	return cfg.StyleGuide()
}

// resolveUseTagger picks the tagger toggle: flag, then state, then config.
func resolveUseTagger(cfg *config.Config) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tagger" {
			set = true
		}
	})
	if set {
		return *taggerFlag
	}
	if on, ok := state.GetUseTagger(); ok {
		return on
	}
	return cfg.Plugins.Convert.UseTagger
}

// runOnce converts the arguments, or stdin when none are given, one
// title per line.
func runOnce(style titlecase.Style, tagger titlecase.Tagger) {
	if args := flag.Args(); len(args) > 0 {
		fmt.Println(titlecase.ConvertWithTagger(strings.Join(args, " "), style, tagger))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Println(titlecase.ConvertWithTagger(scanner.Text(), style, tagger))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Read failed: %v\n", err)
		os.Exit(1)
	}
}

// runClipboard rewrites the clipboard contents line by line.
func runClipboard(style titlecase.Style, tagger titlecase.Tagger) {
	text, err := clipboard.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Clipboard read failed: %v\n", err)
		os.Exit(1)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = titlecase.ConvertWithTagger(line, style, tagger)
	}
	out := strings.Join(lines, "\n")
	if err := clipboard.WriteAll(out); err != nil {
		fmt.Fprintf(os.Stderr, "Clipboard write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// runWatch follows the notes directory and reports or applies heading
// fixes until interrupted.
func runWatch(cfg *config.Config, logger *slog.Logger, style titlecase.Style, tagger titlecase.Tagger) {
	dir := cfg.Plugins.Watch.Dir
	if dir == "" {
		dir = cfg.Plugins.Notes.Dir
	}
	w, err := watch.New(watch.Options{
		Dir:      dir,
		Style:    style,
		Tagger:   tagger,
		Apply:    *applyFlag,
		Debounce: cfg.Plugins.Watch.Debounce,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Watch failed: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	logger.Info("watching", "dir", dir, "style", style.String(), "apply", *applyFlag)
	for ev := range w.Events() {
		if ev.Applied {
			fmt.Printf("%s: retitled to %q\n", filepath.Base(ev.Path), ev.New)
		} else {
			fmt.Printf("%s: %q should be %q\n", filepath.Base(ev.Path), ev.Old, ev.New)
		}
	}
}

// runTUI wires the plugins and starts the interactive application.
func runTUI(cfg *config.Config, logger *slog.Logger, style titlecase.Style, tagger titlecase.Tagger, useTagger bool) {
	pluginCtx := &plugin.Context{
		WorkDir:   mustWorkDir(),
		ConfigDir: filepath.Dir(config.ConfigPath()),
		Config:    cfg,
		Logger:    logger,
		Style:     style,
		Tagger:    tagger,
	}

	registry := plugin.NewRegistry(pluginCtx)
	if cfg.Plugins.Convert.Enabled {
		registry.Register(convert.New())
	}
	if cfg.Plugins.Notes.Enabled {
		registry.Register(notes.New())
	}

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	var watcher *watch.Watcher
	if cfg.Plugins.Watch.Enabled {
		w, err := watch.New(watch.Options{
			Dir:      cfg.Plugins.Watch.Dir,
			Style:    style,
			Tagger:   tagger,
			Apply:    cfg.Plugins.Watch.Apply,
			Debounce: cfg.Plugins.Watch.Debounce,
			Logger:   logger,
		})
		if err != nil {
			logger.Warn("watcher disabled", "err", err)
		} else {
			watcher = w
		}
	}

	model := app.New(registry, km, cfg, watcher, style, useTagger,
		effectiveVersion(Version), state.GetActivePlugin())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func mustWorkDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		short := revision
		if len(short) > 8 {
			short = short[:8]
		}
		if dirty {
			return short + "-dirty"
		}
		return short
	}

	return "dev"
}
