// Package watch monitors a notes directory and keeps markdown headings
// title-cased. Each create or write of a .md file is debounced, the
// file's first-line heading is recased under the configured style, and
// the result is either applied in place or reported as a suggestion.
package watch

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nadia/entitle/internal/titlecase"
)

const defaultDebounce = 200 * time.Millisecond

// Event reports one heading inspection.
type Event struct {
	Path    string
	Old     string // original heading text, without the leading #
	New     string // title-cased heading text
	Applied bool   // true when the file was rewritten
}

// Options configure a Watcher.
type Options struct {
	Dir      string
	Style    titlecase.Style
	Tagger   titlecase.Tagger // optional
	Apply    bool             // rewrite files instead of only reporting
	Debounce time.Duration    // per-path event debounce, 0 = 200ms
	Logger   *slog.Logger     // optional
}

// Watcher watches one directory. Create with New, receive from Events,
// and Close when done.
type Watcher struct {
	opts   Options
	fsw    *fsnotify.Watcher
	events chan Event
	done   chan struct{}
}

// New starts watching opts.Dir. The returned watcher's Events channel is
// closed after Close.
func New(opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(opts.Dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", opts.Dir, err)
	}

	w := &Watcher{
		opts:   opts,
		fsw:    fsw,
		events: make(chan Event, 32),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers one Event per debounced heading inspection.
func (w *Watcher) Events() <-chan Event { return w.events }

// Close stops the watcher and closes the Events channel.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	defer close(w.events)

	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			// Debounce rapid events per path.
			path := ev.Name
			if t, exists := timers[path]; exists {
				t.Stop()
			}
			timers[path] = time.AfterFunc(w.opts.Debounce, func() {
				w.inspect(path)
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Warn("watch error", "err", err)
		}
	}
}

// inspect recases the heading of one file and emits an Event when the
// heading needed a change.
func (w *Watcher) inspect(path string) {
	old, fixed, ok, err := FixHeading(path, w.opts.Style, w.opts.Tagger, w.opts.Apply)
	if err != nil {
		w.opts.Logger.Warn("inspect failed", "path", path, "err", err)
		return
	}
	if !ok {
		return
	}

	ev := Event{Path: path, Old: old, New: fixed, Applied: w.opts.Apply}
	select {
	case w.events <- ev:
	case <-w.done:
	}
}

// FixHeading reads the file at path and title-cases its first-line
// markdown heading. When apply is true and the heading changes, the file
// is rewritten. It reports the old and new heading text and whether a
// change was needed.
func FixHeading(path string, style titlecase.Style, tagger titlecase.Tagger, apply bool) (old, fixed string, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	line, rest, _ := bytes.Cut(data, []byte("\n"))
	heading := string(line)
	if !strings.HasPrefix(heading, "# ") {
		return "", "", false, nil
	}

	old = strings.TrimSpace(strings.TrimPrefix(heading, "# "))
	if old == "" {
		return "", "", false, nil
	}
	fixed = titlecase.ConvertWithTagger(old, style, tagger)
	if fixed == old {
		return old, fixed, false, nil
	}

	if apply {
		out := append([]byte("# "+fixed+"\n"), rest...)
		if err := os.WriteFile(path, out, 0644); err != nil {
			return old, fixed, true, fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
	}
	return old, fixed, true, nil
}
