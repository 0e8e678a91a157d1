// Package watch generates agreements for intake workbooks dropped into a
// directory.
//
// Events are debounced per file so a workbook still being written by a
// spreadsheet application is only processed once it settles. Files are
// handled one at a time on the watcher goroutine.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/scopegen/internal/logger"
)

// DefaultDebounce is how long a file must be quiet before it is processed.
const DefaultDebounce = 500 * time.Millisecond

// Handler processes one settled intake file.
type Handler func(ctx context.Context, path string) error

// Watcher monitors a directory for intake workbooks.
type Watcher struct {
	dir      string
	handle   Handler
	debounce time.Duration
	tick     time.Duration

	pending map[string]time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a file is processed.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
			if d < w.tick {
				w.tick = d
			}
		}
	}
}

// New creates a watcher for dir. handle is called for every settled .xlsx.
func New(dir string, handle Handler, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		handle:   handle,
		debounce: DefaultDebounce,
		tick:     100 * time.Millisecond,
		pending:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Backfill processes the intake files already in the directory, in name order.
func (w *Watcher) Backfill(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		if !IsIntake(path) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		w.process(ctx, path)
	}
	return nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("watching %s", w.dir)

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.observe(evt)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		case <-ticker.C:
			w.flush(ctx, time.Now())
		}
	}
}

// observe records a create or write of an intake file.
func (w *Watcher) observe(evt fsnotify.Event) {
	if !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Rename) {
		return
	}
	if !IsIntake(evt.Name) {
		return
	}
	logger.Debug("watch event %s on %s", evt.Op, evt.Name)
	w.pending[evt.Name] = time.Now()
}

// flush processes every pending file that has been quiet for the debounce
// window, oldest name first.
func (w *Watcher) flush(ctx context.Context, now time.Time) {
	var ready []string
	for path, seen := range w.pending {
		if now.Sub(seen) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	sort.Strings(ready)
	for _, path := range ready {
		if ctx.Err() != nil {
			return
		}
		// A rename away also fires an event on the old name.
		if _, err := os.Stat(path); err != nil {
			continue
		}
		w.process(ctx, path)
	}
}

func (w *Watcher) process(ctx context.Context, path string) {
	if err := w.handle(ctx, path); err != nil {
		logger.Error("%s: %v", filepath.Base(path), err)
	}
}

// IsIntake reports whether path names a workbook the watcher should process.
// Office lock files ("~$name.xlsx") and hidden files are skipped.
func IsIntake(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".xlsx")
}
