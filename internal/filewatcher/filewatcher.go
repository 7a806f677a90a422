// Package filewatcher detects external changes to a file being
// edited, collapsing any number of pending filesystem events into a
// single "has changed since last poll" bit.
//
// Grounded on _examples/original_source/file_watcher.h, which wraps
// raw Linux inotify directly: Watch (their watch()) replaces a
// previous watch and arms a new one; HasChanged (hasBeenModified())
// drains the event queue and reports whether a modify event arrived;
// IgnoreNextCycle (ignoreEventCycle()) drains the queue without
// reporting, used by the editor right after its own save so that
// write-back doesn't look like an external change. fsnotify
// (github.com/fsnotify/fsnotify, a teacher go.mod dependency promoted
// here from indirect-only to directly exercised) replaces the raw
// inotify syscalls with a cross-platform watch.
package filewatcher

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file path for external modifications.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger

	mu      sync.Mutex
	changed bool
}

// New creates a Watcher that logs through logger (nil selects
// slog.Default()).
func New(logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{watcher: fw, logger: logger}
	go w.loop()
	return w, nil
}

// Watch replaces any previous watch with one on path. fsnotify watches
// directories (not bare files) reliably across editors that replace a
// file on save rather than truncate it in place, so Watch watches the
// containing directory and filters events down to path.
func (w *Watcher) Watch(path string) error {
	if w.path != "" {
		_ = w.watcher.Remove(filepath.Dir(w.path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.path = abs
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.logger.Debug("filewatcher: watching", "path", abs)
	return nil
}

// HasChanged reports whether path has been modified since the last
// call to HasChanged or IgnoreNextCycle, then clears the flag.
func (w *Watcher) HasChanged() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	changed := w.changed
	w.changed = false
	return changed
}

// IgnoreNextCycle clears any pending change without reporting it —
// called right after the editor's own save so the write-back the
// watcher is about to observe isn't mistaken for an external edit.
func (w *Watcher) IgnoreNextCycle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.changed = false
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.changed = true
				w.mu.Unlock()
				w.logger.Debug("filewatcher: change detected", "path", event.Name, "op", event.Op.String())
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("filewatcher: error", "err", err)
		}
	}
}
