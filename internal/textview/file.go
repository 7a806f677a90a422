package textview

import (
	"fmt"
	"os"
	"strings"

	"github.com/itarato/peditor/internal/history"
	"github.com/itarato/peditor/internal/keywordset"
	"github.com/itarato/peditor/internal/linetree"
	"github.com/itarato/peditor/internal/pediterr"
)

// LoadFile reads path as bytes, splits it on "\n", and replaces the
// buffer wholesale: cursor and history are reset, the dirty bit is
// cleared, the path is registered with the file watcher, and the
// keyword set is reloaded from the path's extension. On any I/O error
// the buffer is left completely unchanged, per spec.md §4.5's failure
// semantics.
func (tv *TextView) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if tv.logger != nil {
			tv.logger.Warn("textview: load failed", "path", path, "error", err)
		}
		return fmt.Errorf("textview: load %q: %w", path, err)
	}

	content := string(raw)
	lines := strings.Split(content, "\n")
	if len(content) > 0 && strings.HasSuffix(content, "\n") {
		// getline-style split: a trailing newline produces no trailing
		// empty line, matching SaveFile's "\n" after every line.
		lines = lines[:len(lines)-1]
	}
	tv.tree = linetree.New(lines)
	tv.hist = history.New()
	tv.cursorRow, tv.cursorCol = 0, 0
	tv.xMemory = 0
	tv.vScroll, tv.hScroll = 0, 0
	tv.selActive = false
	tv.dirty = false
	tv.filePath = path
	tv.hasFile = true

	keywords, err := keywordset.LoadForFile(tv.keywordDir, path)
	if err != nil {
		if tv.logger != nil {
			tv.logger.Warn("textview: keyword reload failed", "path", path, "error", err)
		}
	} else {
		tv.keywords = keywords
	}

	if tv.watcher != nil {
		if err := tv.watcher.Watch(path); err != nil && tv.logger != nil {
			tv.logger.Warn("textview: watch failed", "path", path, "error", err)
		}
	}

	if tv.logger != nil {
		tv.logger.Info("textview: file loaded", "path", path, "lines", tv.tree.LineCount())
	}
	return nil
}

// SaveFile writes every line followed by "\n" to the associated path,
// clears the dirty bit, and instructs the watcher to ignore the
// resulting self-induced change event. Returns pediterr.ErrNoFile if
// no path is associated (SaveFileAs was never called).
func (tv *TextView) SaveFile() error {
	if !tv.hasFile {
		return pediterr.ErrNoFile
	}
	return tv.writeFile(tv.filePath)
}

// SaveFileAs updates the stored path and then behaves like SaveFile.
func (tv *TextView) SaveFileAs(path string) error {
	tv.filePath = path
	tv.hasFile = true
	return tv.writeFile(path)
}

func (tv *TextView) writeFile(path string) error {
	var b strings.Builder
	it := tv.tree.Forward()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		if tv.logger != nil {
			tv.logger.Warn("textview: save failed", "path", path, "error", err)
		}
		return fmt.Errorf("textview: save %q: %w", path, err)
	}
	if tv.watcher != nil {
		tv.watcher.IgnoreNextCycle()
	}

	tv.dirty = false
	if tv.logger != nil {
		tv.logger.Info("textview: file saved", "path", path, "lines", tv.tree.LineCount())
	}
	return nil
}
