// Package textview implements TextView: the state machine that owns a
// LineTree, a cursor, an optional selection, viewport scroll offsets,
// and the History that makes every mutating method undoable.
//
// Grounded on spec.md §4.5, on _examples/original_source/editor.h's
// cursor-clamp shape (fixCursorPos), and on the teacher's
// internal/ui/components/vimtea/cursor.go and buffer.go for the Go
// idiom a terminal text buffer's cursor/viewport state machine takes
// in this corpus (plain methods on a struct, no interface, mutating
// in place and returning an error only where the original operation
// can fail).
package textview

import (
	"log/slog"

	"github.com/itarato/peditor/internal/filewatcher"
	"github.com/itarato/peditor/internal/history"
	"github.com/itarato/peditor/internal/linetree"
	"github.com/itarato/peditor/internal/render"
)

// TextView is the editing surface for a single buffer.
type TextView struct {
	tree *linetree.Tree
	hist *history.History

	cursorRow, cursorCol int
	xMemory              int
	lastHomeAtCol0       bool

	vScroll, hScroll int
	cols, rows       int
	tabBarVisible    bool

	selActive bool
	selAnchor history.Position
	selHead   history.Position

	filePath string
	hasFile  bool
	dirty    bool
	keywords map[string]struct{}

	keywordDir string
	tabSize    int

	watcher *filewatcher.Watcher
	theme   render.Theme
	logger  *slog.Logger

	pasteWrapWidth   int
	lastPastePreview string
}

// Option configures a new TextView.
type Option func(*TextView)

// WithTabSize sets the indent width used by Tab/IndentRight. Default 4.
func WithTabSize(n int) Option {
	return func(tv *TextView) { tv.tabSize = n }
}

// WithKeywordDir sets the directory keyword files are loaded from
// (config/keywords by default).
func WithKeywordDir(dir string) Option {
	return func(tv *TextView) { tv.keywordDir = dir }
}

// WithTheme sets the render.Theme used by DrawLine. Default is
// render.NewTheme("monokai").
func WithTheme(theme render.Theme) Option {
	return func(tv *TextView) { tv.theme = theme }
}

// WithLogger sets the logger used for file load/save, keyword-reload
// and watch diagnostics; buffer edits are not logged. Default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(tv *TextView) { tv.logger = logger }
}

// WithWatcher attaches a FileWatcher that LoadFile/SaveFile register
// and ignore-cycle against.
func WithWatcher(w *filewatcher.Watcher) Option {
	return func(tv *TextView) { tv.watcher = w }
}

// WithPasteWrapWidth turns on the soft-wrap paste preview: after every
// Paste, PastePreview returns text word-wrapped to width columns for a
// caller that wants to show what a paste would look like reflowed,
// without touching the stored lines themselves. 0 (the default)
// disables the preview.
func WithPasteWrapWidth(width int) Option {
	return func(tv *TextView) { tv.pasteWrapWidth = width }
}

// New creates an empty TextView (a single empty line, cursor at 0,0).
func New(opts ...Option) *TextView {
	tv := &TextView{
		tree:       linetree.New([]string{""}),
		hist:       history.New(),
		tabSize:    4,
		keywordDir: "config/keywords",
		theme:      render.NewTheme("monokai"),
		logger:     slog.Default(),
		cols:       80,
		rows:       24,
	}
	for _, opt := range opts {
		opt(tv)
	}
	return tv
}

// Cursor implements history.ViewState.
func (tv *TextView) Cursor() history.Position {
	return history.Position{Row: tv.cursorRow, Col: tv.cursorCol}
}

// SelectionStart implements history.ViewState.
func (tv *TextView) SelectionStart() *history.Selection {
	if !tv.selActive {
		return nil
	}
	r1, c1, _, _ := tv.selectionRange()
	return &history.Selection{Row: r1, Col: c1}
}

// SelectionEnd implements history.ViewState.
func (tv *TextView) SelectionEnd() *history.Selection {
	if !tv.selActive {
		return nil
	}
	_, _, r2, c2 := tv.selectionRange()
	return &history.Selection{Row: r2, Col: c2}
}

// CursorPos returns the current cursor row/column.
func (tv *TextView) CursorPos() (row, col int) { return tv.cursorRow, tv.cursorCol }

// LineCount returns the number of lines in the buffer.
func (tv *TextView) LineCount() int { return tv.tree.LineCount() }

// Line returns the content of line row.
func (tv *TextView) Line(row int) (string, error) { return tv.tree.NthLine(row) }

// IsDirty reports whether the buffer has unsaved changes.
func (tv *TextView) IsDirty() bool { return tv.dirty }

// FilePath returns the associated file path and whether one is set.
func (tv *TextView) FilePath() (string, bool) { return tv.filePath, tv.hasFile }

// HasSelection reports whether a selection is currently active.
func (tv *TextView) HasSelection() bool { return tv.selActive }

// UndoDepth and RedoDepth expose History's stack depths for status
// surfaces.
func (tv *TextView) UndoDepth() int { return tv.hist.UndoDepth() }
func (tv *TextView) RedoDepth() int { return tv.hist.RedoDepth() }

// PastePreview returns the most recently pasted text word-wrapped to
// pasteWrapWidth, and whether the preview feature is enabled at all.
// It never reflects back into the stored buffer.
func (tv *TextView) PastePreview() (string, bool) {
	if tv.pasteWrapWidth <= 0 {
		return "", false
	}
	return tv.lastPastePreview, true
}

// SetSize updates the viewport's column/row count and whether a tab
// bar occupies one row, mirroring the original SplitUnit::
// updateDimensions -> TextView dimension plumbing (spec.md §5
// supplement): a TextView knows only its own size, not the layout
// that produced it.
func (tv *TextView) SetSize(cols, rows int, tabBarVisible bool) {
	tv.cols = cols
	tv.rows = rows
	tv.tabBarVisible = tabBarVisible
	tv.clampScroll()
}

// visibleRows returns the number of rows available for buffer lines,
// after reserving one row for the tab bar if visible.
func (tv *TextView) visibleRows() int {
	if tv.tabBarVisible && tv.rows > 0 {
		return tv.rows - 1
	}
	return tv.rows
}

func (tv *TextView) clampCursor() {
	lastRow := tv.tree.LineCount() - 1
	if lastRow < 0 {
		lastRow = 0
	}
	if tv.cursorRow > lastRow {
		tv.cursorRow = lastRow
	}
	if tv.cursorRow < 0 {
		tv.cursorRow = 0
	}
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		tv.cursorCol = 0
		return
	}
	if tv.cursorCol > len(line) {
		tv.cursorCol = len(line)
	}
	if tv.cursorCol < 0 {
		tv.cursorCol = 0
	}
}

// clampScroll adjusts v_scroll/h_scroll minimally so the cursor stays
// within the viewport's inner rectangle, per spec.md §4.5 Scrolling.
func (tv *TextView) clampScroll() {
	rows := tv.visibleRows()
	if rows > 0 {
		if tv.cursorRow < tv.vScroll {
			tv.vScroll = tv.cursorRow
		}
		if tv.cursorRow > tv.vScroll+rows-1 {
			tv.vScroll = tv.cursorRow - rows + 1
		}
	}
	if tv.vScroll < 0 {
		tv.vScroll = 0
	}

	if tv.cols > 0 {
		if tv.cursorCol < tv.hScroll {
			tv.hScroll = tv.cursorCol
		}
		if tv.cursorCol > tv.hScroll+tv.cols-1 {
			tv.hScroll = tv.cursorCol - tv.cols + 1
		}
	}
	if tv.hScroll < 0 {
		tv.hScroll = 0
	}
}

// afterCursorMove clamps the cursor/scroll and, unless moveIsHorizontal
// is true, leaves x_memory untouched so vertical motion keeps trying to
// reach the remembered column.
func (tv *TextView) afterCursorMove(moveIsHorizontal bool) {
	tv.clampCursor()
	if moveIsHorizontal {
		tv.xMemory = tv.cursorCol
	}
	tv.lastHomeAtCol0 = false
	tv.clampScroll()
}

// selectionRange normalizes the active selection into an ordered
// (startRow, startCol, endRow, endCol) byte-range tuple.
func (tv *TextView) selectionRange() (r1, c1, r2, c2 int) {
	a, h := tv.selAnchor, tv.selHead
	if a.Row < h.Row || (a.Row == h.Row && a.Col <= h.Col) {
		return a.Row, a.Col, h.Row, h.Col
	}
	return h.Row, h.Col, a.Row, a.Col
}
