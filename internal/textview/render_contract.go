package textview

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/itarato/peditor/internal/render"
)

// placeholderLine is what draw_line emits for rows past end-of-buffer,
// matching terminal editors' conventional empty-line marker.
const placeholderLine = "~"

var lineRenderer = render.LineRenderer{}

// DrawLine writes the decorated, clipped, padded visible representation
// of the buffer line at v_scroll + viewLineIdx, or placeholderLine past
// end-of-buffer.
func (tv *TextView) DrawLine(viewLineIdx int, searchTerm string) string {
	row := tv.vScroll + viewLineIdx
	if row < 0 || row >= tv.tree.LineCount() {
		return placeholderLine
	}

	line, err := tv.tree.NthLine(row)
	if err != nil {
		return placeholderLine
	}

	selStart, selEnd := tv.selectionOnRow(row, len(line))

	r := lineRenderer
	r.Theme = tv.theme
	return r.Render(line, tv.keywords, selStart, selEnd, searchTerm, tv.hScroll, tv.cols)
}

// DrawStatusLine renders the buffer's human-readable Stats summary as a
// themed, width-clamped status-line row for surfaces that reserve one.
func (tv *TextView) DrawStatusLine() string {
	return render.StatusLine(tv.theme, tv.BufferStats().Summary(), tv.cols)
}

// selectionOnRow returns the half-open byte range of row covered by the
// active selection, or (0, 0) when row isn't spanned by it.
func (tv *TextView) selectionOnRow(row, lineLen int) (int, int) {
	if !tv.selActive {
		return 0, 0
	}
	r1, c1, r2, c2 := tv.selectionRange()
	if row < r1 || row > r2 {
		return 0, 0
	}
	start := 0
	if row == r1 {
		start = c1
	}
	end := lineLen
	if row == r2 {
		end = c2
	}
	return start, end
}

// Stats summarizes the buffer for status surfaces: line count, cursor
// position, dirty bit, and undo/redo depths.
type Stats struct {
	LineCount int
	CursorRow int
	CursorCol int
	Dirty     bool
	UndoDepth int
	RedoDepth int
	FilePath  string
	HasFile   bool
}

// BufferStats reports the current Stats snapshot.
func (tv *TextView) BufferStats() Stats {
	return Stats{
		LineCount: tv.tree.LineCount(),
		CursorRow: tv.cursorRow,
		CursorCol: tv.cursorCol,
		Dirty:     tv.dirty,
		UndoDepth: tv.hist.UndoDepth(),
		RedoDepth: tv.hist.RedoDepth(),
		FilePath:  tv.filePath,
		HasFile:   tv.hasFile,
	}
}

// Summary renders Stats as a comma-grouped, human-readable status-line
// string (e.g. "12,430 lines, cursor 1,204:8"), for surfaces that
// would otherwise show raw line/column counts.
func (s Stats) Summary() string {
	return fmt.Sprintf("%s lines, cursor %s:%d",
		humanize.Comma(int64(s.LineCount)),
		humanize.Comma(int64(s.CursorRow+1)),
		s.CursorCol+1)
}
