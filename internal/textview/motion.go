package textview

import "unicode"

// CursorLeft moves the cursor one column left, wrapping to the end of
// the previous line at column 0.
func (tv *TextView) CursorLeft() {
	if tv.cursorCol > 0 {
		tv.cursorCol--
	} else if tv.cursorRow > 0 {
		tv.cursorRow--
		line, err := tv.tree.NthLine(tv.cursorRow)
		if err == nil {
			tv.cursorCol = len(line)
		}
	}
	tv.extendSelection()
	tv.afterCursorMove(true)
}

// CursorRight moves the cursor one column right, wrapping to the start
// of the next line at end-of-line.
func (tv *TextView) CursorRight() {
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		return
	}
	if tv.cursorCol < len(line) {
		tv.cursorCol++
	} else if tv.cursorRow < tv.tree.LineCount()-1 {
		tv.cursorRow++
		tv.cursorCol = 0
	}
	tv.extendSelection()
	tv.afterCursorMove(true)
}

// CursorUp moves the cursor up one row, retrying the remembered
// x_memory column rather than the current one.
func (tv *TextView) CursorUp() {
	if tv.cursorRow == 0 {
		tv.extendSelection()
		return
	}
	tv.cursorRow--
	tv.cursorCol = tv.xMemory
	tv.extendSelection()
	tv.afterCursorMove(false)
}

// CursorDown moves the cursor down one row, retrying x_memory.
func (tv *TextView) CursorDown() {
	if tv.cursorRow >= tv.tree.LineCount()-1 {
		tv.extendSelection()
		return
	}
	tv.cursorRow++
	tv.cursorCol = tv.xMemory
	tv.extendSelection()
	tv.afterCursorMove(false)
}

// CursorHome moves to column 0; pressing it again immediately after
// (with no other motion in between) moves to the line's first
// non-whitespace column instead, the toggle behavior spec.md §4.5
// describes.
func (tv *TextView) CursorHome() {
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		return
	}
	firstNonWS := 0
	for firstNonWS < len(line) && (line[firstNonWS] == ' ' || line[firstNonWS] == '\t') {
		firstNonWS++
	}

	if tv.lastHomeAtCol0 && tv.cursorCol == 0 && firstNonWS > 0 {
		tv.cursorCol = firstNonWS
		tv.lastHomeAtCol0 = false
	} else {
		tv.cursorCol = 0
		tv.lastHomeAtCol0 = true
	}
	tv.extendSelection()
	tv.clampCursor()
	tv.xMemory = tv.cursorCol
	tv.clampScroll()
}

// CursorEnd moves to the last column of the current line.
func (tv *TextView) CursorEnd() {
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		return
	}
	tv.cursorCol = len(line)
	tv.extendSelection()
	tv.afterCursorMove(true)
}

// PageUp moves the cursor up by one viewport height.
func (tv *TextView) PageUp() {
	rows := tv.visibleRows()
	if rows <= 0 {
		rows = 1
	}
	tv.cursorRow -= rows
	if tv.cursorRow < 0 {
		tv.cursorRow = 0
	}
	tv.cursorCol = tv.xMemory
	tv.extendSelection()
	tv.afterCursorMove(false)
}

// PageDown moves the cursor down by one viewport height.
func (tv *TextView) PageDown() {
	rows := tv.visibleRows()
	if rows <= 0 {
		rows = 1
	}
	tv.cursorRow += rows
	tv.cursorCol = tv.xMemory
	tv.extendSelection()
	tv.afterCursorMove(false)
}

// ScrollUp/ScrollDown move the viewport without moving the cursor,
// clamping so the cursor never ends up outside the new viewport.
func (tv *TextView) ScrollUp(lines int) {
	tv.vScroll -= lines
	if tv.vScroll < 0 {
		tv.vScroll = 0
	}
	tv.keepCursorInViewport()
}

func (tv *TextView) ScrollDown(lines int) {
	tv.vScroll += lines
	last := tv.tree.LineCount() - 1
	if last < 0 {
		last = 0
	}
	if tv.vScroll > last {
		tv.vScroll = last
	}
	tv.keepCursorInViewport()
}

// keepCursorInViewport moves the cursor (not the scroll) back inside
// the current viewport after an explicit scroll, rather than letting
// clampScroll silently undo the scroll the caller just asked for.
func (tv *TextView) keepCursorInViewport() {
	rows := tv.visibleRows()
	if rows <= 0 {
		return
	}
	if tv.cursorRow < tv.vScroll {
		tv.cursorRow = tv.vScroll
	}
	if tv.cursorRow > tv.vScroll+rows-1 {
		tv.cursorRow = tv.vScroll + rows - 1
	}
	tv.clampCursor()
}

// isWordByte reports whether b is part of a "word" for word-jump
// purposes: letters, digits, and underscore.
func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) || b == '_'
}

// WordJumpLeft moves the cursor to the start of the previous word,
// skipping any whitespace/punctuation run first.
func (tv *TextView) WordJumpLeft() {
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		return
	}
	col := tv.cursorCol
	for col > 0 && !isWordByte(line[col-1]) {
		col--
	}
	for col > 0 && isWordByte(line[col-1]) {
		col--
	}
	tv.cursorCol = col
	tv.extendSelection()
	tv.afterCursorMove(true)
}

// WordJumpRight moves the cursor to the start of the next word: skip
// the current word-byte run, then skip the following gap run. This
// deviates from test_next_word_jump_location's own table for a
// trailing gap (e.g. "abc   " from col 0 lands at col 6 here, not the
// table's 3) because that table is internally inconsistent — the same
// fixture asserts col 0 -> 3 but col 2 -> 6, two different stopping
// rules for the same trailing run — so there is no single rule left
// to reproduce; see the Open Question entry in DESIGN.md.
func (tv *TextView) WordJumpRight() {
	line, err := tv.tree.NthLine(tv.cursorRow)
	if err != nil {
		return
	}
	col := tv.cursorCol
	n := len(line)
	for col < n && isWordByte(line[col]) {
		col++
	}
	for col < n && !isWordByte(line[col]) {
		col++
	}
	tv.cursorCol = col
	tv.extendSelection()
	tv.afterCursorMove(true)
}
