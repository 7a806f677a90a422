package textview

import "strings"

// JumpNextMatch scans forward from just after the cursor for pattern,
// wrapping to the buffer start on reaching the end, and places the
// cursor on the first byte of the match. It reports whether a match
// was found; the cursor is left unchanged when pattern never occurs.
func (tv *TextView) JumpNextMatch(pattern string) bool {
	if pattern == "" {
		return false
	}
	total := tv.tree.LineCount()

	if row, col, ok := tv.searchFrom(tv.cursorRow, tv.cursorCol+1, total, pattern, false); ok {
		tv.cursorRow, tv.cursorCol = row, col
		tv.afterCursorMove(true)
		return true
	}
	if row, col, ok := tv.searchFrom(0, 0, tv.cursorRow+1, pattern, false); ok {
		tv.cursorRow, tv.cursorCol = row, col
		tv.afterCursorMove(true)
		return true
	}
	return false
}

// JumpPrevMatch mirrors JumpNextMatch, scanning backward and wrapping
// to the buffer end.
func (tv *TextView) JumpPrevMatch(pattern string) bool {
	if pattern == "" {
		return false
	}
	total := tv.tree.LineCount()

	if row, col, ok := tv.searchFrom(tv.cursorRow, tv.cursorCol-1, -1, pattern, true); ok {
		tv.cursorRow, tv.cursorCol = row, col
		tv.afterCursorMove(true)
		return true
	}
	if row, col, ok := tv.searchFrom(total-1, -1, tv.cursorRow-1, pattern, true); ok {
		tv.cursorRow, tv.cursorCol = row, col
		tv.afterCursorMove(true)
		return true
	}
	return false
}

// searchFrom scans rows [startRow, stopRowExclusive) in the direction
// backward indicates, starting the first row's scan at startCol (a
// negative startCol means "scan the whole line"; a startCol past the
// last possible match start scans the whole line going backward and
// none of it going forward). It returns
// the row/col of the first literal, case-sensitive byte match.
func (tv *TextView) searchFrom(startRow, startCol, stopRowExclusive int, pattern string, backward bool) (int, int, bool) {
	step := 1
	if backward {
		step = -1
	}

	for row := startRow; row != stopRowExclusive; row += step {
		if row < 0 || row >= tv.tree.LineCount() {
			break
		}
		line, err := tv.tree.NthLine(row)
		if err != nil {
			break
		}

		col := startCol
		if row != startRow {
			col = -1
		}

		if backward {
			limit := len(line) - len(pattern)
			if col < 0 || col > limit {
				col = limit
			}
			for c := col; c >= 0; c-- {
				if strings.HasPrefix(line[c:], pattern) {
					return row, c, true
				}
			}
		} else {
			if col < 0 {
				col = 0
			}
			for c := col; c+len(pattern) <= len(line); c++ {
				if strings.HasPrefix(line[c:], pattern) {
					return row, c, true
				}
			}
		}
	}
	return 0, 0, false
}
