package textview

import "github.com/itarato/peditor/internal/history"

// Undo reverts the most recent undo unit and restores the cursor and
// selection to their pre-edit snapshot.
func (tv *TextView) Undo() error {
	unit, err := tv.hist.Undo(tv.tree)
	if err != nil {
		return err
	}
	tv.restoreSnapshot(unit.BeforeCursor, unit.BeforeSelectionStart, unit.BeforeSelectionEnd)
	tv.dirty = true
	return nil
}

// Redo re-applies the most recently undone unit and restores the
// cursor and selection to its post-edit snapshot.
func (tv *TextView) Redo() error {
	unit, err := tv.hist.Redo(tv.tree)
	if err != nil {
		return err
	}
	tv.restoreSnapshot(unit.AfterCursor, unit.AfterSelectionStart, unit.AfterSelectionEnd)
	tv.dirty = true
	return nil
}

func (tv *TextView) restoreSnapshot(cursor history.Position, start, end *history.Selection) {
	tv.cursorRow, tv.cursorCol = cursor.Row, cursor.Col
	if start == nil || end == nil {
		tv.selActive = false
	} else {
		tv.selActive = true
		tv.selAnchor = history.Position{Row: start.Row, Col: start.Col}
		tv.selHead = history.Position{Row: end.Row, Col: end.Col}
	}
	tv.clampCursor()
	tv.clampScroll()
}
