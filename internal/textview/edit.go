package textview

import (
	"strings"

	"github.com/itarato/peditor/internal/command"
	"github.com/itarato/peditor/internal/pediterr"
)

// runBlock opens a history block, runs fn (which executes zero or more
// Commands against tv.tree, recording each one), and closes the block —
// the single wrapper every mutating operation in spec.md §4.5 goes
// through ("every mutating operation is wrapped in exactly one history
// block").
func (tv *TextView) runBlock(fn func() error) error {
	if err := tv.hist.OpenBlock(tv); err != nil {
		return err
	}
	if err := fn(); err != nil {
		// Close the block even when fn fails, so the next operation can
		// open its own; any commands fn already ran stay recorded.
		_ = tv.hist.CloseBlock(tv)
		return err
	}
	if err := tv.hist.CloseBlock(tv); err != nil {
		return err
	}
	tv.dirty = true
	return nil
}

// exec runs cmd against tv.tree and records it into the currently open
// history block.
func (tv *TextView) exec(cmd command.Command) error {
	if err := command.Execute(&cmd, tv.tree); err != nil {
		return err
	}
	return tv.hist.Record(cmd)
}

// InsertChar inserts ch at the cursor and advances the cursor past it.
func (tv *TextView) InsertChar(ch byte) error {
	row, col := tv.cursorRow, tv.cursorCol
	err := tv.runBlock(func() error {
		return tv.exec(command.NewInsertChar(row, col, ch))
	})
	if err != nil {
		return err
	}
	tv.cursorCol = col + 1
	tv.afterCursorMove(true)
	return nil
}

// Backspace deletes the character before the cursor, merging into the
// previous line when the cursor sits at column 0.
func (tv *TextView) Backspace() error {
	row, col := tv.cursorRow, tv.cursorCol
	if col == 0 && row == 0 {
		return pediterr.ErrOutOfRange
	}

	var newRow, newCol int
	err := tv.runBlock(func() error {
		if col > 0 {
			newRow, newCol = row, col-1
			return tv.exec(command.NewRemoveChar(row, col-1))
		}
		prevLine, err := tv.tree.NthLine(row - 1)
		if err != nil {
			return err
		}
		newRow, newCol = row-1, len(prevLine)
		return tv.exec(command.NewMergeLine(row - 1))
	})
	if err != nil {
		return err
	}
	tv.cursorRow, tv.cursorCol = newRow, newCol
	tv.afterCursorMove(true)
	return nil
}

// DeleteForward deletes the character at the cursor (or merges the next
// line up when the cursor sits at end-of-line).
func (tv *TextView) DeleteForward() error {
	row, col := tv.cursorRow, tv.cursorCol
	line, err := tv.tree.NthLine(row)
	if err != nil {
		return err
	}

	err = tv.runBlock(func() error {
		if col < len(line) {
			return tv.exec(command.NewRemoveChar(row, col))
		}
		if row == tv.tree.LineCount()-1 {
			return pediterr.ErrOutOfRange
		}
		return tv.exec(command.NewMergeLine(row))
	})
	if err != nil {
		return err
	}
	tv.afterCursorMove(false)
	return nil
}

// Enter splits the current line at the cursor and moves the cursor to
// the start of the new line.
func (tv *TextView) Enter() error {
	row, col := tv.cursorRow, tv.cursorCol
	err := tv.runBlock(func() error {
		return tv.exec(command.NewSplitLine(row, col))
	})
	if err != nil {
		return err
	}
	tv.cursorRow, tv.cursorCol = row+1, 0
	tv.afterCursorMove(true)
	return nil
}

// Tab inserts tab_size spaces at the cursor.
func (tv *TextView) Tab() error {
	row, col := tv.cursorRow, tv.cursorCol
	pad := strings.Repeat(" ", tv.tabSize)
	err := tv.runBlock(func() error {
		for i := 0; i < len(pad); i++ {
			if err := tv.exec(command.NewInsertChar(row, col+i, pad[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	tv.cursorCol = col + len(pad)
	tv.afterCursorMove(true)
	return nil
}

// DeleteLine removes the current row entirely; the cursor stays on the
// same row index, clamped to the new line count.
func (tv *TextView) DeleteLine() error {
	row := tv.cursorRow
	err := tv.runBlock(func() error {
		return tv.exec(command.NewDeleteLine(row))
	})
	if err != nil {
		return err
	}
	tv.cursorCol = 0
	tv.afterCursorMove(true)
	return nil
}

// rowSpan returns the inclusive row range indent operations apply to:
// the selection's span if one is active, otherwise just the cursor's
// row.
func (tv *TextView) rowSpan() (first, last int) {
	if tv.selActive {
		r1, _, r2, _ := tv.selectionRange()
		return r1, r2
	}
	return tv.cursorRow, tv.cursorRow
}

// IndentRight inserts tab_size spaces at column 0 of every line spanned
// by the selection, or of the current line if no selection is active.
func (tv *TextView) IndentRight() error {
	first, last := tv.rowSpan()
	pad := strings.Repeat(" ", tv.tabSize)
	return tv.runBlock(func() error {
		for row := first; row <= last; row++ {
			for i := 0; i < len(pad); i++ {
				if err := tv.exec(command.NewInsertChar(row, i, pad[i])); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// IndentLeft removes up to tab_size leading spaces from every line
// spanned by the selection, or the current line if no selection is
// active. Lines with fewer leading spaces than tab_size lose only what
// they have.
func (tv *TextView) IndentLeft() error {
	first, last := tv.rowSpan()
	return tv.runBlock(func() error {
		for row := first; row <= last; row++ {
			line, err := tv.tree.NthLine(row)
			if err != nil {
				return err
			}
			n := 0
			for n < tv.tabSize && n < len(line) && line[n] == ' ' {
				n++
			}
			if n == 0 {
				continue
			}
			if err := tv.exec(command.NewRemoveSlice(row, 0, n-1)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LineMoveUp swaps the current row with its predecessor; the cursor
// follows.
func (tv *TextView) LineMoveUp() error {
	row := tv.cursorRow
	if row == 0 {
		return pediterr.ErrOutOfRange
	}
	if err := tv.swapLines(row - 1); err != nil {
		return err
	}
	tv.cursorRow = row - 1
	tv.afterCursorMove(false)
	return nil
}

// LineMoveDown swaps the current row with its successor; the cursor
// follows.
func (tv *TextView) LineMoveDown() error {
	row := tv.cursorRow
	if row >= tv.tree.LineCount()-1 {
		return pediterr.ErrOutOfRange
	}
	if err := tv.swapLines(row); err != nil {
		return err
	}
	tv.cursorRow = row + 1
	tv.afterCursorMove(false)
	return nil
}

// swapLines exchanges the content of rows {row, row+1} via a
// delete-and-reinsert pair, expressed as Commands so the swap is a
// single undoable block built only from primitives command.go already
// defines. InsertLine(row, x) always pushes whatever currently sits at
// row down to row+1, so the line inserted *last* is the one that ends
// up on top — top must go in before bottom for the net effect to be a
// swap rather than a no-op round trip.
func (tv *TextView) swapLines(row int) error {
	return tv.runBlock(func() error {
		top, err := tv.tree.NthLine(row)
		if err != nil {
			return err
		}
		bottom, err := tv.tree.NthLine(row + 1)
		if err != nil {
			return err
		}
		if err := tv.exec(command.NewDeleteLine(row)); err != nil {
			return err
		}
		if err := tv.exec(command.NewDeleteLine(row)); err != nil {
			return err
		}
		if err := tv.exec(command.NewInsertLine(row, top)); err != nil {
			return err
		}
		if err := tv.exec(command.NewInsertLine(row, bottom)); err != nil {
			return err
		}
		return nil
	})
}
