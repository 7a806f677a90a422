package textview

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/itarato/peditor/internal/command"
	"github.com/itarato/peditor/internal/history"
	"github.com/itarato/peditor/internal/pediterr"
)

// SelectionToggle starts a selection anchored at the cursor if none is
// active, or clears the active selection otherwise.
func (tv *TextView) SelectionToggle() {
	if tv.selActive {
		tv.selActive = false
		return
	}
	pos := history.Position{Row: tv.cursorRow, Col: tv.cursorCol}
	tv.selAnchor = pos
	tv.selHead = pos
	tv.selActive = true
}

// extendSelection moves the selection's moving endpoint to follow the
// cursor, called after every cursor motion while a selection is open.
func (tv *TextView) extendSelection() {
	if !tv.selActive {
		return
	}
	tv.selHead = history.Position{Row: tv.cursorRow, Col: tv.cursorCol}
}

// Copy materializes the active selection as a single string, lines
// joined by "\n".
func (tv *TextView) Copy() (string, error) {
	if !tv.selActive {
		return "", pediterr.ErrNoSelection
	}
	r1, c1, r2, c2 := tv.selectionRange()

	if r1 == r2 {
		line, err := tv.tree.NthLine(r1)
		if err != nil {
			return "", err
		}
		if c1 < 0 || c2 > len(line) {
			return "", pediterr.ErrOutOfRange
		}
		return line[c1:c2], nil
	}

	var b strings.Builder
	first, err := tv.tree.NthLine(r1)
	if err != nil {
		return "", err
	}
	b.WriteString(first[c1:])
	for row := r1 + 1; row < r2; row++ {
		l, err := tv.tree.NthLine(row)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(l)
	}
	last, err := tv.tree.NthLine(r2)
	if err != nil {
		return "", err
	}
	b.WriteString("\n")
	b.WriteString(last[:c2])
	return b.String(), nil
}

// Cut copies the active selection and then deletes it via a range
// removal wrapped in one history block.
func (tv *TextView) Cut() (string, error) {
	text, err := tv.Copy()
	if err != nil {
		return "", err
	}
	r1, c1, r2, c2 := tv.selectionRange()

	err = tv.runBlock(func() error {
		if r1 == r2 {
			if c1 == c2 {
				return nil
			}
			return tv.exec(command.NewRemoveSlice(r1, c1, c2-1))
		}
		return tv.cutMultiline(r1, c1, r2, c2)
	})
	if err != nil {
		return "", err
	}

	tv.selActive = false
	tv.cursorRow, tv.cursorCol = r1, c1
	tv.afterCursorMove(true)
	return text, nil
}

// cutMultiline removes a selection spanning several rows using only
// the primitive Commands command.go defines: a RemoveSlice on the tail
// of the first line, a RemoveSlice on the head of the last line, a
// DeleteLine for every row strictly between them, and a final
// MergeLine to join what's left of the first and last lines.
func (tv *TextView) cutMultiline(r1, c1, r2, c2 int) error {
	if c2 > 0 {
		if err := tv.exec(command.NewRemoveSlice(r2, 0, c2-1)); err != nil {
			return err
		}
	}
	firstLine, err := tv.tree.NthLine(r1)
	if err != nil {
		return err
	}
	if c1 < len(firstLine) {
		if err := tv.exec(command.NewRemoveSlice(r1, c1, len(firstLine)-1)); err != nil {
			return err
		}
	}
	for row := r1 + 1; row < r2; row++ {
		if err := tv.exec(command.NewDeleteLine(r1 + 1)); err != nil {
			return err
		}
	}
	return tv.exec(command.NewMergeLine(r1))
}

// Paste inserts text at the cursor, splitting on newlines as needed.
// When the paste-preview option is enabled, it also refreshes the
// word-wrapped preview PastePreview returns.
func (tv *TextView) Paste(text string) error {
	row, col := tv.cursorRow, tv.cursorCol
	lines := strings.Split(text, "\n")

	if tv.pasteWrapWidth > 0 {
		tv.lastPastePreview = wordwrap.WrapString(text, uint(tv.pasteWrapWidth))
	}

	if len(lines) == 1 {
		err := tv.runBlock(func() error {
			for i := 0; i < len(lines[0]); i++ {
				if err := tv.exec(command.NewInsertChar(row, col+i, lines[0][i])); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		tv.cursorCol = col + len(lines[0])
		tv.afterCursorMove(true)
		return nil
	}
	return tv.pasteMultiline(row, col, lines)
}

// pasteMultiline handles the multi-line paste case: split the current
// line at the cursor, append the pasted first line to the head, insert
// the pasted lines' interior rows as whole new lines, and insert the
// pasted last line's content at the start of the split tail.
func (tv *TextView) pasteMultiline(row, col int, lines []string) error {
	err := tv.runBlock(func() error {
		if err := tv.exec(command.NewSplitLine(row, col)); err != nil {
			return err
		}
		for i, l := range lines[:len(lines)-1] {
			if i == 0 {
				for j := 0; j < len(l); j++ {
					if err := tv.exec(command.NewInsertChar(row, col+j, l[j])); err != nil {
						return err
					}
				}
				continue
			}
			if err := tv.exec(command.NewInsertLine(row+i, l)); err != nil {
				return err
			}
		}
		tail := lines[len(lines)-1]
		tailRow := row + len(lines) - 1
		for j := 0; j < len(tail); j++ {
			if err := tv.exec(command.NewInsertChar(tailRow, j, tail[j])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	tv.cursorRow = row + len(lines) - 1
	tv.cursorCol = len(lines[len(lines)-1])
	tv.afterCursorMove(true)
	return nil
}
