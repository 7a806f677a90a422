// Package history implements the undo/redo manager: a bounded deque of
// HistoryUnits, each grouping one or more Commands executed as a
// single atomic block, with before/after cursor and selection
// snapshots so Undo/Redo can restore view state alongside buffer
// content.
//
// Grounded on _examples/original_source/history.h: the same
// OpenBlock/Record/CloseBlock/Undo/Redo shape, the 64-unit cap
// (UNDO_LIMIT), the "final" flag guarding against nested blocks, and
// clearing the redo stack whenever a new block opens.
package history

import (
	"github.com/itarato/peditor/internal/command"
	"github.com/itarato/peditor/internal/linetree"
	"github.com/itarato/peditor/internal/pediterr"
)

// Limit is the maximum number of units kept on the undo stack. Once
// exceeded the oldest unit is dropped, same as the C++ UNDO_LIMIT.
const Limit = 64

// Position is a (row, col) cursor location, used for the before/after
// snapshots a HistoryUnit carries.
type Position struct {
	Row, Col int
}

// Selection is an optional selection edge. A nil *Selection means no
// selection was active at that point, matching the C++
// optional<SelectionEdge>.
type Selection struct {
	Row, Col int
}

// Unit groups the Commands executed as one undo/redo step, along with
// the view state immediately before and after.
type Unit struct {
	Commands []command.Command

	BeforeSelectionStart *Selection
	BeforeSelectionEnd   *Selection
	BeforeCursor         Position

	AfterSelectionStart *Selection
	AfterSelectionEnd   *Selection
	AfterCursor         Position

	final bool
}

// ViewState is whatever the caller needs to snapshot into a Unit; it
// mirrors the C++ ITextViewState interface TextView implements.
type ViewState interface {
	Cursor() Position
	SelectionStart() *Selection
	SelectionEnd() *Selection
}

// History owns the undo and redo stacks.
type History struct {
	undos []Unit
	redos []Unit
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// OpenBlock starts a new undo unit, snapshotting the "before" view
// state. It clears the redo stack (a fresh edit invalidates any redo
// history) and errors if the current top unit was never closed.
func (h *History) OpenBlock(state ViewState) error {
	if len(h.undos) > 0 && !h.undos[len(h.undos)-1].final {
		return pediterr.ErrNestedBlock
	}
	h.redos = nil

	h.undos = append(h.undos, Unit{
		BeforeSelectionStart: state.SelectionStart(),
		BeforeSelectionEnd:   state.SelectionEnd(),
		BeforeCursor:         state.Cursor(),
	})
	if len(h.undos) > Limit {
		h.undos = h.undos[len(h.undos)-Limit:]
	}
	return nil
}

// Record appends cmd to the currently open unit.
func (h *History) Record(cmd command.Command) error {
	if len(h.undos) == 0 {
		return pediterr.ErrClosedUnit
	}
	top := &h.undos[len(h.undos)-1]
	if top.final {
		return pediterr.ErrClosedUnit
	}
	top.Commands = append(top.Commands, cmd)
	return nil
}

// CloseBlock snapshots the "after" view state and marks the top unit
// final, so a later OpenBlock does not error and Undo has a complete
// unit to replay in reverse.
func (h *History) CloseBlock(state ViewState) error {
	if len(h.undos) == 0 {
		return pediterr.ErrClosedUnit
	}
	top := &h.undos[len(h.undos)-1]
	top.AfterSelectionStart = state.SelectionStart()
	top.AfterSelectionEnd = state.SelectionEnd()
	top.AfterCursor = state.Cursor()
	top.final = true
	return nil
}

// Undo reverts the most recent closed unit's commands, in reverse
// order, against tree, and moves the unit onto the redo stack.
func (h *History) Undo(tree *linetree.Tree) (*Unit, error) {
	if len(h.undos) == 0 {
		return nil, pediterr.ErrHistoryEmpty
	}
	unit := h.undos[len(h.undos)-1]
	h.undos = h.undos[:len(h.undos)-1]

	for i := len(unit.Commands) - 1; i >= 0; i-- {
		if err := command.Revert(&unit.Commands[i], tree); err != nil {
			return nil, err
		}
	}

	h.redos = append(h.redos, unit)
	return &h.redos[len(h.redos)-1], nil
}

// Redo re-executes the most recently undone unit's commands, in
// original order, against tree, and moves the unit back onto the undo
// stack.
func (h *History) Redo(tree *linetree.Tree) (*Unit, error) {
	if len(h.redos) == 0 {
		return nil, pediterr.ErrHistoryEmpty
	}
	unit := h.redos[len(h.redos)-1]
	h.redos = h.redos[:len(h.redos)-1]

	for i := range unit.Commands {
		if err := command.Execute(&unit.Commands[i], tree); err != nil {
			return nil, err
		}
	}

	h.undos = append(h.undos, unit)
	return &h.undos[len(h.undos)-1], nil
}

// UndoDepth and RedoDepth report the number of units on each stack,
// mainly for tests and status-line reporting.
func (h *History) UndoDepth() int { return len(h.undos) }
func (h *History) RedoDepth() int { return len(h.redos) }
