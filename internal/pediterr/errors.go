// Package pediterr defines the sentinel error taxonomy shared by every
// core package. Range and I/O failures are returned errors, checked with
// errors.Is. Structural corruption found by linetree's IntegrityCheck is
// also returned as an error; Invariant panics with a diagnostic, but no
// core package calls it.
package pediterr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a row, column, or byte offset falls
	// outside the addressable content of a LineTree or TextView.
	ErrOutOfRange = errors.New("pediterr: position out of range")

	// ErrHistoryEmpty is returned by Undo/Redo when the corresponding
	// stack has nothing left to apply.
	ErrHistoryEmpty = errors.New("pediterr: history stack is empty")

	// ErrNestedBlock is returned by OpenBlock when a block is already
	// open; the history manager does not support nested grouping.
	ErrNestedBlock = errors.New("pediterr: a history block is already open")

	// ErrClosedUnit is returned by Record when no block has been opened
	// with OpenBlock first.
	ErrClosedUnit = errors.New("pediterr: no open history block to record into")

	// ErrNoSelection is returned by selection-dependent operations
	// (Copy, Cut) when no selection is active.
	ErrNoSelection = errors.New("pediterr: no active selection")

	// ErrNoFile is returned by Save when the TextView has no associated
	// path and SaveAs was never called.
	ErrNoFile = errors.New("pediterr: no file path associated with buffer")
)

// Invariant panics with a formatted diagnostic. Nothing in the core
// calls it: IntegrityCheck and the tree mutators report problems as
// returned errors and never panic.
func Invariant(format string, args ...any) {
	panic(&InvariantError{msg: fmt.Sprintf(format, args...)})
}

// InvariantError is the panic value raised by Invariant.
type InvariantError struct{ msg string }

func (e *InvariantError) Error() string { return e.msg }
