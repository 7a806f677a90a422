package history

import (
	"testing"

	"github.com/itarato/peditor/internal/command"
	"github.com/itarato/peditor/internal/linetree"
	"github.com/itarato/peditor/internal/pediterr"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	cursor Position
	selS   *Selection
	selE   *Selection
}

func (f fakeState) Cursor() Position           { return f.cursor }
func (f fakeState) SelectionStart() *Selection { return f.selS }
func (f fakeState) SelectionEnd() *Selection   { return f.selE }

func TestOpenRecordCloseUndoRedo(t *testing.T) {
	tree := linetree.New([]string{"hello"})
	h := New()

	require.NoError(t, h.OpenBlock(fakeState{cursor: Position{0, 0}}))
	cmd := command.NewInsertChar(0, 5, '!')
	require.NoError(t, command.Execute(&cmd, tree))
	require.NoError(t, h.Record(cmd))
	require.NoError(t, h.CloseBlock(fakeState{cursor: Position{0, 6}}))

	line, _ := tree.NthLine(0)
	require.Equal(t, "hello!", line)

	_, err := h.Undo(tree)
	require.NoError(t, err)
	line, _ = tree.NthLine(0)
	require.Equal(t, "hello", line)
	require.Equal(t, 0, h.UndoDepth())
	require.Equal(t, 1, h.RedoDepth())

	_, err = h.Redo(tree)
	require.NoError(t, err)
	line, _ = tree.NthLine(0)
	require.Equal(t, "hello!", line)
	require.Equal(t, 1, h.UndoDepth())
	require.Equal(t, 0, h.RedoDepth())
}

func TestRecordWithoutOpenBlockErrors(t *testing.T) {
	h := New()
	err := h.Record(command.NewInsertChar(0, 0, 'a'))
	require.ErrorIs(t, err, pediterr.ErrClosedUnit)
}

func TestNestedOpenBlockErrors(t *testing.T) {
	h := New()
	require.NoError(t, h.OpenBlock(fakeState{}))
	err := h.OpenBlock(fakeState{})
	require.Error(t, err)
}

func TestUndoOnEmptyHistoryErrors(t *testing.T) {
	tree := linetree.New([]string{"x"})
	h := New()
	_, err := h.Undo(tree)
	require.Error(t, err)
}

func TestRedoClearedByNewBlock(t *testing.T) {
	tree := linetree.New([]string{"hello"})
	h := New()

	require.NoError(t, h.OpenBlock(fakeState{}))
	cmd := command.NewInsertChar(0, 5, '!')
	require.NoError(t, command.Execute(&cmd, tree))
	require.NoError(t, h.Record(cmd))
	require.NoError(t, h.CloseBlock(fakeState{}))

	_, err := h.Undo(tree)
	require.NoError(t, err)
	require.Equal(t, 1, h.RedoDepth())

	require.NoError(t, h.OpenBlock(fakeState{}))
	require.Equal(t, 0, h.RedoDepth())
}

func TestGroupedCommandsUndoAsOneUnit(t *testing.T) {
	tree := linetree.New([]string{"abc"})
	h := New()

	require.NoError(t, h.OpenBlock(fakeState{}))
	c1 := command.NewInsertChar(0, 3, 'd')
	require.NoError(t, command.Execute(&c1, tree))
	require.NoError(t, h.Record(c1))
	c2 := command.NewInsertChar(0, 4, 'e')
	require.NoError(t, command.Execute(&c2, tree))
	require.NoError(t, h.Record(c2))
	require.NoError(t, h.CloseBlock(fakeState{}))

	line, _ := tree.NthLine(0)
	require.Equal(t, "abcde", line)

	_, err := h.Undo(tree)
	require.NoError(t, err)
	line, _ = tree.NthLine(0)
	require.Equal(t, "abc", line)
}

func TestUndoStackCapped(t *testing.T) {
	tree := linetree.New([]string{""})
	h := New()

	for i := 0; i < Limit+10; i++ {
		require.NoError(t, h.OpenBlock(fakeState{}))
		require.NoError(t, h.CloseBlock(fakeState{}))
	}
	require.Equal(t, Limit, h.UndoDepth())
}
