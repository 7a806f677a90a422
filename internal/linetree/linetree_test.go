package linetree

import (
	"testing"

	"github.com/itarato/peditor/internal/pediterr"
	"github.com/stretchr/testify/require"
)

func TestNewAndToString(t *testing.T) {
	tr := New([]string{"one", "two", "three"})
	require.Equal(t, 3, tr.LineCount())
	require.Equal(t, "one\ntwo\nthree", tr.ToString())
	require.NoError(t, tr.IntegrityCheck())
}

func TestEmptyTree(t *testing.T) {
	tr := New(nil)
	require.True(t, tr.IsEmpty())
	require.Equal(t, 0, tr.LineCount())
	_, err := tr.NthLine(0)
	require.ErrorIs(t, err, pediterr.ErrOutOfRange)
}

func TestInsertWithinLine(t *testing.T) {
	tr := New([]string{"abc"})
	require.NoError(t, tr.Insert(0, 1, "X"))
	line, err := tr.NthLine(0)
	require.NoError(t, err)
	require.Equal(t, "aXbc", line)
	require.NoError(t, tr.IntegrityCheck())
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	tr := New([]string{"abcdef"})
	require.NoError(t, tr.Insert(0, 3, "\n"))
	require.Equal(t, 2, tr.LineCount())
	l0, _ := tr.NthLine(0)
	l1, _ := tr.NthLine(1)
	require.Equal(t, "abc", l0)
	require.Equal(t, "def", l1)
	require.NoError(t, tr.IntegrityCheck())
}

func TestSplitForcesLeafDivision(t *testing.T) {
	tr := NewWithThreshold([]string{"a", "b", "c", "d"}, 2)
	// Force structural splits via many small inserts that push leaves
	// over threshold.
	for i := 0; i < 10; i++ {
		require.NoError(t, tr.Insert(tr.LineCount()-1, 0, "x\n"))
	}
	require.NoError(t, tr.IntegrityCheck())
	require.Equal(t, 14, tr.LineCount())
}

func TestRemoveCharAndBackspace(t *testing.T) {
	tr := New([]string{"hello"})
	removed, err := tr.RemoveChar(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte('h'), removed)
	line, _ := tr.NthLine(0)
	require.Equal(t, "ello", line)

	col, removed2, err := tr.Backspace(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, col)
	require.Equal(t, byte('e'), removed2)
	line, _ = tr.NthLine(0)
	require.Equal(t, "llo", line)
}

func TestBackspaceAtLineStartJoinsLines(t *testing.T) {
	tr := New([]string{"foo", "bar"})
	col, removed, err := tr.Backspace(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, col)
	require.Equal(t, byte('\n'), removed)
	require.Equal(t, 1, tr.LineCount())
	line, _ := tr.NthLine(0)
	require.Equal(t, "foobar", line)
	require.NoError(t, tr.IntegrityCheck())
}

func TestMergeLineAndSplitLineAreInverses(t *testing.T) {
	tr := New([]string{"foobar"})
	require.NoError(t, tr.SplitLine(0, 3))
	require.Equal(t, 2, tr.LineCount())
	joinCol, err := tr.MergeLine(0)
	require.NoError(t, err)
	require.Equal(t, 3, joinCol)
	require.Equal(t, 1, tr.LineCount())
	line, _ := tr.NthLine(0)
	require.Equal(t, "foobar", line)
}

func TestRemoveRangeSingleLine(t *testing.T) {
	tr := New([]string{"hello world"})
	removed, err := tr.RemoveRange(0, 0, 0, 4)
	require.NoError(t, err)
	require.Equal(t, "hello", removed)
	line, _ := tr.NthLine(0)
	require.Equal(t, " world", line)
}

func TestRemoveRangeMultiLine(t *testing.T) {
	tr := New([]string{"abc", "def", "ghi"})
	removed, err := tr.RemoveRange(0, 1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "bc\ndef\ngh", removed)
	require.Equal(t, 1, tr.LineCount())
	line, _ := tr.NthLine(0)
	require.Equal(t, "ai", line)
	require.NoError(t, tr.IntegrityCheck())
}

func TestDeleteLine(t *testing.T) {
	tr := New([]string{"a", "b", "c"})
	content, err := tr.DeleteLine(1)
	require.NoError(t, err)
	require.Equal(t, "b", content)
	require.Equal(t, 2, tr.LineCount())
	line, _ := tr.NthLine(1)
	require.Equal(t, "c", line)
}

func TestDeleteLastLineClearsToEmptyLeaf(t *testing.T) {
	tr := New([]string{"only"})
	_, err := tr.DeleteLine(0)
	require.NoError(t, err)
	require.True(t, tr.IsEmpty())
}

func TestBalanceIsIdempotentAndPreservesContent(t *testing.T) {
	tr := NewWithThreshold([]string{""}, 2)
	for i := 0; i < 200; i++ {
		require.NoError(t, tr.Insert(tr.LineCount()-1, len(mustLast(t, tr)), "line\n"))
	}
	before := tr.ToString()
	tr.Balance()
	require.Equal(t, before, tr.ToString())
	require.NoError(t, tr.IntegrityCheck())
	tr.Balance()
	require.Equal(t, before, tr.ToString())
}

func mustLast(t *testing.T, tr *Tree) string {
	t.Helper()
	line, err := tr.NthLine(tr.LineCount() - 1)
	require.NoError(t, err)
	return line
}

func TestLargeSequentialLoadStaysConsistent(t *testing.T) {
	n := 5000
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	tr := New(lines)
	require.Equal(t, n, tr.LineCount())
	require.NoError(t, tr.IntegrityCheck())

	mid, err := tr.NthLine(n / 2)
	require.NoError(t, err)
	require.Equal(t, "line", mid)

	require.NoError(t, tr.Insert(n/2, 4, "!"))
	require.NoError(t, tr.IntegrityCheck())
}

func TestForwardAndBackwardIteration(t *testing.T) {
	tr := New([]string{"a", "b", "c"})
	var forward []string
	it := tr.Forward()
	for {
		l, ok := it.Next()
		if !ok {
			break
		}
		forward = append(forward, l)
	}
	require.Equal(t, []string{"a", "b", "c"}, forward)

	var backward []string
	rit := tr.Backward()
	for {
		l, ok := rit.Next()
		if !ok {
			break
		}
		backward = append(backward, l)
	}
	require.Equal(t, []string{"c", "b", "a"}, backward)
}

func TestDebugTreeRendersWithoutPanicking(t *testing.T) {
	tr := NewWithThreshold([]string{"a", "b", "c", "d", "e", "f"}, 2)
	require.NoError(t, tr.Insert(0, 1, "x\ny\nz"))
	out := tr.DebugTree()
	require.NotEmpty(t, out)
}

func TestSplitAtBoundaryIsNoOp(t *testing.T) {
	tr := New([]string{"a", "b"})
	require.NoError(t, tr.Split(0))
	require.Equal(t, 2, tr.LineCount())
	require.NoError(t, tr.IntegrityCheck())
}
