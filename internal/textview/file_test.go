package textview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFileDropsTrailingNewlineLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	tv := New()
	require.NoError(t, tv.LoadFile(path))
	require.Equal(t, 2, tv.LineCount())
}

func TestLoadFileWithoutTrailingNewlineKeepsLastLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo"), 0o644))

	tv := New()
	require.NoError(t, tv.LoadFile(path))
	require.Equal(t, 2, tv.LineCount())
}

func TestSaveThenLoadRoundTripsLineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")

	tv := New()
	require.NoError(t, tv.InsertChar('a'))
	require.NoError(t, tv.Enter())
	require.NoError(t, tv.InsertChar('b'))
	require.Equal(t, 2, tv.LineCount())

	require.NoError(t, tv.SaveFileAs(path))
	require.NoError(t, tv.LoadFile(path))
	require.Equal(t, 2, tv.LineCount(), "a save/load cycle must not grow the buffer by a blank line")

	require.NoError(t, tv.SaveFile())
	require.NoError(t, tv.LoadFile(path))
	require.Equal(t, 2, tv.LineCount(), "a second round trip must stay stable")
}

func TestLoadFileMissingPathLeavesBufferUnchanged(t *testing.T) {
	tv := New()
	require.NoError(t, tv.InsertChar('x'))

	err := tv.LoadFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	require.Equal(t, 1, tv.LineCount())

	line, err := tv.tree.NthLine(0)
	require.NoError(t, err)
	require.Equal(t, "x", line)
}
