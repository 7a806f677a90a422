package filewatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHasChangedDetectsExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := New(nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.False(t, w.HasChanged())

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	require.Eventually(t, w.HasChanged, time.Second, 10*time.Millisecond)
}

func TestIgnoreNextCycleSuppressesSelfSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	w, err := New(nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))
	time.Sleep(50 * time.Millisecond)
	w.IgnoreNextCycle()
	require.False(t, w.HasChanged())
}
