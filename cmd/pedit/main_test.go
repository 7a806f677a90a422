package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestRunOpenReportsStats(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	logPath := filepath.Join(dir, "pedit.log")
	require.NoError(t, os.WriteFile(configPath, []byte("tab_size: 2\nlog_file: "+logPath+"\n"), 0o644))

	filePath := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("one\ntwo\nthree\n"), 0o644))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	cmd := &cobra.Command{}
	runErr := runOpen(cmd, []string{filePath})
	w.Close()
	os.Stdout = origStdout

	out := make([]byte, 4096)
	n, _ := r.Read(out)
	output := string(out[:n])

	require.NoError(t, runErr)
	require.Contains(t, output, "lines:      3")
	require.Contains(t, output, filePath)
	require.Contains(t, output, "summary:    3 lines, cursor 1:1")
}

func TestRunOpenMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	logPath := filepath.Join(dir, "pedit.log")
	require.NoError(t, os.WriteFile(configPath, []byte("tab_size: 4\nlog_file: "+logPath+"\n"), 0o644))

	cmd := &cobra.Command{}
	err := runOpen(cmd, []string{filepath.Join(dir, "missing.txt")})
	require.Error(t, err)
}
