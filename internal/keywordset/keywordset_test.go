package keywordset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLanguageForFile(t *testing.T) {
	lang, ok := LanguageForFile("main.cpp")
	require.True(t, ok)
	require.Equal(t, "c++", lang)

	_, ok = LanguageForFile("main.go")
	require.False(t, ok)
}

func TestLoadReadsOneKeywordPerLine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c++"), []byte("for\nwhile\nif\n"), 0o644))

	kw, err := Load(dir, "c++")
	require.NoError(t, err)
	require.Len(t, kw, 3)
	_, ok := kw["for"]
	require.True(t, ok)
}

func TestLoadMissingFileReturnsEmptySet(t *testing.T) {
	dir := t.TempDir()
	kw, err := Load(dir, "nope")
	require.NoError(t, err)
	require.Empty(t, kw)
}

func TestLoadForFileUnknownExtensionReturnsEmptySet(t *testing.T) {
	dir := t.TempDir()
	kw, err := LoadForFile(dir, "main.unknownlang")
	require.NoError(t, err)
	require.Empty(t, kw)
}

func TestLoadForFileKnownExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ruby"), []byte("def\nend\n"), 0o644))

	kw, err := LoadForFile(dir, "script.rb")
	require.NoError(t, err)
	require.Len(t, kw, 2)
}
