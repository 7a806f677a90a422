package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusLineClipsAndPads(t *testing.T) {
	theme := NewTheme("monokai")

	out := StatusLine(theme, "12,430 lines, cursor 1,204:8", 10)
	require.Equal(t, 10, VisibleCharCount(out))

	out = StatusLine(theme, "hi", 10)
	require.Equal(t, 10, VisibleCharCount(out))
}

func TestStatusLineUnclampedWhenColsZero(t *testing.T) {
	theme := NewTheme("monokai")
	out := StatusLine(theme, "unclamped", 0)
	require.Equal(t, 9, VisibleCharCount(out))
}
