package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderAppliesKeywordStyleAndPlainText(t *testing.T) {
	lr := LineRenderer{Theme: NewTheme("monokai")}
	kw := map[string]struct{}{"for": {}}

	out := lr.Render("for x3", kw, 0, 0, "", 0, 0)
	require.Contains(t, out, "x3")
	require.NotEqual(t, "for x3", out, "keyword should gain ANSI styling")
	require.Equal(t, 6, VisibleCharCount(out))
}

func TestRenderUnknownWordIsPlain(t *testing.T) {
	lr := LineRenderer{Theme: NewTheme("monokai")}
	out := lr.Render("hello", nil, 0, 0, "", 0, 0)
	require.Equal(t, "hello", out)
}

func TestRenderSearchHighlightWrapsMatch(t *testing.T) {
	lr := LineRenderer{Theme: NewTheme("monokai")}
	out := lr.Render("find needle here", nil, 0, 0, "needle", 0, 0)
	require.True(t, strings.Contains(out, "needle"))
	require.Equal(t, VisibleCharCount("find needle here"), VisibleCharCount(out))
}

func TestRenderClipsAndPadsToColumnWidth(t *testing.T) {
	lr := LineRenderer{Theme: NewTheme("monokai")}
	out := lr.Render("hello world", nil, 0, 0, "", 0, 5)
	require.Equal(t, "hello", out)

	out = lr.Render("hi", nil, 0, 0, "", 0, 5)
	require.Equal(t, 5, VisibleCharCount(out))
	require.Equal(t, "hi   ", out)

	out = lr.Render("hello world", nil, 0, 0, "", 6, 5)
	require.Equal(t, "world", out)
}
