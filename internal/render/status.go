package render

import "strings"

// StatusLine renders text as a single status-line row: clipped to the
// first cols visible columns with VisibleStrRightCut, padded out to
// cols, and styled with theme's Status chrome.
func StatusLine(theme Theme, text string, cols int) string {
	if cols <= 0 {
		return theme.Status.Render(text)
	}

	clipped := text[:VisibleStrRightCut(text, cols)]
	if pad := cols - VisibleCharCount(clipped); pad > 0 {
		clipped += strings.Repeat(" ", pad)
	}
	return theme.Status.Render(clipped)
}
