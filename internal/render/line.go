package render

import (
	"strings"

	"github.com/itarato/peditor/internal/tokenizer"
)

// LineRenderer turns one buffer line into the decorated string a
// TextView's draw_line contract (spec: "each TextView emits a visible
// line string given a line index and an optional search term") writes
// out: syntax colors from the Tokenizer's markers, a selection
// background where the line intersects the active selection, a search
// highlight for every occurrence of a term, clipped to a horizontal
// scroll window and padded to the viewport's column count.
//
// Composition happens on a per-byte decoration pass before any ANSI
// codes are emitted — matching Marker.Pos, which the Tokenizer defines
// in byte offsets — so selection/search overlays never have to parse
// escape sequences back out of already-styled text.
type LineRenderer struct {
	Theme Theme
}

// Render decorates line for display. selStart/selEnd give the
// half-open byte range (within this line) covered by the active
// selection; pass selStart == selEnd for "no selection on this line".
// hScroll/cols clip and pad the result to the viewport width in
// display columns; cols <= 0 disables clipping (render the full
// decorated line).
func (r LineRenderer) Render(line string, keywords map[string]struct{}, selStart, selEnd int, searchTerm string, hScroll, cols int) string {
	markers := tokenizer.Tokenize(line, keywords)
	categories := byteCategories(line, markers)
	hits := searchHits(line, searchTerm)

	var b strings.Builder
	n := len(line)
	i := 0
	for i < n {
		cat := categories[i]
		selected := i >= selStart && i < selEnd
		hit := hits[i]
		j := i + 1
		for j < n && categories[j] == cat && (j >= selStart && j < selEnd) == selected && hits[j] == hit {
			j++
		}
		b.WriteString(r.styleSegment(line[i:j], cat, selected, hit))
		i = j
	}

	out := b.String()
	if cols > 0 {
		rawStart, rawEnd := VisibleStrSlice(out, hScroll, cols)
		out = out[rawStart:rawEnd]
		if pad := cols - VisibleCharCount(out); pad > 0 {
			out += strings.Repeat(" ", pad)
		}
	}
	return out
}

func (r LineRenderer) styleSegment(seg string, cat tokenizer.Category, selected, searchHit bool) string {
	style := r.Theme.StyleFor(cat)
	switch {
	case searchHit:
		style = r.Theme.SearchHit
	case selected:
		style = style.Background(r.Theme.Selection.GetBackground())
	}
	return style.Render(seg)
}

// byteCategories expands the alternating marker stream into one
// category per byte, so overlaying selection/search highlights never
// needs to re-walk the marker list while segmenting.
func byteCategories(line string, markers []tokenizer.Marker) []tokenizer.Category {
	cats := make([]tokenizer.Category, len(line))
	mi := 0
	cur := tokenizer.Default
	for i := range line {
		for mi < len(markers) && markers[mi].Pos == i {
			cur = markers[mi].Category
			mi++
		}
		cats[i] = cur
	}
	return cats
}

func searchHits(line, term string) []bool {
	hits := make([]bool, len(line))
	if term == "" {
		return hits
	}
	for start := 0; start+len(term) <= len(line); start++ {
		if line[start:start+len(term)] == term {
			for k := 0; k < len(term); k++ {
				hits[start+k] = true
			}
		}
	}
	return hits
}
