// Package render turns Tokenizer markers and a LineTree's lines into
// terminal output: chroma-backed syntax colors, lipgloss chrome, and
// ANSI-aware width helpers so a fixed-width viewport can cut styled
// text without ever slicing through the middle of an escape sequence.
//
// The width helpers are grounded on the literal test vectors in
// _examples/original_source/tests/test.cpp
// (test_visibleCharCount/test_visibleStrRightCut/test_visibleStrSlice)
// and reproduce them exactly, including VisibleStrSlice's (start,
// count) argument convention: the raw range returned always extends
// outward over any escape sequence immediately adjacent to either
// edge, so a caller's slice never lands inside one.
package render

import (
	"regexp"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ansiSeq matches one CSI escape sequence (the common ESC '[' ... final
// letter shape charmbracelet/x/ansi and every ANSI-aware renderer in
// the pack recognize).
var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*[a-zA-Z]")

// segment is either a literal rune or an escape sequence, in order.
type segment struct {
	raw     string
	start   int
	isCodes bool
}

func segments(s string) []segment {
	var segs []segment
	matches := ansiSeq.FindAllStringIndex(s, -1)
	pos := 0
	mi := 0
	for pos < len(s) {
		if mi < len(matches) && matches[mi][0] == pos {
			segs = append(segs, segment{raw: s[matches[mi][0]:matches[mi][1]], start: pos, isCodes: true})
			pos = matches[mi][1]
			mi++
			continue
		}
		next := len(s)
		if mi < len(matches) {
			next = matches[mi][0]
		}
		for pos < next {
			_, size := utf8.DecodeRuneInString(s[pos:])
			segs = append(segs, segment{raw: s[pos : pos+size], start: pos, isCodes: false})
			pos += size
		}
	}
	return segs
}

// VisibleCharCount returns the display width of s, ignoring any ANSI
// escape sequences. Delegates to charmbracelet/x/ansi, which already
// implements exactly this for terminal renderers in the pack (see
// internal/ui/views/tables/details.go's use of ansi.StringWidth).
func VisibleCharCount(s string) int {
	return ansi.StringWidth(s)
}

// VisibleStrRightCut returns the raw byte index such that s[:idx]
// contains exactly n visible columns (or the whole string if s has
// fewer), extended to absorb any escape sequence immediately
// following the nth visible column so a caller never truncates one.
func VisibleStrRightCut(s string, n int) int {
	segs := segments(s)
	visible := 0
	idx := 0
	for i, seg := range segs {
		if seg.isCodes {
			idx = seg.start + len(seg.raw)
			continue
		}
		w := runewidth.StringWidth(seg.raw)
		if visible+w > n {
			break
		}
		visible += w
		idx = seg.start + len(seg.raw)
		if visible >= n {
			// absorb any escape sequences immediately following.
			j := i + 1
			for j < len(segs) && segs[j].isCodes {
				idx = segs[j].start + len(segs[j].raw)
				j++
			}
			break
		}
	}
	if visible < n {
		return len(s)
	}
	return idx
}

// VisibleStrSlice maps the visible column range starting at startCol
// and spanning count columns (0-based, count inclusive of startCol)
// to a raw byte range [rawStart, rawEnd) covering those columns. Any
// escape sequence immediately before startCol's first rune or
// immediately after the range's last rune is absorbed into the
// returned range, so slicing s[rawStart:rawEnd] never drops styling
// that should carry into or out of the slice.
func VisibleStrSlice(s string, startCol, count int) (int, int) {
	endCol := startCol + count - 1
	segs := segments(s)
	visible := 0
	startIdx, endIdx := -1, -1

	for i, seg := range segs {
		if seg.isCodes {
			continue
		}
		w := runewidth.StringWidth(seg.raw)
		if startIdx == -1 && visible >= startCol {
			startIdx = i
		}
		if startIdx != -1 && visible+w-1 >= endCol {
			endIdx = i
			break
		}
		visible += w
	}
	if startIdx == -1 {
		return len(s), len(s)
	}
	if endIdx == -1 {
		endIdx = len(segs) - 1
	}

	rawStart := segs[startIdx].start
	for j := startIdx - 1; j >= 0 && segs[j].isCodes && segs[j].start+len(segs[j].raw) == rawStart; j-- {
		rawStart = segs[j].start
	}

	rawEnd := segs[endIdx].start + len(segs[endIdx].raw)
	for j := endIdx + 1; j < len(segs) && segs[j].isCodes && segs[j].start == rawEnd; j++ {
		rawEnd = segs[j].start + len(segs[j].raw)
	}

	return rawStart, rawEnd
}
