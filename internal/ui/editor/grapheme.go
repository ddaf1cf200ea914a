// Grapheme cluster helpers. Cursor columns in this package are grapheme
// indices, not byte offsets; syntax tokens use byte offsets within a line.
// These helpers translate between the two and measure display width.
package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Indices past the end clamp to len(s).
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}
	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// ByteToGraphemeOffset converts a byte offset to a grapheme index. Offsets
// inside a cluster resolve to that cluster's index.
func ByteToGraphemeOffset(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= len(s) {
		return GraphemeCount(s)
	}
	idx := 0
	pos := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		next := pos + len(cluster)
		if byteOffset < next {
			return idx
		}
		idx++
		pos = next
		s = rest
		state = newState
	}
	return idx
}

// SliceByGraphemes returns s[start:end) measured in grapheme indices.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	if startByte >= len(s) {
		return ""
	}
	if endByte > len(s) {
		endByte = len(s)
	}
	return s[startByte:endByte]
}

// InsertAtGrapheme inserts text at the given grapheme index.
func InsertAtGrapheme(s string, graphemeIdx int, insert string) string {
	offset := GraphemeToByteOffset(s, graphemeIdx)
	return s[:offset] + insert + s[offset:]
}

// DeleteGraphemeRange removes graphemes [start, end) from s.
func DeleteGraphemeRange(s string, start, end int) string {
	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)
	return s[:startByte] + s[endByte:]
}

// DisplayWidth returns the width of s in terminal cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToDisplayWidth cuts s to fit maxWidth cells without splitting a
// grapheme cluster.
func TruncateToDisplayWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var b strings.Builder
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		w := runewidth.StringWidth(cluster)
		if width+w > maxWidth {
			break
		}
		b.WriteString(cluster)
		width += w
		s = rest
		state = newState
	}
	return b.String()
}
