// Package overlay composites one rendered block on top of another without
// clearing the screen. The editor uses it for the confirmation dialog and
// help screen (centered) and for toasts (lower-right corner).
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center draws fg over the middle of bg in a width x height viewport.
func Center(fg, bg string, width, height int) string {
	x := (width - lipgloss.Width(fg)) / 2
	y := (height - lipgloss.Height(fg)) / 2
	return compose(fg, bg, x, y, height)
}

// BottomRight draws fg over the lower-right corner of bg, inset by margin
// cells from the right and bottom edges.
func BottomRight(fg, bg string, width, height, margin int) string {
	x := width - lipgloss.Width(fg) - margin
	y := height - lipgloss.Height(fg) - margin
	return compose(fg, bg, x, y, height)
}

// compose splices fg into bg starting at column x, row y. Negative
// coordinates clamp to the viewport edge; fg rows past the bottom are
// dropped. Background styling on either side of the block survives.
func compose(fg, bg string, x, y, height int) string {
	x = max(x, 0)
	y = max(y, 0)

	rows := strings.Split(bg, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}

	for i, block := range strings.Split(fg, "\n") {
		if y+i >= len(rows) {
			break
		}
		rows[y+i] = splice(rows[y+i], block, x)
	}
	return strings.Join(rows, "\n")
}

// splice overwrites row with block starting at column x. Both sides of the
// row are cut ANSI-aware so escape sequences in the background stay intact.
func splice(row, block string, x int) string {
	left := ansi.Truncate(row, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	var right string
	if end := x + ansi.StringWidth(block); end < ansi.StringWidth(row) {
		right = ansi.TruncateLeft(row, end, "")
	}
	return left + block + right
}
