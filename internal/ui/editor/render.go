package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"justcode/internal/ui/styles"
)

var (
	gutterStyle        lipgloss.Style
	gutterCurrentStyle lipgloss.Style
)

func init() {
	rebuildStyles()
	styles.RegisterStyleRebuilder(rebuildStyles)
}

func rebuildStyles() {
	gutterStyle = lipgloss.NewStyle().Foreground(styles.GutterLineColor)
	gutterCurrentStyle = lipgloss.NewStyle().Foreground(styles.GutterCurrentColor)
}

// gutterWidth returns the width of the line-number gutter including the
// separator column.
func (m Model) gutterWidth() int {
	digits := len(fmt.Sprintf("%d", len(m.lines)))
	if digits < 3 {
		digits = 3
	}
	return digits + 2 // number, space, separator
}

// textWidth returns the cells available for line content.
func (m Model) textWidth() int {
	w := m.width - m.gutterWidth()
	if w < 1 {
		w = 1
	}
	return w
}

// View renders the visible window of the buffer with gutter, syntax
// highlighting, and cursor.
func (m Model) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}

	digits := m.gutterWidth() - 2
	textWidth := m.textWidth()

	var out []string
	for row := m.scrollRow; row < m.scrollRow+m.height; row++ {
		if row >= len(m.lines) {
			out = append(out, gutterStyle.Render(strings.Repeat(" ", digits)+" ~"))
			continue
		}

		number := fmt.Sprintf("%*d │", digits, row+1)
		gutter := gutterStyle.Render(number)
		if row == m.cursorRow && m.focused {
			gutter = gutterCurrentStyle.Render(number)
		}

		var tokens []SyntaxToken
		if row < len(m.tokens) {
			tokens = m.tokens[row]
		}

		cursorCol := -1
		if m.focused && row == m.cursorRow {
			cursorCol = m.cursorCol
		}

		out = append(out, gutter+m.renderLine(m.lines[row], tokens, cursorCol, textWidth))
	}

	return strings.Join(out, "\n")
}

// renderLine renders one line clipped to the horizontal scroll window,
// applying syntax tokens and the cursor cell.
func (m Model) renderLine(line string, tokens []SyntaxToken, cursorCol, textWidth int) string {
	segStart := m.scrollCol
	segEnd := segStart + textWidth

	segment := SliceByGraphemes(line, segStart, segEnd)
	segStartByte := GraphemeToByteOffset(line, segStart)
	segTokens := clipTokens(tokens, segStartByte, segStartByte+len(segment))

	cursorByte := -1
	if cursorCol >= 0 {
		cursorByte = GraphemeToByteOffset(line, cursorCol) - segStartByte
	}

	rendered := renderSegment(segment, segTokens, cursorByte)

	// Cursor past end of line renders as a reversed space.
	if cursorCol >= 0 && cursorByte >= len(segment) {
		rendered += lipgloss.NewStyle().Reverse(true).Render(" ")
	}
	return rendered
}

// clipTokens maps line-relative tokens into segment-relative coordinates,
// dropping tokens outside [startByte, endByte).
func clipTokens(tokens []SyntaxToken, startByte, endByte int) []SyntaxToken {
	if len(tokens) == 0 || endByte <= startByte {
		return nil
	}
	var result []SyntaxToken
	for _, tok := range tokens {
		if tok.End <= startByte || tok.Start >= endByte {
			continue
		}
		result = append(result, SyntaxToken{
			Start: max(tok.Start-startByte, 0),
			End:   min(tok.End-startByte, endByte-startByte),
			Style: tok.Style,
		})
	}
	return result
}

// renderSegment walks tokens and gaps left to right, styling each run and
// reversing the cursor grapheme when cursorByte falls inside the segment.
func renderSegment(segment string, tokens []SyntaxToken, cursorByte int) string {
	if segment == "" {
		return ""
	}

	var b strings.Builder
	pos := 0

	appendRun := func(start, end int, style lipgloss.Style, styled bool) {
		if end <= start {
			return
		}
		run := segment[start:end]
		if cursorByte >= start && cursorByte < end {
			cursorIdx := ByteToGraphemeOffset(run, cursorByte-start)
			before := SliceByGraphemes(run, 0, cursorIdx)
			cluster := SliceByGraphemes(run, cursorIdx, cursorIdx+1)
			after := SliceByGraphemes(run, cursorIdx+1, GraphemeCount(run))
			if styled {
				b.WriteString(style.Render(before))
				b.WriteString(style.Reverse(true).Render(cluster))
				b.WriteString(style.Render(after))
			} else {
				b.WriteString(before)
				b.WriteString(lipgloss.NewStyle().Reverse(true).Render(cluster))
				b.WriteString(after)
			}
			return
		}
		if styled {
			b.WriteString(style.Render(run))
		} else {
			b.WriteString(run)
		}
	}

	for _, tok := range tokens {
		if tok.Start > pos {
			appendRun(pos, tok.Start, lipgloss.Style{}, false)
		}
		appendRun(max(tok.Start, pos), tok.End, tok.Style, true)
		pos = max(pos, tok.End)
	}
	if pos < len(segment) {
		appendRun(pos, len(segment), lipgloss.Style{}, false)
	}

	return b.String()
}
