package steps

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"justcode/internal/ui/editor"
)

// Highlighter adapts the Steps lexer to the editor's SyntaxLexer interface.
//
// The editor hands over the whole buffer on every change, so the note-block
// state is always recomputed from offset zero; the running flag is therefore
// correct at every line without any cached boundary bookkeeping.
type Highlighter struct {
	styles map[StyleTag]lipgloss.Style
}

// NewHighlighter creates a highlighter with the given theme colors.
func NewHighlighter(theme Theme) *Highlighter {
	return &Highlighter{styles: Styles(theme)}
}

// TokenizeAll implements editor.SyntaxLexer. It scans the joined buffer once
// and splits the resulting spans into per-line tokens. Default-styled spans
// become gaps, and adjacent spans with equal styles merge into one token
// (the note-block body arrives one character at a time).
func (h *Highlighter) TokenizeAll(lines []string) [][]editor.SyntaxToken {
	doc := strings.Join(lines, "\n")
	spans, _ := ScanAll(doc)

	tokens := make([][]editor.SyntaxToken, len(lines))
	lineIdx := 0
	lineStart := 0 // byte offset of the current line within doc
	offset := 0

	emit := func(start, end int, style StyleTag) {
		if style == StyleDefault || end <= start {
			return
		}
		relStart := start - lineStart
		relEnd := end - lineStart

		cur := tokens[lineIdx]
		if n := len(cur); n > 0 && cur[n-1].End == relStart && sameStyle(cur[n-1].Style, h.styles[style]) {
			cur[n-1].End = relEnd
			return
		}
		tokens[lineIdx] = append(cur, editor.SyntaxToken{
			Start: relStart,
			End:   relEnd,
			Style: h.styles[style],
		})
	}

	for _, span := range spans {
		end := offset + span.Length
		for offset < end {
			lineEnd := lineStart + len(lines[lineIdx])
			if offset >= lineEnd {
				// The span covers the newline separator; move to the
				// next line without emitting anything for it.
				lineIdx++
				lineStart = lineEnd + 1
				offset = max(offset, lineStart)
				continue
			}
			pieceEnd := min(end, lineEnd)
			emit(offset, pieceEnd, span.Style)
			offset = pieceEnd
			if offset < end {
				// Remainder continues past the newline.
				offset++
			}
		}
	}

	return tokens
}

// sameStyle compares rendered styles by their foreground color.
func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground()
}
