package editor

import "github.com/charmbracelet/lipgloss"

// SyntaxToken is a styled region within a line of text.
type SyntaxToken struct {
	// Start is the starting byte offset within the line (0-indexed).
	Start int

	// End is the ending byte offset within the line (exclusive).
	End int

	// Style is the lipgloss style applied to the token's text.
	Style lipgloss.Style
}

// SyntaxLexer tokenizes buffer content for syntax highlighting.
//
// TokenizeAll receives the whole buffer so lexers with cross-line state
// (multi-line comment blocks) can compute it correctly; the editor calls it
// once per content change and caches the result. Per line, tokens must be
// non-overlapping and sorted by Start; gaps between tokens render as plain
// text. A nil inner slice means no highlighting for that line.
type SyntaxLexer interface {
	TokenizeAll(lines []string) [][]SyntaxToken
}
