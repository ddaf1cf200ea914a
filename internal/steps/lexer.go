package steps

import "strings"

// Span is a contiguous run of characters assigned one style tag. Spans
// emitted by Scan are contiguous, non-overlapping, and together cover the
// scanned range exactly.
type Span struct {
	Length int
	Style  StyleTag
}

const (
	noteBlockStart = "note block:"
	noteBlockEnd   = "end note"
	lineComment    = "note:"
)

// Scan styles text[start:end) and returns the resulting spans along with the
// note-block state after the last scanned character. inNoteBlock must reflect
// all "note block:"/"end note" markers before start; callers that re-style a
// sub-range are responsible for supplying the correct starting state (a full
// rescan from offset 0 is always correct).
//
// Scan never fails: any byte sequence produces a fully covering span
// sequence. Unterminated strings and note blocks degrade to styling until a
// boundary or end of range.
func Scan(text string, start, end int, inNoteBlock bool) ([]Span, bool) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return nil, inNoteBlock
	}

	s := text[start:end]
	spans := make([]Span, 0, len(s)/4+1)
	i := 0

	for i < len(s) {
		// Note block start
		if !inNoteBlock && matchAhead(s, i, noteBlockStart) {
			spans = append(spans, Span{len(noteBlockStart), StyleComment})
			i += len(noteBlockStart)
			inNoteBlock = true
			continue
		}

		if inNoteBlock {
			if matchAhead(s, i, noteBlockEnd) {
				spans = append(spans, Span{len(noteBlockEnd), StyleComment})
				i += len(noteBlockEnd)
				inNoteBlock = false
			} else {
				// Block body is comment, one character at a time, until
				// the end marker shows up.
				spans = append(spans, Span{1, StyleComment})
				i++
			}
			continue
		}

		// Single-line comment: "note:" through end of line
		if matchAhead(s, i, lineComment) {
			lineEnd := strings.IndexByte(s[i:], '\n')
			if lineEnd == -1 {
				lineEnd = len(s)
			} else {
				lineEnd += i
			}
			spans = append(spans, Span{lineEnd - i, StyleComment})
			i = lineEnd
			continue
		}

		ch := s[i]

		// String literal
		if ch == '"' {
			j := i + 1
			for j < len(s) {
				if s[j] == '\\' && j+1 < len(s) {
					j += 2 // escape pair
				} else if s[j] == '"' {
					j++
					break
				} else if s[j] == '\n' {
					break // unterminated
				} else {
					j++
				}
			}
			spans = append(spans, Span{j - i, StyleString})
			i = j
			continue
		}

		// Number literal, including a leading minus
		if isDigit(ch) || (ch == '-' && i+1 < len(s) && isDigit(s[i+1])) {
			j := i
			if s[j] == '-' {
				j++
			}
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			// Decimal part only when at least one digit follows the dot;
			// a trailing dot is left for the next iteration.
			if j < len(s) && s[j] == '.' && j+1 < len(s) && isDigit(s[j+1]) {
				j++
				for j < len(s) && isDigit(s[j]) {
					j++
				}
			}
			spans = append(spans, Span{j - i, StyleNumber})
			i = j
			continue
		}

		// Multi-word keyword phrases, in table order
		if entry, ok := matchPhrase(s, i); ok {
			spans = append(spans, Span{len(entry.Text), entry.Style})
			i += len(entry.Text)
			continue
		}

		// Identifiers and single-word keywords
		if isLetter(ch) {
			j := i
			for j < len(s) && isWordChar(s[j]) {
				j++
			}
			spans = append(spans, Span{j - i, LookupKeyword(s[i:j])})
			i = j
			continue
		}

		// Math operators
		if ch == '+' || ch == '-' || ch == '*' || ch == '/' {
			spans = append(spans, Span{1, StyleMathOperator})
			i++
			continue
		}

		// Punctuation
		switch ch {
		case ':', ',', '[', ']', '(', ')':
			spans = append(spans, Span{1, StylePunctuation})
			i++
			continue
		}

		// Whitespace and anything else
		spans = append(spans, Span{1, StyleDefault})
		i++
	}

	return spans, inNoteBlock
}

// ScanAll styles an entire document starting outside any note block.
func ScanAll(text string) ([]Span, bool) {
	return Scan(text, 0, len(text), false)
}

// matchPhrase tries every multi-word keyword at position i and returns the
// first match. Table order guarantees longest-match precedence.
func matchPhrase(s string, i int) (phrase, bool) {
	for _, entry := range multiWordKeywords {
		if matchAhead(s, i, entry.Text) {
			return entry, true
		}
	}
	return phrase{}, false
}

// matchAhead reports whether pattern matches at s[i:], case-insensitively.
// When the pattern ends in a letter, the character after the match must not
// be alphanumeric or underscore, so "noted" never matches "note". Patterns
// ending in punctuation carry no trailing restriction.
func matchAhead(s string, i int, pattern string) bool {
	end := i + len(pattern)
	if end > len(s) {
		return false
	}
	if !strings.EqualFold(s[i:end], pattern) {
		return false
	}
	last := pattern[len(pattern)-1]
	if isLetter(last) && end < len(s) && isWordChar(s[end]) {
		return false
	}
	return true
}

// isLetter reports whether c is an ASCII letter or underscore.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordChar reports whether c can appear inside an identifier.
func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
