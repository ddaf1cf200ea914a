// Package editor provides the text editing buffer component.
package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the editor buffer state. Columns are grapheme indices.
type Model struct {
	lines     []string
	cursorRow int
	cursorCol int

	// preferredCol keeps the column steady across vertical movement over
	// shorter lines.
	preferredCol int

	scrollRow int // first visible line
	scrollCol int // first visible grapheme column

	width   int
	height  int
	focused bool

	modified bool
	tabWidth int

	lexer  SyntaxLexer
	tokens [][]SyntaxToken
}

// ContentChangedMsg is emitted after every buffer mutation.
type ContentChangedMsg struct{}

// New creates an empty editor buffer.
func New() Model {
	return Model{
		lines:    []string{""},
		tabWidth: 4,
	}
}

// SetSize sets the viewport dimensions in terminal cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetTabWidth sets how many spaces a Tab key inserts.
func (m *Model) SetTabWidth(w int) {
	if w > 0 {
		m.tabWidth = w
	}
}

// Focus gives the editor keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the editor has keyboard focus.
func (m Model) Focused() bool { return m.focused }

// SetLexer installs a syntax lexer and retokenizes the buffer.
// A nil lexer disables highlighting.
func (m *Model) SetLexer(lexer SyntaxLexer) {
	m.lexer = lexer
	m.retokenize()
}

// SetContent replaces the buffer content and resets the cursor.
// The modified flag is cleared; loading a file is not an edit.
func (m *Model) SetContent(content string) {
	m.lines = strings.Split(content, "\n")
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	m.cursorRow = 0
	m.cursorCol = 0
	m.preferredCol = 0
	m.scrollRow = 0
	m.scrollCol = 0
	m.modified = false
	m.retokenize()
}

// Content returns the buffer joined with LF line breaks.
func (m Model) Content() string {
	return strings.Join(m.lines, "\n")
}

// Lines returns the buffer lines. The slice must not be mutated.
func (m Model) Lines() []string { return m.lines }

// LineCount returns the number of lines in the buffer.
func (m Model) LineCount() int { return len(m.lines) }

// CursorPosition returns the 0-indexed cursor row and grapheme column.
func (m Model) CursorPosition() (row, col int) {
	return m.cursorRow, m.cursorCol
}

// Modified reports whether the buffer changed since the last SetContent or
// ClearModified.
func (m Model) Modified() bool { return m.modified }

// ClearModified marks the buffer as saved.
func (m *Model) ClearModified() { m.modified = false }

// Update handles key input. Non-key messages are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyRunes, tea.KeySpace:
		text := string(keyMsg.Runes)
		if keyMsg.Type == tea.KeySpace {
			text = " "
		}
		m.insertText(text)
		return m, changed

	case tea.KeyEnter:
		m.insertNewline()
		return m, changed

	case tea.KeyTab:
		m.insertText(strings.Repeat(" ", m.tabWidth))
		return m, changed

	case tea.KeyBackspace:
		if m.deleteBackward() {
			return m, changed
		}
		return m, nil

	case tea.KeyDelete:
		if m.deleteForward() {
			return m, changed
		}
		return m, nil

	case tea.KeyUp:
		m.moveCursorVertical(-1)
	case tea.KeyDown:
		m.moveCursorVertical(1)
	case tea.KeyLeft:
		m.moveCursorHorizontal(-1)
	case tea.KeyRight:
		m.moveCursorHorizontal(1)
	case tea.KeyHome:
		m.cursorCol = 0
		m.preferredCol = 0
		m.ensureCursorVisible()
	case tea.KeyEnd:
		m.cursorCol = GraphemeCount(m.lines[m.cursorRow])
		m.preferredCol = m.cursorCol
		m.ensureCursorVisible()
	case tea.KeyPgUp:
		m.moveCursorVertical(-m.pageSize())
	case tea.KeyPgDown:
		m.moveCursorVertical(m.pageSize())
	}

	return m, nil
}

func changed() tea.Msg { return ContentChangedMsg{} }

// insertText inserts text at the cursor. Multi-line text is split on LF.
func (m *Model) insertText(text string) {
	if text == "" {
		return
	}
	parts := strings.Split(text, "\n")
	line := m.lines[m.cursorRow]
	offset := GraphemeToByteOffset(line, m.cursorCol)
	head, tail := line[:offset], line[offset:]

	if len(parts) == 1 {
		m.lines[m.cursorRow] = head + parts[0] + tail
		m.cursorCol += GraphemeCount(parts[0])
	} else {
		inserted := make([]string, 0, len(parts))
		inserted = append(inserted, head+parts[0])
		inserted = append(inserted, parts[1:len(parts)-1]...)
		last := parts[len(parts)-1]
		inserted = append(inserted, last+tail)

		newLines := make([]string, 0, len(m.lines)+len(parts)-1)
		newLines = append(newLines, m.lines[:m.cursorRow]...)
		newLines = append(newLines, inserted...)
		newLines = append(newLines, m.lines[m.cursorRow+1:]...)
		m.lines = newLines

		m.cursorRow += len(parts) - 1
		m.cursorCol = GraphemeCount(last)
	}

	m.preferredCol = m.cursorCol
	m.markEdited()
}

// insertNewline splits the current line at the cursor.
func (m *Model) insertNewline() {
	line := m.lines[m.cursorRow]
	offset := GraphemeToByteOffset(line, m.cursorCol)

	newLines := make([]string, 0, len(m.lines)+1)
	newLines = append(newLines, m.lines[:m.cursorRow]...)
	newLines = append(newLines, line[:offset], line[offset:])
	newLines = append(newLines, m.lines[m.cursorRow+1:]...)
	m.lines = newLines

	m.cursorRow++
	m.cursorCol = 0
	m.preferredCol = 0
	m.markEdited()
}

// deleteBackward removes the grapheme before the cursor, joining lines at
// column zero. Reports whether anything was deleted.
func (m *Model) deleteBackward() bool {
	if m.cursorCol > 0 {
		line := m.lines[m.cursorRow]
		m.lines[m.cursorRow] = DeleteGraphemeRange(line, m.cursorCol-1, m.cursorCol)
		m.cursorCol--
		m.preferredCol = m.cursorCol
		m.markEdited()
		return true
	}
	if m.cursorRow > 0 {
		prev := m.lines[m.cursorRow-1]
		m.cursorCol = GraphemeCount(prev)
		m.lines[m.cursorRow-1] = prev + m.lines[m.cursorRow]
		m.lines = append(m.lines[:m.cursorRow], m.lines[m.cursorRow+1:]...)
		m.cursorRow--
		m.preferredCol = m.cursorCol
		m.markEdited()
		return true
	}
	return false
}

// deleteForward removes the grapheme under the cursor, joining the next line
// at end of line. Reports whether anything was deleted.
func (m *Model) deleteForward() bool {
	line := m.lines[m.cursorRow]
	if m.cursorCol < GraphemeCount(line) {
		m.lines[m.cursorRow] = DeleteGraphemeRange(line, m.cursorCol, m.cursorCol+1)
		m.markEdited()
		return true
	}
	if m.cursorRow < len(m.lines)-1 {
		m.lines[m.cursorRow] = line + m.lines[m.cursorRow+1]
		m.lines = append(m.lines[:m.cursorRow+1], m.lines[m.cursorRow+2:]...)
		m.markEdited()
		return true
	}
	return false
}

func (m *Model) moveCursorVertical(delta int) {
	m.cursorRow += delta
	m.cursorRow = max(m.cursorRow, 0)
	m.cursorRow = min(m.cursorRow, len(m.lines)-1)

	lineLen := GraphemeCount(m.lines[m.cursorRow])
	m.cursorCol = min(m.preferredCol, lineLen)
	m.ensureCursorVisible()
}

func (m *Model) moveCursorHorizontal(delta int) {
	m.cursorCol += delta
	if m.cursorCol < 0 {
		if m.cursorRow > 0 {
			m.cursorRow--
			m.cursorCol = GraphemeCount(m.lines[m.cursorRow])
		} else {
			m.cursorCol = 0
		}
	} else if m.cursorCol > GraphemeCount(m.lines[m.cursorRow]) {
		if m.cursorRow < len(m.lines)-1 {
			m.cursorRow++
			m.cursorCol = 0
		} else {
			m.cursorCol = GraphemeCount(m.lines[m.cursorRow])
		}
	}
	m.preferredCol = m.cursorCol
	m.ensureCursorVisible()
}

func (m Model) pageSize() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

func (m *Model) markEdited() {
	m.modified = true
	m.retokenize()
	m.ensureCursorVisible()
}

// retokenize rebuilds the per-line syntax token cache from the whole buffer.
func (m *Model) retokenize() {
	if m.lexer == nil {
		m.tokens = nil
		return
	}
	m.tokens = m.lexer.TokenizeAll(m.lines)
}

// ensureCursorVisible adjusts scroll offsets to keep the cursor in view.
func (m *Model) ensureCursorVisible() {
	if m.height > 0 {
		m.scrollRow = min(m.scrollRow, m.cursorRow)
		if m.cursorRow >= m.scrollRow+m.height {
			m.scrollRow = m.cursorRow - m.height + 1
		}
		maxScroll := max(len(m.lines)-m.height, 0)
		m.scrollRow = min(m.scrollRow, maxScroll)
		m.scrollRow = max(m.scrollRow, 0)
	}

	textWidth := m.textWidth()
	if textWidth > 0 {
		m.scrollCol = min(m.scrollCol, m.cursorCol)
		if m.cursorCol >= m.scrollCol+textWidth {
			m.scrollCol = m.cursorCol - textWidth + 1
		}
		m.scrollCol = max(m.scrollCol, 0)
	}
}
