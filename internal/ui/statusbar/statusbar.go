// Package statusbar renders the single-line status strip at the bottom of
// the screen: file, cursor position, pending changes, and file format.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"justcode/internal/ui/styles"
)

// Info is everything the bar displays for the active file.
type Info struct {
	Path       string
	Line       int // 1-based
	Col        int // 1-based
	Modified   bool
	Added      int // lines added vs the saved file
	Removed    int // lines removed vs the saved file
	Language   string
	LineEnding string
	Encoding   string
	Message    string // transient message shown instead of file info
}

// Model holds the status bar state.
type Model struct {
	width int
	info  Info
}

// New creates an empty status bar.
func New() Model {
	return Model{}
}

// SetWidth sets the render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetInfo replaces the displayed information.
func (m *Model) SetInfo(info Info) {
	m.info = info
}

// Info returns the currently displayed information.
func (m *Model) Info() Info {
	return m.info
}

// CountChanges diffs current against saved line by line and returns the
// number of added and removed lines.
func CountChanges(saved, current string) (added, removed int) {
	if saved == current {
		return 0, 0
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(saved, current)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if n == 0 && d.Text != "" {
			// Trailing segment without a newline still counts as a line.
			n = 1
		}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// View renders the bar padded to full width.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}

	left := m.leftSegment()
	right := m.rightSegment()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the right segment rather than overflow.
		right = ""
		gap = max(m.width-lipgloss.Width(left), 0)
	}

	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) leftSegment() string {
	if m.info.Message != "" {
		return " " + m.info.Message
	}
	if m.info.Path == "" {
		return " no file"
	}

	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(m.info.Path)
	if m.info.Modified {
		sb.WriteString(" ●")
	}
	sb.WriteString(fmt.Sprintf("  %d:%d", m.info.Line, m.info.Col))
	if m.info.Added > 0 || m.info.Removed > 0 {
		sb.WriteString(fmt.Sprintf("  +%d −%d", m.info.Added, m.info.Removed))
	}
	return sb.String()
}

func (m *Model) rightSegment() string {
	if m.info.Path == "" {
		return ""
	}
	parts := make([]string, 0, 3)
	if m.info.Language != "" {
		parts = append(parts, m.info.Language)
	}
	if m.info.LineEnding != "" {
		parts = append(parts, m.info.LineEnding)
	}
	if m.info.Encoding != "" {
		parts = append(parts, m.info.Encoding)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + " "
}
