package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCountChanges(t *testing.T) {
	tests := []struct {
		name        string
		saved       string
		current     string
		wantAdded   int
		wantRemoved int
	}{
		{"identical", "a\nb\n", "a\nb\n", 0, 0},
		{"one line added", "a\nb\n", "a\nb\nc\n", 1, 0},
		{"one line removed", "a\nb\nc\n", "a\nc\n", 0, 1},
		{"replace line", "a\nold\nz\n", "a\nnew\nz\n", 1, 1},
		{"empty to content", "", "a\nb\n", 2, 0},
		{"no trailing newline", "a", "b", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := CountChanges(tt.saved, tt.current)
			assert.Equal(t, tt.wantAdded, added, "added")
			assert.Equal(t, tt.wantRemoved, removed, "removed")
		})
	}
}

func TestView_FileInfo(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetInfo(Info{
		Path:       "src/main.steps",
		Line:       12,
		Col:        4,
		Modified:   true,
		Added:      3,
		Removed:    1,
		Language:   "Steps",
		LineEnding: "LF",
		Encoding:   "UTF-8",
	})

	view := m.View()
	assert.Contains(t, view, "src/main.steps")
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "12:4")
	assert.Contains(t, view, "+3 −1")
	assert.Contains(t, view, "Steps")
	assert.Contains(t, view, "LF")
	assert.Contains(t, view, "UTF-8")
}

func TestView_UnmodifiedHidesChangeCounts(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetInfo(Info{Path: "a.steps", Line: 1, Col: 1})

	view := m.View()
	assert.NotContains(t, view, "+0")
	assert.NotContains(t, view, "●")
}

func TestView_Message(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetInfo(Info{Path: "a.steps", Message: "saved a.steps"})

	assert.Contains(t, m.View(), "saved a.steps")
}

func TestView_NoFile(t *testing.T) {
	m := New()
	m.SetWidth(40)
	assert.Contains(t, m.View(), "no file")
}

func TestView_PadsToWidth(t *testing.T) {
	m := New()
	m.SetWidth(60)
	m.SetInfo(Info{Path: "a.steps", Line: 1, Col: 1, Encoding: "UTF-8"})

	assert.Equal(t, 60, lipgloss.Width(m.View()))
}

func TestView_NarrowDropsRightSegment(t *testing.T) {
	m := New()
	m.SetWidth(20)
	m.SetInfo(Info{
		Path: "some/longish/path.steps", Line: 100, Col: 42,
		Language: "Steps", LineEnding: "CRLF", Encoding: "UTF-16 LE",
	})

	view := m.View()
	assert.NotContains(t, view, "UTF-16")
}

func TestView_ZeroWidth(t *testing.T) {
	m := New()
	assert.Equal(t, "", m.View())
}
