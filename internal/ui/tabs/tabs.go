// Package tabs renders the open-file tab bar across the top of the editor.
package tabs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"justcode/internal/ui/styles"
)

// zonePrefix is the prefix for tab zone IDs used in mouse click detection.
const zonePrefix = "tabs:"

// ZoneID returns the bubblezone ID for the tab at index.
func ZoneID(index int) string {
	return fmt.Sprintf("%s%d", zonePrefix, index)
}

// maxLabelWidth caps a single tab label so one long path cannot
// crowd out the rest of the bar.
const maxLabelWidth = 24

// Tab is one open file in the bar.
type Tab struct {
	Path     string
	Modified bool
}

// Model holds the tab bar state.
type Model struct {
	tabs   []Tab
	active int
	width  int
}

// New creates an empty tab bar.
func New() Model {
	return Model{}
}

// SetWidth sets the available render width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Open adds a tab for path and activates it. If the path is already
// open its existing tab is activated instead. Returns the tab index.
func (m *Model) Open(path string) int {
	for i, tab := range m.tabs {
		if tab.Path == path {
			m.active = i
			return i
		}
	}
	m.tabs = append(m.tabs, Tab{Path: path})
	m.active = len(m.tabs) - 1
	return m.active
}

// Close removes the tab at index. The active tab shifts left when the
// closed tab was at or before it.
func (m *Model) Close(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)
	if m.active > index || m.active >= len(m.tabs) {
		m.active--
	}
	if m.active < 0 {
		m.active = 0
	}
}

// CloseOthers removes every tab except the one at index, which becomes
// active. Returns the paths of the closed tabs.
func (m *Model) CloseOthers(index int) []string {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	closed := make([]string, 0, len(m.tabs)-1)
	for i, tab := range m.tabs {
		if i != index {
			closed = append(closed, tab.Path)
		}
	}
	m.tabs = []Tab{m.tabs[index]}
	m.active = 0
	return closed
}

// Next activates the tab to the right, wrapping around.
func (m *Model) Next() {
	if len(m.tabs) > 1 {
		m.active = (m.active + 1) % len(m.tabs)
	}
}

// Prev activates the tab to the left, wrapping around.
func (m *Model) Prev() {
	if len(m.tabs) > 1 {
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	}
}

// SetActive activates the tab at index if it exists.
func (m *Model) SetActive(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.active = index
	}
}

// Active returns the active tab index, or -1 when no tabs are open.
func (m *Model) Active() int {
	if len(m.tabs) == 0 {
		return -1
	}
	return m.active
}

// ActivePath returns the path of the active tab, or "" when empty.
func (m *Model) ActivePath() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].Path
}

// SetModified updates the modified indicator for a path.
func (m *Model) SetModified(path string, modified bool) {
	for i := range m.tabs {
		if m.tabs[i].Path == path {
			m.tabs[i].Modified = modified
			return
		}
	}
}

// Count returns the number of open tabs.
func (m *Model) Count() int {
	return len(m.tabs)
}

// Paths returns the open tab paths in display order.
func (m *Model) Paths() []string {
	paths := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		paths[i] = tab.Path
	}
	return paths
}

// Tabs returns a copy of the tab list.
func (m *Model) Tabs() []Tab {
	return append([]Tab(nil), m.tabs...)
}

// View renders the tab bar as a single line. Each tab is wrapped in a
// bubblezone mark so the app can route mouse clicks.
func (m *Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TabActiveColor)
	inactiveStyle := lipgloss.NewStyle().Foreground(styles.TabInactiveColor)
	modifiedStyle := lipgloss.NewStyle().Foreground(styles.TabModifiedColor)
	separatorStyle := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)

	labels := m.labels()

	var sb strings.Builder
	used := 0
	for i, tab := range m.tabs {
		label := runewidth.Truncate(labels[i], maxLabelWidth, "…")

		var rendered string
		if i == m.active {
			rendered = activeStyle.Render(label)
		} else {
			rendered = inactiveStyle.Render(label)
		}
		if tab.Modified {
			rendered += modifiedStyle.Render(" ●")
		}
		rendered = " " + rendered + " "

		cellWidth := lipgloss.Width(rendered)
		if m.width > 0 && used+cellWidth+1 > m.width && i > 0 {
			sb.WriteString(separatorStyle.Render("…"))
			break
		}

		sb.WriteString(zone.Mark(ZoneID(i), rendered))
		used += cellWidth
		if i < len(m.tabs)-1 {
			sb.WriteString(separatorStyle.Render("│"))
			used++
		}
	}
	return sb.String()
}

// labels computes display names, expanding duplicates with their parent
// directory so two files named main.steps stay distinguishable.
func (m *Model) labels() []string {
	counts := make(map[string]int, len(m.tabs))
	for _, tab := range m.tabs {
		counts[filepath.Base(tab.Path)]++
	}

	labels := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		base := filepath.Base(tab.Path)
		if counts[base] > 1 {
			parent := filepath.Base(filepath.Dir(tab.Path))
			labels[i] = filepath.Join(parent, base)
		} else {
			labels[i] = base
		}
	}
	return labels
}
