// Package filetree renders the workspace browser panel. Directories load
// lazily on first expand; bookmarked files stay pinned above the tree.
package filetree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"justcode/internal/keys"
	"justcode/internal/log"
	"justcode/internal/ui/styles"
)

// OpenFileMsg is sent when the user picks a file to open.
type OpenFileMsg struct {
	Path string
}

// ToggleBookmarkMsg is sent when the user bookmarks or unbookmarks a file.
type ToggleBookmarkMsg struct {
	Path     string
	Bookmark bool // true to add, false to remove
}

// node is one row in the tree. Bookmark rows sit above the real tree and
// carry no children.
type node struct {
	path     string
	name     string
	isDir    bool
	bookmark bool
	expanded bool
	loaded   bool
	depth    int
	parent   *node
	children []*node
}

// Model holds the file tree state.
type Model struct {
	rootDir   string
	root      *node
	nodes     []*node // flattened visible rows
	cursor    int
	bookmarks []string
	keys      keys.KeyMap

	width     int
	height    int
	scrollTop int
}

// New creates a file tree rooted at dir.
func New(dir string, bookmarks []string) (Model, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Model{}, fmt.Errorf("resolving root %s: %w", dir, err)
	}

	m := Model{
		rootDir: abs,
		root:    &node{path: abs, name: filepath.Base(abs), isDir: true, expanded: true, depth: -1},
		keys:    keys.DefaultKeyMap(),
	}
	m.bookmarks = append(m.bookmarks, bookmarks...)

	if err := m.loadChildren(m.root); err != nil {
		return Model{}, err
	}
	m.refresh()
	return m, nil
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetBookmarks replaces the pinned bookmark list.
func (m *Model) SetBookmarks(bookmarks []string) {
	m.bookmarks = append([]string(nil), bookmarks...)
	m.refresh()
}

// Reload re-reads every expanded directory, keeping expansion state and
// the cursor in range. Call after files change on disk.
func (m *Model) Reload() {
	expanded := make(map[string]bool)
	collectExpanded(m.root, expanded)

	m.root.loaded = false
	if err := m.loadChildren(m.root); err != nil {
		log.ErrorErr(log.CatUI, "reloading tree root", err, "path", m.root.path)
		m.refresh()
		return
	}
	m.restoreExpanded(m.root, expanded)
	m.refresh()
}

// collectExpanded records the paths of every expanded directory under n.
func collectExpanded(n *node, expanded map[string]bool) {
	for _, child := range n.children {
		if child.isDir && child.expanded {
			expanded[child.path] = true
			collectExpanded(child, expanded)
		}
	}
}

// restoreExpanded re-opens directories that were expanded before a reload,
// reading their fresh entries as it descends. A directory that vanished or
// can no longer be read simply stays closed.
func (m *Model) restoreExpanded(n *node, expanded map[string]bool) {
	for _, child := range n.children {
		if !child.isDir || !expanded[child.path] {
			continue
		}
		if err := m.loadChildren(child); err != nil {
			log.ErrorErr(log.CatUI, "reloading tree directory", err, "path", child.path)
			continue
		}
		child.expanded = true
		m.restoreExpanded(child, expanded)
	}
}

// loadChildren reads the directory entries for n. Hidden files are skipped.
func (m *Model) loadChildren(n *node) error {
	if n.loaded {
		return nil
	}
	entries, err := os.ReadDir(n.path)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", n.path, err)
	}

	n.children = n.children[:0]
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		n.children = append(n.children, &node{
			path:   filepath.Join(n.path, entry.Name()),
			name:   entry.Name(),
			isDir:  entry.IsDir(),
			depth:  n.depth + 1,
			parent: n,
		})
	}

	// Directories first, then files, each alphabetically.
	sort.SliceStable(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})

	n.loaded = true
	return nil
}

// refresh rebuilds the flattened row list: bookmarks first, then the tree.
func (m *Model) refresh() {
	m.nodes = m.nodes[:0]
	for _, path := range m.bookmarks {
		m.nodes = append(m.nodes, &node{
			path:     path,
			name:     filepath.Base(path),
			bookmark: true,
		})
	}
	m.appendVisible(m.root)

	if m.cursor >= len(m.nodes) {
		m.cursor = max(len(m.nodes)-1, 0)
	}
}

func (m *Model) appendVisible(n *node) {
	if !n.expanded {
		return
	}
	for _, child := range n.children {
		m.nodes = append(m.nodes, child)
		if child.isDir {
			m.appendVisible(child)
		}
	}
}

// Selected returns the path under the cursor, or "".
func (m *Model) Selected() string {
	if m.cursor >= 0 && m.cursor < len(m.nodes) {
		return m.nodes[m.cursor].path
	}
	return ""
}

// Update handles navigation keys. Unhandled keys are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Open):
		return m.open()
	case key.Matches(keyMsg, m.keys.Collapse):
		m.collapse()
	case key.Matches(keyMsg, m.keys.Bookmark):
		return m.toggleBookmark()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	next = max(next, 0)
	next = min(next, len(m.nodes)-1)
	next = max(next, 0)
	m.cursor = next
	m.ensureCursorVisible()
}

// open expands/collapses a directory or emits OpenFileMsg for a file.
func (m Model) open() (Model, tea.Cmd) {
	n := m.current()
	if n == nil {
		return m, nil
	}
	if !n.isDir {
		path := n.path
		return m, func() tea.Msg { return OpenFileMsg{Path: path} }
	}

	if n.expanded {
		n.expanded = false
	} else {
		if err := m.loadChildren(n); err != nil {
			log.ErrorErr(log.CatUI, "expanding directory", err, "path", n.path)
			return m, nil
		}
		n.expanded = true
	}
	m.refresh()
	return m, nil
}

// collapse folds the current directory, or jumps to the parent directory
// when the cursor is on a file or an already-folded directory.
func (m *Model) collapse() {
	n := m.current()
	if n == nil || n.bookmark {
		return
	}
	if n.isDir && n.expanded {
		n.expanded = false
		m.refresh()
		return
	}
	if n.parent != nil && n.parent != m.root {
		for i, row := range m.nodes {
			if row == n.parent {
				m.cursor = i
				m.ensureCursorVisible()
				return
			}
		}
	}
}

func (m Model) toggleBookmark() (Model, tea.Cmd) {
	n := m.current()
	if n == nil || n.isDir {
		return m, nil
	}
	path := n.path
	bookmarked := false
	for _, b := range m.bookmarks {
		if b == path {
			bookmarked = true
			break
		}
	}
	return m, func() tea.Msg { return ToggleBookmarkMsg{Path: path, Bookmark: !bookmarked} }
}

func (m *Model) current() *node {
	if m.cursor >= 0 && m.cursor < len(m.nodes) {
		return m.nodes[m.cursor]
	}
	return nil
}

func (m *Model) ensureCursorVisible() {
	viewportHeight := m.viewportHeight()
	if viewportHeight <= 0 {
		return
	}
	if m.cursor >= m.scrollTop+viewportHeight {
		m.scrollTop = m.cursor - viewportHeight + 1
	}
	if m.cursor < m.scrollTop {
		m.scrollTop = m.cursor
	}
	maxScroll := max(len(m.nodes)-viewportHeight, 0)
	m.scrollTop = min(m.scrollTop, maxScroll)
	m.scrollTop = max(m.scrollTop, 0)
}

func (m *Model) viewportHeight() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

// View renders the visible rows with scroll indicators.
func (m *Model) View() string {
	if len(m.nodes) == 0 {
		return styles.TextMutedStyle.Render("empty directory")
	}

	dirStyle := lipgloss.NewStyle().Foreground(styles.TreeDirectoryColor)
	fileStyle := lipgloss.NewStyle().Foreground(styles.TreeFileColor)
	bookmarkStyle := lipgloss.NewStyle().Foreground(styles.StatusWarningColor)

	viewportHeight := m.viewportHeight()
	endIdx := min(m.scrollTop+viewportHeight, len(m.nodes))

	var sb strings.Builder
	if m.scrollTop > 0 {
		sb.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("  ↑ %d more above", m.scrollTop)))
		sb.WriteString("\n")
	}

	for i := m.scrollTop; i < endIdx; i++ {
		n := m.nodes[i]

		var row strings.Builder
		if i == m.cursor {
			row.WriteString(styles.SelectionIndicatorStyle.Render(">"))
		} else {
			row.WriteString(" ")
		}
		row.WriteString(strings.Repeat("  ", max(n.depth, 0)))

		switch {
		case n.bookmark:
			row.WriteString(bookmarkStyle.Render("★ "))
			row.WriteString(fileStyle.Render(m.fit(n.name, &row)))
		case n.isDir:
			if n.expanded {
				row.WriteString(dirStyle.Render("▾ "))
			} else {
				row.WriteString(dirStyle.Render("▸ "))
			}
			row.WriteString(dirStyle.Render(m.fit(n.name, &row)))
		default:
			row.WriteString("  ")
			row.WriteString(fileStyle.Render(m.fit(n.name, &row)))
		}

		sb.WriteString(row.String())
		sb.WriteString("\n")
	}

	if remaining := len(m.nodes) - endIdx; remaining > 0 {
		sb.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// fit truncates a name to the space left on the current row.
func (m *Model) fit(name string, row *strings.Builder) string {
	if m.width <= 0 {
		return name
	}
	available := m.width - lipgloss.Width(row.String())
	if available <= 0 {
		return ""
	}
	if lipgloss.Width(name) > available {
		return styles.TruncateString(name, available)
	}
	return name
}
