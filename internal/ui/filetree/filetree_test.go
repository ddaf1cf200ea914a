package filetree

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDir builds a small workspace:
//
//	root/
//	  docs/readme.md
//	  src/main.steps
//	  src/util.steps
//	  notes.txt
func newTestDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	for _, p := range []string{"docs/readme.md", "src/main.steps", "src/util.steps", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, p), []byte("x"), 0o644))
	}
	// Hidden entries must not appear.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))
	return root
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_SortsDirsFirst(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	// Top level: docs, src, notes.txt.
	assert.Equal(t, filepath.Join(root, "docs"), m.Selected())
	m, _ = m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, filepath.Join(root, "src"), m.Selected())
	m, _ = m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, filepath.Join(root, "notes.txt"), m.Selected())

	assert.NotContains(t, m.View(), ".hidden")
}

func TestUpdate_ExpandAndCollapse(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	// Move to src and expand it.
	m, _ = m.Update(keyMsg(tea.KeyDown))
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	assert.Contains(t, m.View(), "main.steps")

	// Cursor stays on src; enter again collapses.
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	assert.NotContains(t, m.View(), "main.steps")
}

func TestUpdate_OpenFile(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	m, _ = m.Update(keyMsg(tea.KeyDown)) // src
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, _ = m.Update(keyMsg(tea.KeyDown)) // src/main.steps
	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(OpenFileMsg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "src", "main.steps"), msg.Path)
	_ = m
}

func TestUpdate_CollapseJumpsToParent(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	m, _ = m.Update(keyMsg(tea.KeyDown)) // src
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, _ = m.Update(keyMsg(tea.KeyDown)) // src/main.steps

	m, _ = m.Update(runeMsg('h'))
	assert.Equal(t, filepath.Join(root, "src"), m.Selected())

	// h on the expanded dir folds it.
	m, _ = m.Update(runeMsg('h'))
	assert.NotContains(t, m.View(), "main.steps")
}

func TestUpdate_VimKeys(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	m, _ = m.Update(runeMsg('j'))
	assert.Equal(t, filepath.Join(root, "src"), m.Selected())
	m, _ = m.Update(runeMsg('k'))
	assert.Equal(t, filepath.Join(root, "docs"), m.Selected())
}

func TestBookmarks_PinnedOnTop(t *testing.T) {
	root := newTestDir(t)
	pinned := filepath.Join(root, "src", "main.steps")
	m, err := New(root, []string{pinned})
	require.NoError(t, err)
	m.SetSize(40, 20)

	assert.Equal(t, pinned, m.Selected(), "bookmark row is first")
	assert.Contains(t, m.View(), "★")
}

func TestToggleBookmark(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	// notes.txt, not bookmarked yet.
	m, _ = m.Update(keyMsg(tea.KeyDown))
	m, _ = m.Update(keyMsg(tea.KeyDown))
	m, cmd := m.Update(runeMsg('b'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ToggleBookmarkMsg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "notes.txt"), msg.Path)
	assert.True(t, msg.Bookmark)

	// Once pinned, toggling asks for removal.
	m.SetBookmarks([]string{msg.Path})
	m, cmd = m.Update(keyMsg(tea.KeyUp)) // back to top: the bookmark row
	require.Nil(t, cmd)
	for m.cursor > 0 {
		m, _ = m.Update(keyMsg(tea.KeyUp))
	}
	m, cmd = m.Update(runeMsg('b'))
	require.NotNil(t, cmd)
	msg = cmd().(ToggleBookmarkMsg)
	assert.False(t, msg.Bookmark)
}

func TestToggleBookmark_IgnoresDirectories(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	_, cmd := m.Update(runeMsg('b')) // cursor on docs/
	assert.Nil(t, cmd)
}

func TestReload_PicksUpNewFiles(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	require.NoError(t, os.WriteFile(filepath.Join(root, "added.steps"), []byte("x"), 0o644))
	assert.NotContains(t, m.View(), "added.steps")

	m.Reload()
	assert.Contains(t, m.View(), "added.steps")
}

func TestReload_KeepsExpandedDirs(t *testing.T) {
	root := newTestDir(t)
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	m, _ = m.Update(keyMsg(tea.KeyDown)) // src
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	require.Contains(t, m.View(), "main.steps")

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "new.steps"), []byte("x"), 0o644))
	m.Reload()

	view := m.View()
	assert.Contains(t, view, "main.steps", "src stays expanded")
	assert.Contains(t, view, "new.steps")
}

func TestReload_KeepsNestedExpandedDirs(t *testing.T) {
	root := newTestDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "deep", "inner.steps"), []byte("x"), 0o644))

	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 20)

	m, _ = m.Update(keyMsg(tea.KeyDown)) // src
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, _ = m.Update(keyMsg(tea.KeyDown)) // src/deep
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	require.Contains(t, m.View(), "inner.steps")

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "deep", "other.steps"), []byte("x"), 0o644))
	m.Reload()

	view := m.View()
	assert.Contains(t, view, "main.steps", "src stays expanded")
	assert.Contains(t, view, "inner.steps", "src/deep stays expanded")
	assert.Contains(t, view, "other.steps")
}

func TestView_ScrollIndicators(t *testing.T) {
	root := t.TempDir()
	for i := range 30 {
		name := filepath.Join(root, string(rune('a'+i%26))+string(rune('a'+i/26))+".steps")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	}
	m, err := New(root, nil)
	require.NoError(t, err)
	m.SetSize(40, 10)

	assert.Contains(t, m.View(), "more below")

	for range 29 {
		m, _ = m.Update(keyMsg(tea.KeyDown))
	}
	assert.Contains(t, m.View(), "more above")
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
