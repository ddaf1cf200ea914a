package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNew_CancelFocusedFirst(t *testing.T) {
	m := New(Config{Title: "Unsaved changes", Message: "Quit anyway?"})
	assert.Equal(t, FieldCancel, m.Focused())
}

func TestUpdate_EnterOnCancel(t *testing.T) {
	m := New(Config{Title: "Quit"})

	m, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
	_ = m
}

func TestUpdate_EnterOnConfirm(t *testing.T) {
	m := New(Config{Title: "Quit"})

	m, _ = m.Update(keyMsg("left"))
	require.Equal(t, FieldConfirm, m.Focused())

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, ConfirmMsg{}, cmd())
}

func TestUpdate_TabTogglesFocus(t *testing.T) {
	m := New(Config{Title: "Quit"})

	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, FieldConfirm, m.Focused())
	m, _ = m.Update(keyMsg("tab"))
	assert.Equal(t, FieldCancel, m.Focused())
}

func TestUpdate_Shortcuts(t *testing.T) {
	m := New(Config{Title: "Reload"})

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, ConfirmMsg{}, cmd())

	_, cmd = m.Update(keyMsg("n"))
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())

	_, cmd = m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
}

func TestView_ContainsContent(t *testing.T) {
	m := New(Config{
		Title:        "Unsaved changes",
		Message:      "main.steps has unsaved changes. Quit anyway?",
		ConfirmLabel: "Quit",
	})

	view := m.View()
	assert.Contains(t, view, "Unsaved changes")
	assert.Contains(t, view, "Quit anyway?")
	assert.Contains(t, view, "Quit")
	assert.Contains(t, view, "Cancel")
}

func TestOverlay_CentersOnBackground(t *testing.T) {
	m := New(Config{Title: "Quit", Message: "Sure?"})
	m.SetSize(80, 24)

	bg := ""
	for range 24 {
		bg += "................................................................................\n"
	}
	out := m.Overlay(bg)
	assert.Contains(t, out, "Sure?")
	assert.Contains(t, out, "....")
}

func TestUpdate_IgnoresNonKeyMsgs(t *testing.T) {
	m := New(Config{Title: "Quit"})
	m2, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, m.Focused(), m2.Focused())
}
