package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_ContainsSections(t *testing.T) {
	m := New().SetSize(120, 40)
	view := m.View()

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Panels")
	assert.Contains(t, view, "Files")
	assert.Contains(t, view, "File Tree")
	assert.Contains(t, view, "General")
}

func TestView_ContainsCoreBindings(t *testing.T) {
	m := New().SetSize(120, 40)
	view := m.View()

	assert.Contains(t, view, "ctrl+s")
	assert.Contains(t, view, "save file")
	assert.Contains(t, view, "ctrl+b")
	assert.Contains(t, view, "toggle file tree")
	assert.Contains(t, view, "ctrl+q")
	assert.Contains(t, view, "quit")
	assert.Contains(t, view, "toggle bookmark")
}

func TestView_Footer(t *testing.T) {
	m := New().SetSize(120, 40)
	assert.Contains(t, m.View(), "Press esc to close")
}

func TestOverlay_PreservesBackground(t *testing.T) {
	m := New().SetSize(150, 50)

	bg := ""
	for range 50 {
		bg += "####################################################\n"
	}
	out := m.Overlay(bg)

	assert.Contains(t, out, "Keybindings")
	assert.Contains(t, out, "####", "background shows around the box")
}
