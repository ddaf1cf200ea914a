package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Dimensions(t *testing.T) {
	out := Render(Config{Content: "hello", Width: 20, Height: 5})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestRender_Corners(t *testing.T) {
	out := Render(Config{Content: "x", Width: 10, Height: 3})

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╮")
	assert.Contains(t, out, "╰")
	assert.Contains(t, out, "╯")
	assert.Contains(t, out, "x")
}

func TestRender_Title(t *testing.T) {
	out := Render(Config{Content: "body", Width: 30, Height: 4, Title: "Files"})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Files")
	assert.NotContains(t, lines[len(lines)-1], "Files")
}

func TestRender_BottomRight(t *testing.T) {
	out := Render(Config{Content: "body", Width: 30, Height: 4, BottomRight: "3 files"})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[len(lines)-1], "3 files")
}

func TestRender_TitleTruncated(t *testing.T) {
	out := Render(Config{
		Content: "b", Width: 12, Height: 3,
		Title: "a very long panel title",
	})

	lines := strings.Split(out, "\n")
	assert.Equal(t, 12, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[0], "...")
}

func TestRender_ContentClipped(t *testing.T) {
	out := Render(Config{
		Content: "one\ntwo\nthree\nfour\nfive",
		Width:   20, Height: 4, // room for 2 content lines
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, out, "one")
	assert.NotContains(t, out, "five")
}

func TestRender_FocusedUsesFocusColor(t *testing.T) {
	focused := Render(Config{Content: "x", Width: 10, Height: 3, Focused: true})
	blurred := Render(Config{Content: "x", Width: 10, Height: 3})

	// Same geometry either way.
	assert.Equal(t, lipgloss.Width(focused), lipgloss.Width(blurred))
	assert.Equal(t, lipgloss.Height(focused), lipgloss.Height(blurred))
}
