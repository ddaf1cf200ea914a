package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAndHide(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Equal(t, "", m.View())

	m = m.Show("saved main.steps", StyleSuccess)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "saved main.steps")
	assert.Contains(t, m.View(), "✓")

	m = m.Hide()
	assert.False(t, m.Visible())
	assert.Equal(t, "", m.View())
}

func TestView_Styles(t *testing.T) {
	assert.Contains(t, New().Show("boom", StyleError).View(), "✗")
	assert.Contains(t, New().Show("careful", StyleWarn).View(), "!")
	assert.Contains(t, New().Show("done", StyleSuccess).View(), "✓")
}

func TestOverlay_PlacesNearBottom(t *testing.T) {
	m := New().Show("saved", StyleSuccess)

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 12), "\n")
	out := m.Overlay(bg, 40, 12)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, strings.Repeat(".", 40), lines[0], "top untouched")

	found := false
	for _, l := range lines[len(lines)-5:] {
		if idx := strings.Index(l, "saved"); idx >= 0 {
			found = true
			assert.Greater(t, idx, 20, "toast sits on the right half")
		}
	}
	assert.True(t, found, "toast near bottom")
	assert.Equal(t, strings.Repeat(".", 40), lines[11], "status bar row stays clear")
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	bg := "background"
	assert.Equal(t, bg, New().Overlay(bg, 20, 5))
}

func TestScheduleDismiss(t *testing.T) {
	cmd := ScheduleDismiss(time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.IsType(t, DismissMsg{}, msg)
}
