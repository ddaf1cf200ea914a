package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits unchanged", "hello", 10, "hello"},
		{"exact width unchanged", "hello", 5, "hello"},
		{"truncates with ellipsis", "hello world", 8, "hello..."},
		{"tiny width all dots", "hello", 3, "..."},
		{"width two", "hello", 2, ".."},
		{"zero width empty", "hello", 0, ""},
		{"negative width empty", "hello", -1, ""},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncateString_WideRunes(t *testing.T) {
	// Double-width runes must not overflow the requested width.
	got := TruncateString("日本語のテキスト", 8)
	assert.LessOrEqual(t, lipgloss.Width(got), 8)
	assert.Contains(t, got, "...")
}
