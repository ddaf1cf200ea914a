package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justcode/internal/steps"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.True(t, cfg.AutoReload)
	assert.True(t, cfg.UI.ShowFileTree)
	assert.True(t, cfg.UI.ShowStatusBar)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.True(t, cfg.Session.Restore)

	assert.NoError(t, cfg.Validate())
}

func TestValidateEditor(t *testing.T) {
	assert.NoError(t, ValidateEditor(EditorConfig{TabWidth: 0}))
	assert.NoError(t, ValidateEditor(EditorConfig{TabWidth: 8}))
	assert.Error(t, ValidateEditor(EditorConfig{TabWidth: -1}))
	assert.Error(t, ValidateEditor(EditorConfig{TabWidth: 99}))

	// The message names the accepted range, zero included.
	err := ValidateEditor(EditorConfig{TabWidth: 99})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 16")
}

func TestValidateSyntax(t *testing.T) {
	assert.NoError(t, ValidateSyntax(nil))
	assert.NoError(t, ValidateSyntax(map[string]string{"string": "#abc123"}))

	err := ValidateSyntax(map[string]string{"strings": "#abc123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown element")

	err = ValidateSyntax(map[string]string{"string": "red"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hex color")
}

func TestValidateTheme(t *testing.T) {
	assert.NoError(t, ValidateTheme(ThemeConfig{}))
	assert.NoError(t, ValidateTheme(ThemeConfig{Preset: "monochrome", Mode: "dark"}))

	assert.Error(t, ValidateTheme(ThemeConfig{Preset: "solarized"}))
	assert.Error(t, ValidateTheme(ThemeConfig{Mode: "sepia"}))
	assert.Error(t, ValidateTheme(ThemeConfig{
		Colors: map[string]any{"text": map[string]any{"primary": "blue"}},
	}))
}

func TestValidateBookmarks(t *testing.T) {
	assert.NoError(t, ValidateBookmarks(nil))
	assert.NoError(t, ValidateBookmarks([]string{"/home/user/projects"}))
	assert.Error(t, ValidateBookmarks([]string{"relative/path"}))
	assert.Error(t, ValidateBookmarks([]string{""}))
}

func TestThemeConfig_FlattenedColors(t *testing.T) {
	theme := ThemeConfig{
		Colors: map[string]any{
			"text": map[string]any{
				"primary":   "#FF0000",
				"secondary": "#00FF00",
			},
			"status.error": "#0000FF",
		},
	}

	flat := theme.FlattenedColors()
	assert.Equal(t, "#FF0000", flat["text.primary"])
	assert.Equal(t, "#00FF00", flat["text.secondary"])
	assert.Equal(t, "#0000FF", flat["status.error"])
}

func TestConfig_SyntaxTheme(t *testing.T) {
	cfg := Defaults()
	cfg.Syntax = map[string]string{"comment": "#999999"}

	theme := cfg.SyntaxTheme()
	assert.Equal(t, "#999999", theme["comment"])
	// Unset keys fall back to the built-in palette.
	assert.Equal(t, steps.DefaultTheme()["string"], theme["string"])
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "auto_reload: true")
	assert.Contains(t, string(data), "tab_width: 4")
}
