// Package config provides configuration types and defaults for justcode.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"justcode/internal/log"
	"justcode/internal/steps"
	"justcode/internal/ui/styles"
)

// Config holds all configuration options for justcode.
type Config struct {
	AutoReload bool              `mapstructure:"auto_reload"`
	UI         UIConfig          `mapstructure:"ui"`
	Editor     EditorConfig      `mapstructure:"editor"`
	Theme      ThemeConfig       `mapstructure:"theme"`
	Syntax     map[string]string `mapstructure:"syntax"`
	Bookmarks  []string          `mapstructure:"bookmarks"`
	Session    SessionConfig     `mapstructure:"session"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowFileTree  bool   `mapstructure:"show_file_tree"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// EditorConfig holds editing behavior options.
type EditorConfig struct {
	TabWidth int `mapstructure:"tab_width"`
}

// SessionConfig holds session persistence options.
type SessionConfig struct {
	// Restore re-opens the previous session's tabs on startup.
	Restore bool `mapstructure:"restore"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "cyberpunk", "monochrome", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// SyntaxTheme converts the syntax color map into a steps.Theme, starting
// from the built-in palette so partial overrides work.
func (c Config) SyntaxTheme() steps.Theme {
	theme := steps.DefaultTheme()
	for key, color := range c.Syntax {
		theme[key] = color
	}
	return theme
}

// ValidateEditor checks editing options for errors. A zero tab width means
// "use the default".
func ValidateEditor(editor EditorConfig) error {
	if editor.TabWidth < 0 || editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 0 and 16 (0 uses the default), got %d", editor.TabWidth)
	}
	return nil
}

// ValidateSyntax checks the syntax color overrides.
func ValidateSyntax(colors map[string]string) error {
	defaults := steps.DefaultTheme()
	for key, value := range colors {
		if _, ok := defaults[key]; !ok {
			return fmt.Errorf("syntax: unknown element %q", key)
		}
		if !styles.IsValidHexColor(value) {
			return fmt.Errorf("syntax.%s: invalid hex color %q", key, value)
		}
	}
	return nil
}

// ValidateTheme checks the theme configuration.
func ValidateTheme(theme ThemeConfig) error {
	if theme.Preset != "" && theme.Preset != "default" {
		if _, ok := styles.Presets[theme.Preset]; !ok {
			return fmt.Errorf("theme.preset: unknown preset %q", theme.Preset)
		}
	}
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}
	for key, value := range theme.FlattenedColors() {
		if !styles.IsValidHexColor(value) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", key, value)
		}
	}
	return nil
}

// ValidateBookmarks checks bookmark paths. Paths must be absolute so they
// stay valid regardless of the working directory.
func ValidateBookmarks(bookmarks []string) error {
	for i, path := range bookmarks {
		if path == "" {
			return fmt.Errorf("bookmarks[%d]: path is empty", i)
		}
		if !filepath.IsAbs(path) {
			return fmt.Errorf("bookmarks[%d]: %q is not an absolute path", i, path)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateSyntax(c.Syntax); err != nil {
		return err
	}
	if err := ValidateBookmarks(c.Bookmarks); err != nil {
		return err
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", c.UI.MarkdownStyle)
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			ShowFileTree:  true,
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Editor: EditorConfig{
			TabWidth: 4,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Session: SessionConfig{
			Restore: true,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# justcode configuration

# Reload open files automatically when they change on disk
auto_reload: true

# UI settings
ui:
  show_file_tree: true    # Show the file tree panel on startup
  show_status_bar: true   # Show status bar at bottom
  # markdown_style: dark  # Markdown preview style: "dark" (default) or "light"

# Editing behavior
editor:
  tab_width: 4            # Spaces inserted per Tab press

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset:
  # preset: monochrome
  #
  # Available presets:
  #   default        - Cyberpunk-inspired dark palette
  #   monochrome     - Greyscale
  #   high-contrast  - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"
  #   gutter.current: "#BD93F9"

# Steps syntax highlighting colors
# syntax:
#   structure: "#ff79c6"     # building, floor, step, declare...
#   control: "#bd93f9"       # if, otherwise, repeat, for each...
#   action: "#50fa7b"        # set, call, display, return...
#   operator: "#8be9fd"      # is equal to, contains, added to...
#   type: "#ffb86c"          # number, text, boolean, list, table
#   string: "#f1fa8c"
#   number: "#ff79c6"
#   comment: "#6272a4"
#   identifier: "#f8f8f2"
#   literal: "#bd93f9"       # true, false, nothing
#   punctuation: "#f8f8f2"
#   math_operator: "#ff79c6"

# Directories pinned to the top of the file tree (absolute paths)
# bookmarks:
#   - /home/user/projects/steps

# Session persistence
session:
  restore: true           # Re-open the previous session's tabs on startup
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
