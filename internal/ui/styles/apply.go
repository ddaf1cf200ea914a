// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import the components, but
// components can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration: defaults first, then
// the preset, then individual color overrides, then a style rebuild.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !IsValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	set := func(dst *lipgloss.AdaptiveColor, token ColorToken) {
		if hex, ok := colors[token]; ok {
			*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}

	set(&TextPrimaryColor, TokenTextPrimary)
	set(&TextSecondaryColor, TokenTextSecondary)
	set(&TextMutedColor, TokenTextMuted)
	set(&TextPlaceholderColor, TokenTextPlaceholder)
	set(&BorderDefaultColor, TokenBorderDefault)
	set(&BorderFocusColor, TokenBorderFocus)
	set(&StatusSuccessColor, TokenStatusSuccess)
	set(&StatusWarningColor, TokenStatusWarning)
	set(&StatusErrorColor, TokenStatusError)
	set(&PanelTitleColor, TokenPanelTitle)
	set(&SelectionIndicatorColor, TokenSelectionIndicator)
	set(&TabActiveColor, TokenTabActive)
	set(&TabInactiveColor, TokenTabInactive)
	set(&TabModifiedColor, TokenTabModified)
	set(&GutterLineColor, TokenGutterLine)
	set(&GutterCurrentColor, TokenGutterCurrent)
	set(&TreeDirectoryColor, TokenTreeDirectory)
	set(&TreeFileColor, TokenTreeFile)
	set(&ShellPromptColor, TokenShellPrompt)
	set(&ShellStderrColor, TokenShellStderr)
	set(&StatusBarBgColor, TokenStatusBarBg)
	set(&StatusBarFgColor, TokenStatusBarFg)
}

func isValidToken(token ColorToken) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}

// IsValidHexColor reports whether s is a #RGB or #RRGGBB hex color.
func IsValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	_, err := strconv.ParseUint(digits, 16, 32)
	return err == nil
}
