// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"cyberpunk":     DefaultPreset,
	"monochrome":    MonochromePreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset is the cyberpunk-inspired dark theme the editor ships with.
var DefaultPreset = Preset{
	Name:        "cyberpunk",
	Description: "Cyberpunk-inspired dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#f8f8f2",
		TokenTextSecondary:   "#bbbbbb",
		TokenTextMuted:       "#6272a4",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#ff79c6",

		TokenStatusSuccess: "#50fa7b",
		TokenStatusWarning: "#f1fa8c",
		TokenStatusError:   "#ff5555",

		TokenPanelTitle:         "#c9c9c9",
		TokenSelectionIndicator: "#ffffff",

		TokenTabActive:   "#f8f8f2",
		TokenTabInactive: "#6272a4",
		TokenTabModified: "#ffb86c",

		TokenGutterLine:    "#6272a4",
		TokenGutterCurrent: "#f8f8f2",

		TokenTreeDirectory: "#8be9fd",
		TokenTreeFile:      "#f8f8f2",

		TokenShellPrompt: "#50fa7b",
		TokenShellStderr: "#ff5555",

		TokenStatusBarBg: "#282a36",
		TokenStatusBarFg: "#f8f8f2",
	},
}

// MonochromePreset strips color for minimal terminals.
var MonochromePreset = Preset{
	Name:        "monochrome",
	Description: "Grayscale theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#e0e0e0",
		TokenTextSecondary:   "#b0b0b0",
		TokenTextMuted:       "#707070",
		TokenTextPlaceholder: "#606060",

		TokenBorderDefault: "#505050",
		TokenBorderFocus:   "#ffffff",

		TokenStatusSuccess: "#d0d0d0",
		TokenStatusWarning: "#b0b0b0",
		TokenStatusError:   "#ffffff",

		TokenPanelTitle:         "#e0e0e0",
		TokenSelectionIndicator: "#ffffff",

		TokenTabActive:   "#ffffff",
		TokenTabInactive: "#808080",
		TokenTabModified: "#c0c0c0",

		TokenGutterLine:    "#606060",
		TokenGutterCurrent: "#e0e0e0",

		TokenTreeDirectory: "#d0d0d0",
		TokenTreeFile:      "#a0a0a0",

		TokenShellPrompt: "#e0e0e0",
		TokenShellStderr: "#ffffff",

		TokenStatusBarBg: "#303030",
		TokenStatusBarFg: "#e0e0e0",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast theme for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ffffff",
		TokenTextSecondary:   "#ffff00",
		TokenTextMuted:       "#c0c0c0",
		TokenTextPlaceholder: "#a0a0a0",

		TokenBorderDefault: "#ffffff",
		TokenBorderFocus:   "#ffff00",

		TokenStatusSuccess: "#00ff00",
		TokenStatusWarning: "#ffff00",
		TokenStatusError:   "#ff0000",

		TokenPanelTitle:         "#ffffff",
		TokenSelectionIndicator: "#ffff00",

		TokenTabActive:   "#ffffff",
		TokenTabInactive: "#c0c0c0",
		TokenTabModified: "#ffff00",

		TokenGutterLine:    "#c0c0c0",
		TokenGutterCurrent: "#ffffff",

		TokenTreeDirectory: "#00ffff",
		TokenTreeFile:      "#ffffff",

		TokenShellPrompt: "#00ff00",
		TokenShellStderr: "#ff0000",

		TokenStatusBarBg: "#000000",
		TokenStatusBarFg: "#ffffff",
	},
}
