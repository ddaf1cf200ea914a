package steps

import "github.com/charmbracelet/lipgloss"

// Theme maps syntax element names to hex colors. Keys missing from a theme
// fall back to the defaults below.
type Theme map[string]string

// defaultColors is the built-in cyberpunk-inspired dark palette.
var defaultColors = Theme{
	"structure":     "#ff79c6",
	"control":       "#bd93f9",
	"action":        "#50fa7b",
	"operator":      "#8be9fd",
	"type":          "#ffb86c",
	"string":        "#f1fa8c",
	"number":        "#ff79c6",
	"comment":       "#6272a4",
	"identifier":    "#f8f8f2",
	"literal":       "#bd93f9",
	"punctuation":   "#f8f8f2",
	"math_operator": "#ff79c6",
}

// styleKeys maps each style tag to its theme key. StyleDefault is absent on
// purpose: default text renders unstyled.
var styleKeys = map[StyleTag]string{
	StyleStructureKeyword: "structure",
	StyleControlKeyword:   "control",
	StyleActionKeyword:    "action",
	StyleOperatorKeyword:  "operator",
	StyleTypeKeyword:      "type",
	StyleString:           "string",
	StyleNumber:           "number",
	StyleComment:          "comment",
	StyleIdentifier:       "identifier",
	StyleLiteral:          "literal",
	StylePunctuation:      "punctuation",
	StyleMathOperator:     "math_operator",
}

// DefaultTheme returns a copy of the built-in color set.
func DefaultTheme() Theme {
	theme := make(Theme, len(defaultColors))
	for k, v := range defaultColors {
		theme[k] = v
	}
	return theme
}

// Styles converts a theme into per-tag lipgloss styles. Unknown or missing
// keys use the default palette.
func Styles(theme Theme) map[StyleTag]lipgloss.Style {
	styles := make(map[StyleTag]lipgloss.Style, len(styleKeys))
	for tag, key := range styleKeys {
		color := defaultColors[key]
		if theme != nil {
			if override, ok := theme[key]; ok && override != "" {
				color = override
			}
		}
		styles[tag] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return styles
}
