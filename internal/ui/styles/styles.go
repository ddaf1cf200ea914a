// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#f8f8f2"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#bbbbbb"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#6272a4"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#aaaaaa", Dark: "#777777"}

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#d9dccf", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43bf6d", Dark: "#50fa7b"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#feca57", Dark: "#f1fa8c"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#ff6b6b", Dark: "#ff5555"}

	// Panel title and list selection
	PanelTitleColor         = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#c9c9c9"}
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}

	// Tab bar
	TabActiveColor   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#f8f8f2"}
	TabInactiveColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#6272a4"}
	TabModifiedColor = lipgloss.AdaptiveColor{Light: "#feca57", Dark: "#ffb86c"}

	// Editor gutter
	GutterLineColor    = lipgloss.AdaptiveColor{Light: "#bbbbbb", Dark: "#6272a4"}
	GutterCurrentColor = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#f8f8f2"}

	// File tree
	TreeDirectoryColor = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#8be9fd"}
	TreeFileColor      = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#f8f8f2"}

	// Shell panel
	ShellPromptColor = lipgloss.AdaptiveColor{Light: "#43bf6d", Dark: "#50fa7b"}
	ShellStderrColor = lipgloss.AdaptiveColor{Light: "#ff6b6b", Dark: "#ff5555"}

	// Status bar
	StatusBarBgColor = lipgloss.AdaptiveColor{Light: "#d9dccf", Dark: "#282a36"}
	StatusBarFgColor = lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#f8f8f2"}
)

// Derived styles rebuilt by rebuildStyles after theme changes.
var (
	SelectionIndicatorStyle lipgloss.Style
	PanelTitleStyle         lipgloss.Style
	TextMutedStyle          lipgloss.Style
	StatusErrorStyle        lipgloss.Style
	StatusSuccessStyle      lipgloss.Style
	StatusBarStyle          lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	PanelTitleStyle = lipgloss.NewStyle().Foreground(PanelTitleColor)
	TextMutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	StatusBarStyle = lipgloss.NewStyle().Background(StatusBarBgColor).Foreground(StatusBarFgColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
