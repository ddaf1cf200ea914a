// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Panels
	TokenPanelTitle         ColorToken = "panel.title"
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Tab bar
	TokenTabActive   ColorToken = "tab.active"
	TokenTabInactive ColorToken = "tab.inactive"
	TokenTabModified ColorToken = "tab.modified"

	// Editor gutter
	TokenGutterLine    ColorToken = "gutter.line"
	TokenGutterCurrent ColorToken = "gutter.current"

	// File tree
	TokenTreeDirectory ColorToken = "tree.directory"
	TokenTreeFile      ColorToken = "tree.file"

	// Shell panel
	TokenShellPrompt ColorToken = "shell.prompt"
	TokenShellStderr ColorToken = "shell.stderr"

	// Status bar
	TokenStatusBarBg ColorToken = "statusbar.bg"
	TokenStatusBarFg ColorToken = "statusbar.fg"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,
		TokenBorderDefault,
		TokenBorderFocus,
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
		TokenPanelTitle,
		TokenSelectionIndicator,
		TokenTabActive,
		TokenTabInactive,
		TokenTabModified,
		TokenGutterLine,
		TokenGutterCurrent,
		TokenTreeDirectory,
		TokenTreeFile,
		TokenShellPrompt,
		TokenShellStderr,
		TokenStatusBarBg,
		TokenStatusBarFg,
	}
}
