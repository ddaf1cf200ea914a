// Package modal provides the confirmation dialog used for destructive
// actions like quitting with unsaved changes or reloading over edits.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"justcode/internal/ui/overlay"
	"justcode/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger // for destructive actions
)

// Config controls modal appearance.
type Config struct {
	Title          string
	Message        string
	ConfirmLabel   string // default "Confirm"
	ConfirmVariant ButtonVariant
}

// ConfirmMsg is sent when the user accepts the dialog.
type ConfirmMsg struct{}

// CancelMsg is sent when the user dismisses the dialog.
type CancelMsg struct{}

// Field identifies which button is focused.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the confirmation dialog state.
type Model struct {
	config  Config
	focused Field
	width   int
	height  int
}

// New creates a confirmation dialog. Cancel starts focused so a stray
// Enter does not confirm a destructive action.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	return Model{config: cfg, focused: FieldCancel}
}

// SetSize updates the viewport size used for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the focused button.
func (m Model) Focused() Field {
	return m.focused
}

// Update handles dialog keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab", "h", "l":
		if m.focused == FieldConfirm {
			m.focused = FieldCancel
		} else {
			m.focused = FieldConfirm
		}
	case "enter":
		if m.focused == FieldConfirm {
			return m, func() tea.Msg { return ConfirmMsg{} }
		}
		return m, func() tea.Msg { return CancelMsg{} }
	case "y":
		return m, func() tea.Msg { return ConfirmMsg{} }
	case "esc", "n":
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

// View renders the dialog box.
func (m Model) View() string {
	contentWidth := max(lipgloss.Width(m.config.Message), lipgloss.Width(m.config.Title))
	contentWidth = max(contentWidth, 36)
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.PanelTitleColor).
		PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.config.Title))
	content.WriteString("\n")
	content.WriteString(dividerStyle.Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")

	body := lipgloss.NewStyle().Padding(1, 1)
	msgStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(contentWidth)
	content.WriteString(body.Render(msgStyle.Render(m.config.Message) + "\n\n" + m.renderButtons()))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(boxWidth)
	return boxStyle.Render(content.String())
}

func (m Model) renderButtons() string {
	confirmColor := styles.StatusSuccessColor
	if m.config.ConfirmVariant == ButtonDanger {
		confirmColor = styles.StatusErrorColor
	}

	button := func(label string, color lipgloss.AdaptiveColor, focused bool) string {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(color)
		if focused {
			style = style.Reverse(true).Bold(true)
		}
		return style.Render(label)
	}

	confirm := button(m.config.ConfirmLabel, confirmColor, m.focused == FieldConfirm)
	cancel := button("Cancel", styles.TextSecondaryColor, m.focused == FieldCancel)
	return confirm + "  " + cancel
}

// Overlay renders the dialog centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Center(m.View(), bg, m.width, m.height)
}
