// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"justcode/internal/keys"
	"justcode/internal/ui/overlay"
	"justcode/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.PanelTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.BorderDefaultColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.PanelTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderDefaultColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a help view.
func New() Model {
	return Model{keys: keys.DefaultKeyMap()}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay standalone.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Center(helpBox, background, m.width, m.height)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	column := func(title string, bindings ...key.Binding) string {
		var sb strings.Builder
		sb.WriteString(sectionStyle.Render(title))
		sb.WriteString("\n")
		for _, b := range bindings {
			help := b.Help()
			sb.WriteString(keyStyle.Render(help.Key) + descStyle.Render(help.Desc) + "\n")
		}
		return sb.String()
	}

	panelsCol := column("Panels",
		m.keys.FocusNext, m.keys.FocusEditor, m.keys.ToggleTree,
		m.keys.ToggleShell, m.keys.TogglePreview)
	filesCol := column("Files",
		m.keys.Save, m.keys.Reload, m.keys.CloseTab, m.keys.NextTab, m.keys.PrevTab)
	treeCol := column("File Tree",
		m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Collapse, m.keys.Bookmark)
	generalCol := column("General", m.keys.Help, m.keys.Quit)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(panelsCol),
		columnStyle.Render(filesCol),
		columnStyle.Render(treeCol),
		generalCol,
	)

	boxWidth := lipgloss.Width(columns) + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}
