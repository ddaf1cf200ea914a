// Package panes renders bordered panels with titles embedded in the frame.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"justcode/internal/ui/styles"
)

// Border characters (rounded)
const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
)

// Config describes one bordered panel.
type Config struct {
	Content string
	Width   int // total width including borders
	Height  int // total height including borders

	Title       string // embedded in the top border, left-aligned
	BottomRight string // embedded in the bottom border, right-aligned

	Focused bool // focused panels get the focus border color
}

// Render draws the panel. Content is clipped and padded to fit exactly.
func Render(cfg Config) string {
	borderColor := lipgloss.TerminalColor(styles.BorderDefaultColor)
	if cfg.Focused {
		borderColor = styles.BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(styles.PanelTitleColor)
	if cfg.Focused {
		titleStyle = titleStyle.Bold(true)
	}

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	top := buildEdge(topLeft, topRight, cfg.Title, "", innerWidth, borderStyle, titleStyle)
	bottom := buildEdge(bottomLeft, bottomRight, "", cfg.BottomRight, innerWidth, borderStyle, titleStyle)

	constrained := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight).Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("\n")
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if pad := innerWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		sb.WriteString(borderStyle.Render(vertical))
		sb.WriteString(line)
		sb.WriteString(borderStyle.Render(vertical))
		sb.WriteString("\n")
	}
	sb.WriteString(bottom)
	return sb.String()
}

// buildEdge draws one horizontal border with optional embedded titles:
//
//	╭─ Left ───────── Right ─╮
func buildEdge(leftCorner, rightCorner, left, right string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(leftCorner + rightCorner)
	}
	if left == "" && right == "" {
		return borderStyle.Render(leftCorner + strings.Repeat(horizontal, innerWidth) + rightCorner)
	}

	// "─ Left " costs width+3; " Right ─" costs width+3.
	leftWidth, rightWidth := 0, 0
	if left != "" {
		if avail := innerWidth - 4; lipgloss.Width(left) > avail {
			left = styles.TruncateString(left, max(avail, 0))
		}
	}
	if left != "" {
		leftWidth = lipgloss.Width(left) + 3
	}
	if right != "" {
		rightWidth = lipgloss.Width(right) + 3
	}
	middle := innerWidth - leftWidth - rightWidth
	if middle < 0 {
		// Not enough room for both; drop the right title.
		right = ""
		middle = max(innerWidth-leftWidth, 0)
	}

	var sb strings.Builder
	sb.WriteString(borderStyle.Render(leftCorner))
	if left != "" {
		sb.WriteString(borderStyle.Render(horizontal + " "))
		sb.WriteString(titleStyle.Render(left))
		sb.WriteString(borderStyle.Render(" "))
	}
	sb.WriteString(borderStyle.Render(strings.Repeat(horizontal, middle)))
	if right != "" {
		sb.WriteString(borderStyle.Render(" "))
		sb.WriteString(titleStyle.Render(right))
		sb.WriteString(borderStyle.Render(" " + horizontal))
	}
	sb.WriteString(borderStyle.Render(rightCorner))
	return sb.String()
}
