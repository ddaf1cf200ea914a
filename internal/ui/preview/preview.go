// Package preview renders markdown files as styled terminal output in a
// side panel. Rendered documents are cached; edits invalidate by content.
package preview

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"justcode/internal/cachemanager"
	"justcode/internal/ui/markdown"
	"justcode/internal/ui/styles"
)

// cacheTTL bounds how long a rendered document stays warm.
const cacheTTL = 5 * time.Minute

// renderInput carries one render request through the cache loader.
type renderInput struct {
	content string
	width   int
	style   string
}

// Model holds the preview panel state.
type Model struct {
	cache *cachemanager.ReadThroughCache[string, string, renderInput]

	style    string // glamour style: "dark", "light", or "" for auto
	content  string
	rendered string
	width    int
	height   int
	scroll   int
	err      error
}

// New creates a preview panel. Style selects the glamour color scheme.
func New(style string) Model {
	cache := cachemanager.NewInMemoryCacheManager[string, string](
		"markdown-preview", cacheTTL, 10*time.Minute)
	return Model{
		style: style,
		cache: cachemanager.NewReadThroughCache[string, string, renderInput](cache, renderMarkdown, false),
	}
}

// renderMarkdown is the cache loader: a fresh glamour renderer per width.
func renderMarkdown(_ context.Context, input renderInput) (string, error) {
	renderer, err := markdown.New(input.width, input.style)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(input.content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// SetSize sets the panel dimensions and re-renders at the new width.
func (m *Model) SetSize(width, height int) {
	if width != m.width {
		m.width = width
		m.render()
	}
	m.height = height
	m.clampScroll()
}

// SetContent replaces the markdown source and re-renders.
func (m *Model) SetContent(content string) {
	m.content = content
	m.scroll = 0
	m.render()
}

func (m *Model) render() {
	if m.width <= 0 || m.content == "" {
		m.rendered = ""
		m.err = nil
		return
	}
	key := renderKey(m.content, m.width, m.style)
	out, err := m.cache.Get(context.Background(), key,
		renderInput{content: m.content, width: m.width, style: m.style}, cacheTTL)
	if err != nil {
		m.err = err
		m.rendered = ""
		return
	}
	m.err = nil
	m.rendered = strings.TrimRight(out, "\n")
	m.clampScroll()
}

// renderKey hashes content so unbounded documents do not become map keys.
func renderKey(content string, width int, style string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%s:%d:%s", hex.EncodeToString(sum[:8]), width, style)
}

// ScrollDown moves the viewport down by n lines.
func (m *Model) ScrollDown(n int) {
	m.scroll += n
	m.clampScroll()
}

// ScrollUp moves the viewport up by n lines.
func (m *Model) ScrollUp(n int) {
	m.scroll -= n
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := max(len(m.lines())-m.height, 0)
	m.scroll = min(m.scroll, maxScroll)
	m.scroll = max(m.scroll, 0)
}

func (m *Model) lines() []string {
	if m.rendered == "" {
		return nil
	}
	return strings.Split(m.rendered, "\n")
}

// View renders the visible slice of the document.
func (m *Model) View() string {
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		return errStyle.Render("preview error: " + m.err.Error())
	}
	lines := m.lines()
	if len(lines) == 0 {
		return styles.TextMutedStyle.Render("nothing to preview")
	}

	end := min(m.scroll+m.height, len(lines))
	if m.height <= 0 {
		end = len(lines)
	}
	visible := lines[m.scroll:end]

	var sb strings.Builder
	sb.WriteString(strings.Join(visible, "\n"))
	if remaining := len(lines) - end; remaining > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.TextMutedStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
	}
	return sb.String()
}
