// Package markdown provides styled markdown rendering for the TUI.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins.
// It inherits from the base style but overrides margin to 0 so rendered
// markdown lines up with the panel border.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with panel-friendly configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width. Style is one of
// glamour's standard styles ("dark", "light"); empty selects automatic
// terminal background detection.
func New(width int, style string) (*Renderer, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	}
	if style == "" {
		opts = append([]glamour.TermRendererOption{glamour.WithAutoStyle()}, opts...)
	} else {
		opts = append([]glamour.TermRendererOption{glamour.WithStandardStyle(style)}, opts...)
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
