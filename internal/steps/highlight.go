package steps

import "strings"

// Highlight applies syntax highlighting to Steps source code and returns it
// with ANSI color codes applied. Empty input returns an empty string.
// Partial or malformed source is highlighted for whatever the scanner can
// classify; nothing is ever dropped.
func Highlight(source string, theme Theme) string {
	if source == "" {
		return ""
	}

	styles := Styles(theme)
	spans, _ := ScanAll(source)

	var b strings.Builder
	pos := 0
	for _, span := range spans {
		run := source[pos : pos+span.Length]
		if span.Style == StyleDefault {
			b.WriteString(run)
		} else {
			b.WriteString(styles[span.Style].Render(run))
		}
		pos += span.Length
	}
	return b.String()
}
