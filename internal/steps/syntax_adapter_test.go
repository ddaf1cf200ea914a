package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justcode/internal/ui/editor"
)

var _ editor.SyntaxLexer = (*Highlighter)(nil)

func TestHighlighter_TokenizeAll(t *testing.T) {
	h := NewHighlighter(nil)

	t.Run("empty buffer", func(t *testing.T) {
		tokens := h.TokenizeAll([]string{""})
		require.Len(t, tokens, 1)
		assert.Empty(t, tokens[0])
	})

	t.Run("single line offsets", func(t *testing.T) {
		tokens := h.TokenizeAll([]string{"if x is equal to 5:"})
		require.Len(t, tokens, 1)

		line := tokens[0]
		require.Len(t, line, 5) // if, x, is equal to, 5, :

		assert.Equal(t, 0, line[0].Start)
		assert.Equal(t, 2, line[0].End) // "if"
		assert.Equal(t, 3, line[1].Start)
		assert.Equal(t, 4, line[1].End) // "x"
		assert.Equal(t, 5, line[2].Start)
		assert.Equal(t, 16, line[2].End) // "is equal to"
		assert.Equal(t, 17, line[3].Start)
		assert.Equal(t, 18, line[3].End) // "5"
		assert.Equal(t, 18, line[4].Start)
		assert.Equal(t, 19, line[4].End) // ":"
	})

	t.Run("note block spans lines", func(t *testing.T) {
		lines := []string{
			"note block:",
			"hidden if true",
			"end note",
			"if x:",
		}
		tokens := h.TokenizeAll(lines)
		require.Len(t, tokens, 4)

		styles := Styles(nil)
		comment := styles[StyleComment].GetForeground()

		// Lines 0..2 are entirely comment, merged into one token each.
		for i := 0; i < 3; i++ {
			require.Len(t, tokens[i], 1, "line %d", i)
			assert.Equal(t, 0, tokens[i][0].Start)
			assert.Equal(t, len(lines[i]), tokens[i][0].End)
			assert.Equal(t, comment, tokens[i][0].Style.GetForeground())
		}

		// Line 3 is code again.
		require.NotEmpty(t, tokens[3])
		control := styles[StyleControlKeyword].GetForeground()
		assert.Equal(t, control, tokens[3][0].Style.GetForeground())
	})

	t.Run("tokens never overlap and stay sorted", func(t *testing.T) {
		lines := []string{
			`set msg to "note block: not a block"`,
			"declare n as number",
			"note: trailing comment",
		}
		for i, line := range h.TokenizeAll(lines) {
			prev := 0
			for _, tok := range line {
				assert.GreaterOrEqual(t, tok.Start, prev, "line %d", i)
				assert.Greater(t, tok.End, tok.Start, "line %d", i)
				assert.LessOrEqual(t, tok.End, len(lines[i]), "line %d", i)
				prev = tok.End
			}
		}
	})

	t.Run("blank lines produce no tokens", func(t *testing.T) {
		tokens := h.TokenizeAll([]string{"if x:", "", "return 1"})
		require.Len(t, tokens, 3)
		assert.Empty(t, tokens[1])
	})
}
