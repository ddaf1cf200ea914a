package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := New(60, "dark")
	require.NoError(t, err)
	assert.Equal(t, 60, r.Width())

	out, err := r.Render("# Heading\n\nSome *emphasis* here.")
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "emphasis")
}

func TestRender_CodeBlock(t *testing.T) {
	r, err := New(60, "dark")
	require.NoError(t, err)

	out, err := r.Render("```\nprint hello\n```")
	require.NoError(t, err)
	assert.Contains(t, out, "print hello")
}

func TestNew_AutoStyle(t *testing.T) {
	r, err := New(40, "")
	require.NoError(t, err)

	out, err := r.Render("plain paragraph")
	require.NoError(t, err)
	assert.Contains(t, out, "plain paragraph")
}
