package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Paragraph(t *testing.T) {
	f := NewFormatter(Options{})
	require.Equal(t, "<p>Fires on <em>click</em>.</p>", f.Format("Fires on *click*."))
}

func TestFormat_Empty(t *testing.T) {
	require.Empty(t, NewFormatter(Options{}).Format("  \n"))
}

func TestFormat_AttributionBlock(t *testing.T) {
	f := NewFormatter(Options{})
	got := f.Format("fires on click\n\n**Overridden in btn-override.js.**")
	assert.Equal(t, "<p>fires on click</p>\n<p><strong>Overridden in btn-override.js.</strong></p>", got)
}

func TestFormat_RawHTML(t *testing.T) {
	src := "Use <code>render()</code> first."

	safe := NewFormatter(Options{}).Format(src)
	assert.NotContains(t, safe, "<code>render()</code>")

	unsafe := NewFormatter(Options{UnsafeHTML: true}).Format(src)
	assert.Equal(t, "<p>Use <code>render()</code> first.</p>", unsafe)
}

func TestFormat_Linkify(t *testing.T) {
	src := "See https://example.com/docs"

	plain := NewFormatter(Options{}).Format(src)
	assert.NotContains(t, plain, "<a ")

	linked := NewFormatter(Options{Linkify: true}).Format(src)
	assert.Contains(t, linked, `<a href="https://example.com/docs">`)
}

func TestFormat_Table(t *testing.T) {
	got := NewFormatter(Options{}).Format("| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, got, "<table>")
}
