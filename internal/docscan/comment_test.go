package docscan

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
	"git.home.luguber.info/inful/tagdoc/internal/plugin/builtin"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

func newFixture(t *testing.T) (*plugin.Registry, *warnings.Logger) {
	t.Helper()
	reg, err := builtin.NewRegistry()
	require.NoError(t, err)
	return reg, warnings.NewLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func byTag(occs []model.Occurrence) map[string][]model.Occurrence {
	out := make(map[string][]model.Occurrence)
	for _, o := range occs {
		out[o.Tagname] = append(out[o.Tagname], o)
	}
	return out
}

func TestStripComment(t *testing.T) {
	raw := "/**\n * Fires on click.\n *\n * @since 1.0\n */"
	text, dropped := StripComment(raw)
	assert.Equal(t, "Fires on click.\n\n@since 1.0", text)
	assert.Equal(t, 1, dropped)
}

func TestParseDocAndTags(t *testing.T) {
	reg, log := newFixture(t)
	text := "A button.\n\nClick it. Mail me@example.com or see {@link Foo}.\n@private\n@since 2.1.0\n@deprecated 3.0 Use {@link Ext.Link} instead.\n  Really."

	c := Parse(text, model.SourceFileRef{Filename: "Button.js", Linenr: 10}, reg, log)

	assert.Equal(t, "A button.\n\nClick it. Mail me@example.com or see {@link Foo}.", c.Doc)
	tags := byTag(c.Occurrences)
	require.Len(t, tags["private"], 1)
	assert.Equal(t, true, tags["private"][0].Value)
	assert.Equal(t, 13, tags["private"][0].Pos.Linenr)
	assert.Equal(t, "2.1.0", tags["since"][0].Value)
	require.Len(t, tags["deprecated"], 1)
	assert.Equal(t, "3.0", tags["deprecated"][0].Value)
	assert.Equal(t, "Use {@link Ext.Link} instead.\n  Really.", tags["deprecated"][0].Doc)
	assert.Empty(t, log.Warnings())
}

func TestParseMemberTagEmitsTypeAndDefault(t *testing.T) {
	reg, log := newFixture(t)
	c := Parse("@cfg {String} [text=\"OK\"] The label.", model.SourceFileRef{Filename: "Button.js", Linenr: 1}, reg, log)

	tags := byTag(c.Occurrences)
	assert.Equal(t, "text", tags["cfg"][0].Value)
	assert.Equal(t, "String", tags["type"][0].Value)
	assert.Equal(t, `"OK"`, tags["default"][0].Value)
	assert.Equal(t, "The label.", c.Doc)
}

func TestParseRequiredCfg(t *testing.T) {
	reg, log := newFixture(t)
	c := Parse("@cfg {Number} width (required)", model.SourceFileRef{}, reg, log)
	tags := byTag(c.Occurrences)
	require.Len(t, tags["cfg"], 1)
	assert.Equal(t, true, tags["cfg"][0].Field("required"))
}

func TestParseParamsCaptureDoc(t *testing.T) {
	reg, log := newFixture(t)
	text := "Sets the text.\n@param {String} text The new text\n  spanning lines.\n@param {Boolean} [silent=false] Suppress events.\n@return {this}"

	c := Parse(text, model.SourceFileRef{Filename: "Button.js", Linenr: 1}, reg, log)

	tags := byTag(c.Occurrences)
	require.Len(t, tags["params"], 2)
	p0 := tags["params"][0].Value.(builtin.Param)
	assert.Equal(t, "text", p0.Name)
	assert.Equal(t, "String", p0.Type)
	assert.Equal(t, "The new text\n  spanning lines.", tags["params"][0].Doc)
	p1 := tags["params"][1].Value.(builtin.Param)
	assert.True(t, p1.Optional)
	assert.Equal(t, "false", p1.Default)
	assert.Equal(t, "this", tags["return"][0].Value.(builtin.Return).Type)
	assert.Equal(t, "Sets the text.", c.Doc)
}

func TestParseUnknownTagWarns(t *testing.T) {
	reg, log := newFixture(t)
	c := Parse("Intro.\n@frobnicate now", model.SourceFileRef{Filename: "a.js", Linenr: 5}, reg, log)

	assert.Equal(t, "Intro.\n@frobnicate now", c.Doc)
	require.Len(t, log.Warnings(), 1)
	w := log.Warnings()[0]
	assert.Equal(t, warnings.TagUnknown, w.Category)
	assert.Equal(t, 6, w.Pos.Linenr)
}

func TestParseMalformedTagWarnsAndContinues(t *testing.T) {
	reg, log := newFixture(t)
	c := Parse("@param {String name\n@since 1.0", model.SourceFileRef{Filename: "a.js", Linenr: 1}, reg, log)

	assert.Equal(t, 1, log.Count(warnings.TagSyntax))
	assert.Equal(t, "1.0", byTag(c.Occurrences)["since"][0].Value)
}

func TestParseListTag(t *testing.T) {
	reg, log := newFixture(t)
	c := Parse("@mixins Ext.util.Observable, Ext.util.Sortable", model.SourceFileRef{}, reg, log)
	tags := byTag(c.Occurrences)
	require.Len(t, tags["mixins"], 2)
	assert.Equal(t, "Ext.util.Sortable", tags["mixins"][1].Value)
}

func TestAnnotate(t *testing.T) {
	reg, log := newFixture(t)
	m := model.NewMember(model.KindMethod, "click", model.SourceFileRef{Filename: "Button.js", Linenr: 40})

	Annotate(m, "/**\n * Simulates a click.\n * @chainable\n */", m.Position(), reg, log)

	assert.Equal(t, "Simulates a click.", m.Doc)
	require.Len(t, m.DocTags["chainable"], 1)
	assert.Equal(t, 42, m.DocTags["chainable"][0].Pos.Linenr)
}

func TestStringScannerPrimitives(t *testing.T) {
	s := NewStringScanner("  {Ext.Array|String} Ext.form.Panel rest of line\nnext", model.SourceFileRef{Linenr: 1}, nil)
	s.SkipHorizontalSpace()
	content, ok := s.Braced()
	require.True(t, ok)
	assert.Equal(t, "Ext.Array|String", content)
	s.SkipHorizontalSpace()
	assert.Equal(t, "Ext.form.Panel", s.IdentChain())
	assert.Equal(t, " rest of line", s.RestOfLine())
	assert.Equal(t, 1, s.Position().Linenr)
	assert.Equal(t, "", s.Ident(), "newline is not an identifier")
	s.Match(identRe)
	assert.False(t, s.EOF())

	_, ok = NewStringScanner("{unterminated", model.SourceFileRef{}, nil).Braced()
	assert.False(t, ok)
}
