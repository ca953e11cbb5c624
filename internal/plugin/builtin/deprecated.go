package builtin

import (
	"fmt"
	"html"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// Deprecation is the attribute of @deprecated and @removed.
type Deprecation struct {
	Version string
	Text    string
	// HTML is set once Text has been converted by the formatter.
	HTML bool
}

// DeprecationTag handles "@deprecated [version] text" and "@removed".
type DeprecationTag struct {
	plugin.BaseTag
	verb string
}

// NewDeprecatedTag creates the @deprecated tag.
func NewDeprecatedTag() *DeprecationTag {
	return newDeprecationTag("deprecated", "deprecated")
}

// NewRemovedTag creates the @removed tag.
func NewRemovedTag() *DeprecationTag {
	return newDeprecationTag("removed", "removed")
}

func newDeprecationTag(word, verb string) *DeprecationTag {
	return &DeprecationTag{
		BaseTag: plugin.BaseTag{Desc: plugin.Descriptor{
			Pattern:  word,
			Tagname:  word,
			Scope:    plugin.ScopeAll,
			Position: plugin.PositionTop + 10,
		}},
		verb: verb,
	}
}

// Parse reads an optional version and captures the explanation.
func (t *DeprecationTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	version := s.Match(versionRe)
	return plugin.ParseResult{
		Occurrences: []model.Occurrence{{Tagname: t.Desc.Tagname, Value: version, Pos: pos}},
		CaptureDoc:  true,
	}
}

// Merge combines the version and captured text of the first occurrence.
func (t *DeprecationTag) Merge(_ model.Entity, docs, code []model.Occurrence) any {
	side := docs
	if len(side) == 0 {
		side = code
	}
	if len(side) == 0 {
		return nil
	}
	return Deprecation{Version: side[0].StringValue(), Text: side[0].Doc}
}

// Format converts the explanation from markup to HTML.
func (t *DeprecationTag) Format(ctx *plugin.RenderContext, f plugin.MarkupFormatter) {
	d, ok := ctx.Value.(Deprecation)
	if !ok || d.HTML {
		return
	}
	if d.Text != "" {
		d.Text = f.Format(d.Text)
	}
	d.HTML = true
	ctx.Value = d
}

// ToHTML renders the deprecation box.
func (t *DeprecationTag) ToHTML(ctx *plugin.RenderContext) string {
	d, ok := ctx.Value.(Deprecation)
	if !ok {
		return ""
	}
	since := ""
	if d.Version != "" {
		since = " since " + html.EscapeString(d.Version)
	}
	text := d.Text
	if !d.HTML {
		text = html.EscapeString(text)
	}
	return fmt.Sprintf(`<div class="signature-box %s"><p>This %s has been <strong>%s</strong>%s</p>%s</div>`,
		t.Desc.Tagname, ctx.Entity.Kind(), t.verb, since, text)
}
