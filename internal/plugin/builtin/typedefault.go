package builtin

import (
	"fmt"
	"html"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// DefaultType is assumed for property-like members with no type anywhere.
const DefaultType = "Object"

// TypeTag handles "@type {Type}". Doc types win over types inferred from code.
type TypeTag struct {
	plugin.BaseTag
}

// NewTypeTag creates the @type tag.
func NewTypeTag() *TypeTag {
	return &TypeTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  "type",
		Tagname:  "type",
		Scope:    plugin.ScopePropertyLike,
		Position: plugin.PositionTop + 5,
	}}}
}

func (t *TypeTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	typ, ok := parseType(s)
	if !ok {
		return plugin.ParseResult{}
	}
	if typ == "" {
		// JSDoc-style bare type
		s.SkipHorizontalSpace()
		typ = s.Match(nameRe)
	}
	if typ == "" {
		s.Warn("@type requires a type")
		return plugin.ParseResult{}
	}
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: "type", Value: typ, Pos: pos}}}
}

// PostProcess assigns DefaultType when no side supplied a type.
func (t *TypeTag) PostProcess(e model.Entity, _ []model.Occurrence) {
	if _, ok := e.Base().Attr("type"); !ok {
		e.Base().SetAttr("type", DefaultType)
	}
}

// DefaultTag handles "@default value".
type DefaultTag struct {
	plugin.BaseTag
}

// NewDefaultTag creates the @default tag.
func NewDefaultTag() *DefaultTag {
	return &DefaultTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  "default",
		Tagname:  "default",
		Scope:    plugin.ScopePropertyLike,
		Position: plugin.PositionAfterDoc,
	}}}
}

func (t *DefaultTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	v := s.RestOfLine()
	if v == "" {
		s.Warn("@default requires a value")
		return plugin.ParseResult{}
	}
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: "default", Value: v, Pos: pos}}}
}

func (t *DefaultTag) ToHTML(ctx *plugin.RenderContext) string {
	v := ctx.StringValue()
	if v == "" {
		return ""
	}
	return fmt.Sprintf(`<p class="default">Defaults to: <code>%s</code></p>`, html.EscapeString(v))
}
