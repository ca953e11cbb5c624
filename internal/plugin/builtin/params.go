package builtin

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// Param is one documented parameter.
type Param struct {
	Name     string
	Type     string
	Default  string
	Optional bool
	Doc      string
	HTML     bool
}

// ParamTag handles "@param {Type} [name=default] description". The merged
// attribute is []Param.
type ParamTag struct {
	plugin.BaseTag
}

// NewParamTag creates the @param tag.
func NewParamTag() *ParamTag {
	return &ParamTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:    "param",
		Tagname:    "params",
		Repeatable: true,
		Scope:      plugin.ScopeMethodLike,
		Position:   plugin.PositionAfterDoc,
	}}}
}

func (t *ParamTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	typ, ok := parseType(s)
	if !ok {
		return plugin.ParseResult{}
	}
	spec, ok := parseName(s)
	if !ok {
		s.Warn("@param requires a name")
		return plugin.ParseResult{}
	}
	p := Param{Name: spec.Name, Type: typ, Default: spec.Default, Optional: spec.Optional}
	return plugin.ParseResult{
		Occurrences: []model.Occurrence{{Tagname: "params", Value: p, Pos: pos}},
		CaptureDoc:  true,
	}
}

// Merge prefers documented parameters. Code parameters fill in missing
// types and defaults of documented ones with the same name, and are used
// as-is when nothing is documented.
func (t *ParamTag) Merge(_ model.Entity, docs, code []model.Occurrence) any {
	codeParams := collectParams(code)
	if len(docs) == 0 {
		if len(codeParams) == 0 {
			return nil
		}
		return codeParams
	}

	byName := make(map[string]Param, len(codeParams))
	for _, p := range codeParams {
		byName[p.Name] = p
	}
	params := collectParams(docs)
	for i, p := range params {
		c, ok := byName[p.Name]
		if !ok {
			continue
		}
		if p.Type == "" {
			params[i].Type = c.Type
		}
		if p.Default == "" {
			params[i].Default = c.Default
		}
	}
	return params
}

func collectParams(occs []model.Occurrence) []Param {
	out := make([]Param, 0, len(occs))
	for _, o := range occs {
		p, ok := o.Value.(Param)
		if !ok {
			continue
		}
		if o.Doc != "" {
			p.Doc = o.Doc
		}
		out = append(out, p)
	}
	return out
}

// Format converts every parameter description.
func (t *ParamTag) Format(ctx *plugin.RenderContext, f plugin.MarkupFormatter) {
	params, ok := ctx.Value.([]Param)
	if !ok {
		return
	}
	out := make([]Param, len(params))
	for i, p := range params {
		if !p.HTML && p.Doc != "" {
			p.Doc = f.Format(p.Doc)
		}
		p.HTML = true
		out[i] = p
	}
	ctx.Value = out
}

func (t *ParamTag) ToHTML(ctx *plugin.RenderContext) string {
	params, ok := ctx.Value.([]Param)
	if !ok || len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<h3 class="pa">Parameters</h3><ul>`)
	for _, p := range params {
		typ := p.Type
		if typ == "" {
			typ = DefaultType
		}
		fmt.Fprintf(&b, `<li><span class="pre">%s</span> : %s`, html.EscapeString(p.Name), html.EscapeString(typ))
		if p.Optional {
			b.WriteString(` (optional)`)
		}
		if p.Default != "" {
			fmt.Fprintf(&b, ` <em>Defaults to: <code>%s</code></em>`, html.EscapeString(p.Default))
		}
		if p.Doc != "" {
			doc := p.Doc
			if !p.HTML {
				doc = html.EscapeString(doc)
			}
			fmt.Fprintf(&b, `<div class="sub-desc">%s</div>`, doc)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}
