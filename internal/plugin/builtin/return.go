package builtin

import (
	"fmt"
	"html"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// Return is the attribute of @return.
type Return struct {
	Type string
	Doc  string
	HTML bool
}

// ReturnTag handles "@return {Type} description".
type ReturnTag struct {
	plugin.BaseTag
}

// NewReturnTag creates the @return tag.
func NewReturnTag() *ReturnTag {
	return &ReturnTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  "return",
		Tagname:  "return",
		Scope:    plugin.ScopeMethod,
		Position: plugin.PositionAfterDoc + 10,
	}}}
}

func (t *ReturnTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	typ, _ := parseType(s)
	return plugin.ParseResult{
		Occurrences: []model.Occurrence{{Tagname: "return", Value: Return{Type: typ}, Pos: pos}},
		CaptureDoc:  true,
	}
}

// Merge takes the documented return, filling its type from code if missing.
func (t *ReturnTag) Merge(_ model.Entity, docs, code []model.Occurrence) any {
	var codeRet Return
	if len(code) > 0 {
		codeRet, _ = code[0].Value.(Return)
	}
	if len(docs) == 0 {
		if len(code) == 0 {
			return nil
		}
		return codeRet
	}
	r, _ := docs[0].Value.(Return)
	r.Doc = docs[0].Doc
	if r.Type == "" {
		r.Type = codeRet.Type
	}
	if r.Type == "" {
		r.Type = DefaultType
	}
	return r
}

func (t *ReturnTag) Format(ctx *plugin.RenderContext, f plugin.MarkupFormatter) {
	r, ok := ctx.Value.(Return)
	if !ok || r.HTML {
		return
	}
	if r.Doc != "" {
		r.Doc = f.Format(r.Doc)
	}
	r.HTML = true
	ctx.Value = r
}

func (t *ReturnTag) ToHTML(ctx *plugin.RenderContext) string {
	r, ok := ctx.Value.(Return)
	if !ok {
		return ""
	}
	doc := r.Doc
	if !r.HTML {
		doc = html.EscapeString(doc)
	}
	return fmt.Sprintf(`<h3 class="pa">Returns</h3><ul><li><span class="pre">%s</span><div class="sub-desc">%s</div></li></ul>`,
		html.EscapeString(r.Type), doc)
}
