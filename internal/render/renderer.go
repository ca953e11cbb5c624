// Package render walks merged entities and asks tag plugins for their HTML.
//
// Page layout is out of scope; the renderer only produces fragments that an
// outer template places.
package render

import (
	"html"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// Renderer renders classes with the tags of one registry.
type Renderer struct {
	registry *plugin.Registry
	markup   plugin.MarkupFormatter
	order    []plugin.Tag
}

// New creates a renderer. markup converts doc text to HTML.
func New(reg *plugin.Registry, markup plugin.MarkupFormatter) *Renderer {
	return &Renderer{registry: reg, markup: markup, order: reg.RenderOrder()}
}

// Format runs every Formatter hook on the class and its members, replacing
// attribute values with their formatted form.
func (r *Renderer) Format(cls *model.Class) {
	r.formatEntity(cls, cls)
	for _, m := range cls.Members {
		r.formatEntity(cls, m)
	}
}

func (r *Renderer) formatEntity(cls *model.Class, e model.Entity) {
	base := e.Base()
	for _, tag := range r.registry.Tags() {
		f, ok := tag.(plugin.Formatter)
		if !ok {
			continue
		}
		name := tag.Descriptor().Tagname
		value, ok := base.Attr(name)
		if !ok {
			continue
		}
		ctx := plugin.NewRenderContext(cls, e, value)
		f.Format(ctx, r.markup)
		base.SetAttr(name, ctx.Value)
	}
}

// RenderEntity concatenates the HTML of every present attribute in render
// order. The entity's doc text goes in at PositionDoc.
func (r *Renderer) RenderEntity(cls *model.Class, e model.Entity) string {
	base := e.Base()
	ctx := plugin.NewRenderContext(cls, e, nil)

	var b strings.Builder
	docDone := false
	for _, tag := range r.order {
		d := tag.Descriptor()
		if !docDone && d.Position >= plugin.PositionDoc {
			b.WriteString(r.doc(base.Doc))
			docDone = true
		}
		value, ok := base.Attr(d.Tagname)
		if !ok {
			continue
		}
		ctx.Value = value
		b.WriteString(tag.(plugin.HTMLRenderer).ToHTML(ctx))
	}
	if !docDone {
		b.WriteString(r.doc(base.Doc))
	}
	return b.String()
}

func (r *Renderer) doc(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var body string
	if r.markup != nil {
		body = r.markup.Format(text)
	} else {
		body = "<p>" + html.EscapeString(text) + "</p>"
	}
	return `<div class="doc">` + body + `</div>`
}
