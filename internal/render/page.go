package render

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Page formats cls and renders it as one HTML fragment: the class header,
// then one block per section with each member's rendering.
func (r *Renderer) Page(cls *model.Class) string {
	r.Format(cls)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="class" id="%s">`, html.EscapeString(cls.Name))
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(cls.Name))
	b.WriteString(r.RenderEntity(cls, cls))

	for _, sec := range r.Sections(cls) {
		fmt.Fprintf(&b, `<div class="members-section %s">`, sec.Kind)
		fmt.Fprintf(&b, `<h2>%s</h2>`, html.EscapeString(sec.Title))
		for _, sub := range sec.Subsections {
			if sub.Title != "" && !sec.HideTitle {
				fmt.Fprintf(&b, `<h3 class="members-subtitle">%s</h3>`, html.EscapeString(sub.Title))
			}
			for _, m := range sub.Members {
				fmt.Fprintf(&b, `<div class="member" id="%s">%s</div>`, html.EscapeString(m.ID), r.RenderEntity(cls, m))
			}
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
